package passphrase

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"reop/internal/domain"
	"reop/internal/reoperr"
)

// EnvVar is checked before prompting; if set (even to the empty string),
// its value is used verbatim and no TTY prompt occurs.
const EnvVar = "REOP_PASSPHRASE"

// TTY is the default PassphraseProvider: it checks EnvVar first, then
// prompts on the controlling terminal with echo disabled.
type TTY struct{}

var _ domain.PassphraseProvider = (*TTY)(nil)

// New returns the default TTY-backed passphrase provider.
func New() *TTY { return &TTY{} }

// ReadPassphrase implements domain.PassphraseProvider.
func (TTY) ReadPassphrase(prompt string, confirm bool) (string, error) {
	if v, ok := os.LookupEnv(EnvVar); ok {
		return v, nil
	}

	first, err := readHidden(prompt)
	if err != nil {
		return "", err
	}
	if !confirm {
		return first, nil
	}

	second, err := readHidden("confirm " + prompt)
	if err != nil {
		return "", err
	}
	if first != second {
		return "", reoperr.Passphrasef("passphrases do not match")
	}
	return first, nil
}

func readHidden(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", reoperr.Passphrasef("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", reoperr.Passphrasef("reading passphrase: %v", err)
	}
	return string(line), nil
}
