package domain

// KeyRing looks up a public key by identity string, backed externally by a
// search through a local key-ring file (§6). The core never scans a
// key-ring file itself; it only calls this interface.
type KeyRing interface {
	FindPublicKeyByIdent(ident string) (PublicKey, bool, error)
}

// PassphraseProvider supplies a passphrase, optionally confirming it by
// prompting twice and requiring equality. This is the only point where a
// TTY prompt or environment-variable lookup may occur; the core never
// reads an environment or TTY itself.
type PassphraseProvider interface {
	ReadPassphrase(prompt string, confirm bool) (string, error)
}

// FileIO reads and writes whole files, refusing symlinks and directories
// and recognizing "-" as the stdio sentinel.
type FileIO interface {
	ReadAll(path string, max int64) ([]byte, error)
	WriteAll(path string, data []byte, mode uint32, excl bool) error
}
