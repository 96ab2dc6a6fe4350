// Package passphrase provides the default domain.PassphraseProvider:
// an environment-variable override, falling back to a hidden TTY
// prompt, with optional confirm-twice semantics.
package passphrase
