// Package cryptops implements the two encryption flows: symmetric
// (passphrase-protected) and public-key (current ephemeral-key envelope,
// plus the two legacy envelope variants it must still decrypt).
package cryptops
