// Package primitives is a thin, in-place-operating façade over Ed25519,
// NaCl box (Curve25519-XSalsa20-Poly1305) and NaCl secretbox
// (XSalsa20-Poly1305), pre-committing this module to those specific
// algorithms. Every encrypt/decrypt call here produces or consumes a
// detached tag, so ciphertext length always equals plaintext length.
package primitives
