// Package kdf derives a symmetric key from a passphrase, salt, and
// iteration count using bcrypt-pbkdf, and uses that key with the
// primitives package to encrypt or decrypt a secret key's sealed
// material in place.
package kdf
