package primitives

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"

	"reop/internal/reoperr"
)

const (
	// KeySize is the width of a symmetric or Curve25519 key.
	KeySize = 32
	// NonceSize is the width of an XSalsa20 nonce.
	NonceSize = 24
	// TagSize is the width of a Poly1305 authenticator.
	TagSize = 16
	// SigSize is the width of an Ed25519 signature.
	SigSize = 64
)

// GenerateSigningKeypair returns a fresh Ed25519 keypair.
func GenerateSigningKeypair() (public [KeySize]byte, secret [SigSize]byte, err error) {
	pub, sec, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return public, secret, reoperr.IOErrorf(err, "generate ed25519 keypair")
	}
	copy(public[:], pub)
	copy(secret[:], sec)
	return public, secret, nil
}

// GenerateBoxKeypair returns a fresh Curve25519 keypair.
func GenerateBoxKeypair() (public, secret [KeySize]byte, err error) {
	pub, sec, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return public, secret, reoperr.IOErrorf(err, "generate curve25519 keypair")
	}
	return *pub, *sec, nil
}

// RandomBytes fills out with cryptographically random bytes.
func RandomBytes(out []byte) error {
	_, err := rand.Read(out)
	if err != nil {
		return reoperr.IOErrorf(err, "read random bytes")
	}
	return nil
}

// Zeroize overwrites buf with zeroes. Best-effort: it aims to reduce the
// window a secret spends resident in memory, not to defeat every possible
// compiler optimization.
//
//go:noinline
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// SignDetached signs msg with an Ed25519 secret key and returns a detached
// 64-byte signature.
func SignDetached(secret [SigSize]byte, msg []byte) [SigSize]byte {
	sig := ed25519.Sign(ed25519.PrivateKey(secret[:]), msg)
	var out [SigSize]byte
	copy(out[:], sig)
	return out
}

// VerifyDetached reports whether sig is a valid Ed25519 signature over msg
// under public.
func VerifyDetached(public [KeySize]byte, msg []byte, sig [SigSize]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(public[:]), msg, sig[:])
}

// SymEncrypt encrypts buf in place with XSalsa20-Poly1305 (NaCl
// secretbox) under key, generating a random nonce. On return buf holds
// the ciphertext (same length as the plaintext it replaced) and tag holds
// the 16-byte Poly1305 authenticator.
func SymEncrypt(buf []byte, key [KeySize]byte) (nonce [NonceSize]byte, tag [TagSize]byte, err error) {
	if err = RandomBytes(nonce[:]); err != nil {
		return nonce, tag, err
	}
	sealed := secretbox.Seal(nil, buf, &nonce, &key)
	copy(tag[:], sealed[:TagSize])
	copy(buf, sealed[TagSize:])
	return nonce, tag, nil
}

// SymDecrypt decrypts buf in place with XSalsa20-Poly1305 under key, nonce
// and tag. On success buf holds the plaintext. On authentication failure
// buf is left untouched and a KindAuthFail error is returned.
func SymDecrypt(buf []byte, nonce [NonceSize]byte, tag [TagSize]byte, key [KeySize]byte) error {
	sealed := make([]byte, TagSize+len(buf))
	copy(sealed[:TagSize], tag[:])
	copy(sealed[TagSize:], buf)
	opened, ok := secretbox.Open(nil, sealed, &nonce, &key)
	if !ok {
		return reoperr.AuthFailf("secretbox: tag verification failed")
	}
	copy(buf, opened)
	return nil
}

// PubEncrypt encrypts buf in place with Curve25519-XSalsa20-Poly1305 (NaCl
// box) for recipientPub, authenticated as coming from senderSec,
// generating a random nonce.
func PubEncrypt(buf []byte, recipientPub, senderSec [KeySize]byte) (nonce [NonceSize]byte, tag [TagSize]byte, err error) {
	if err = RandomBytes(nonce[:]); err != nil {
		return nonce, tag, err
	}
	sealed := box.Seal(nil, buf, &nonce, &recipientPub, &senderSec)
	copy(tag[:], sealed[:TagSize])
	copy(buf, sealed[TagSize:])
	return nonce, tag, nil
}

// PubDecrypt decrypts buf in place with Curve25519-XSalsa20-Poly1305,
// verifying it was sent by the holder of senderPub's matching secret key
// to recipientSec.
func PubDecrypt(buf []byte, nonce [NonceSize]byte, tag [TagSize]byte, senderPub, recipientSec [KeySize]byte) error {
	sealed := make([]byte, TagSize+len(buf))
	copy(sealed[:TagSize], tag[:])
	copy(sealed[TagSize:], buf)
	opened, ok := box.Open(nil, sealed, &nonce, &senderPub, &recipientSec)
	if !ok {
		return reoperr.AuthFailf("box: tag verification failed")
	}
	copy(buf, opened)
	return nil
}

// ConstantTimeEqual reports whether a and b are equal, in time
// independent of their contents (but not their lengths).
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
