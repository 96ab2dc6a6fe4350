package domain

// PublicKey is the public half of a keypair. Ident lives out of band,
// next to, not inside, the serialized struct.
type PublicKey struct {
	SigAlg   [2]byte
	EncAlg   [2]byte
	RandomID [8]byte
	SigKey   [32]byte // Ed25519 public
	EncKey   [32]byte // Curve25519 public
	Ident    string
}

// PublicKeySize is the serialized size of PublicKey, excluding Ident.
const PublicKeySize = 2 + 2 + 8 + 32 + 32

// SecretKey is the secret half of a keypair. SigKey||EncKey is always
// stored on disk in its symmetrically encrypted form; the in-memory
// representation after a successful Unwrap is plaintext.
type SecretKey struct {
	SigAlg    [2]byte
	EncAlg    [2]byte
	SymAlg    [2]byte
	KDFAlg    [2]byte
	RandomID  [8]byte
	KDFRounds uint32
	Salt      [16]byte
	Nonce     [24]byte
	Tag       [16]byte
	SigKey    [64]byte // Ed25519 secret (ciphertext on disk, plaintext once unwrapped)
	EncKey    [32]byte // Curve25519 secret (ciphertext on disk, plaintext once unwrapped)
	Ident     string
}

// SecretKeySize is the serialized size of SecretKey, excluding Ident.
const SecretKeySize = 2 + 2 + 2 + 2 + 8 + 4 + 16 + 24 + 16 + 64 + 32

// SealedBytes returns the concatenation sigkey||enckey, the 96-byte region
// the KDF layer encrypts and decrypts in place.
func (s *SecretKey) SealedBytes() []byte {
	buf := make([]byte, 0, len(s.SigKey)+len(s.EncKey))
	buf = append(buf, s.SigKey[:]...)
	buf = append(buf, s.EncKey[:]...)
	return buf
}

// SetSealedBytes writes buf (96 bytes: sigkey||enckey) back into the
// struct's fixed-size fields.
func (s *SecretKey) SetSealedBytes(buf []byte) {
	copy(s.SigKey[:], buf[:64])
	copy(s.EncKey[:], buf[64:96])
}

// Keypair is a bound (public, secret) pair: both share RandomID, SigAlg,
// EncAlg, and Ident (invariant b).
type Keypair struct {
	Public PublicKey
	Secret SecretKey
}
