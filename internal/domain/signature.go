package domain

// Signature is a detached Ed25519 signature. RandomID is the issuing
// secret key's id, used to detect wrong-key verification attempts before
// the (comparatively expensive) Ed25519 verify call.
type Signature struct {
	SigAlg   [2]byte
	RandomID [8]byte
	Sig      [64]byte
	Ident    string
}

// SignatureSize is the serialized size of Signature, excluding Ident.
const SignatureSize = 2 + 8 + 64
