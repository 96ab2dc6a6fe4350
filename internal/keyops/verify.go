package keyops

import (
	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/primitives"
	"reop/internal/reoperr"
)

// Verify checks a detached signature against pub and msg. The randomid
// binding is checked first, before the comparatively expensive Ed25519
// verification, so a wrong-key attempt is reported as mismatch rather
// than auth_fail.
func Verify(pub domain.PublicKey, msg []byte, sig domain.Signature) error {
	if pub.RandomID != sig.RandomID {
		return reoperr.Mismatchf("signature randomid does not match public key")
	}
	if !primitives.VerifyDetached(pub.SigKey, msg, sig.Sig) {
		return reoperr.AuthFailf("signature verification failed")
	}
	return nil
}

// VerifyEmbedded splits an embedded (in-line) signed message, resolves
// the signing public key (explicit, or by ident through ring), and
// verifies it. It returns the recovered message span on success.
func VerifyEmbedded(data []byte, explicit *domain.PublicKey, ring domain.KeyRing) ([]byte, error) {
	message, ident, sigPayload, err := envelope.SplitSignedMessage(data)
	if err != nil {
		return nil, err
	}
	sig, err := envelope.UnmarshalSignature(sigPayload)
	if err != nil {
		return nil, err
	}
	sig.Ident = ident

	pub, err := resolvePublicKey(explicit, ident, ring)
	if err != nil {
		return nil, err
	}
	if err := Verify(pub, message, sig); err != nil {
		return nil, err
	}
	return message, nil
}

func resolvePublicKey(explicit *domain.PublicKey, ident string, ring domain.KeyRing) (domain.PublicKey, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if ring == nil {
		return domain.PublicKey{}, reoperr.NoKeyf("no public key supplied and no key-ring available")
	}
	pub, ok, err := ring.FindPublicKeyByIdent(ident)
	if err != nil {
		return domain.PublicKey{}, err
	}
	if !ok {
		return domain.PublicKey{}, reoperr.NoKeyf("no public key found for ident %q", ident)
	}
	return pub, nil
}
