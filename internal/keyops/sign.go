package keyops

import (
	"reop/internal/domain"
	"reop/internal/primitives"
)

// Sign produces a detached signature over msg using sec, which must
// already be unwrapped (plaintext sigkey).
func Sign(sec domain.SecretKey, msg []byte) domain.Signature {
	sig := primitives.SignDetached(sec.SigKey, msg)
	return domain.Signature{
		SigAlg:   domain.Tag2(domain.SigAlgEd25519),
		RandomID: sec.RandomID,
		Sig:      sig,
		Ident:    sec.Ident,
	}
}
