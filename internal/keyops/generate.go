package keyops

import (
	"reop/internal/domain"
	"reop/internal/kdf"
	"reop/internal/primitives"
)

// Generate produces a fresh keypair: an Ed25519 signing key, a Curve25519
// encryption key, and a shared randomid binding the two, then wraps the
// secret half under passphrase with the given KDF round count (an empty
// passphrase selects the no-password round count instead).
func Generate(ident, passphrase string, rounds uint32) (domain.Keypair, error) {
	var kp domain.Keypair

	sigPub, sigSec, err := primitives.GenerateSigningKeypair()
	if err != nil {
		return kp, err
	}
	encPub, encSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		return kp, err
	}
	var randomID [8]byte
	if err := primitives.RandomBytes(randomID[:]); err != nil {
		return kp, err
	}

	kp.Public = domain.PublicKey{
		SigAlg:   domain.Tag2(domain.SigAlgEd25519),
		EncAlg:   domain.Tag2(domain.EncAlgCS),
		RandomID: randomID,
		SigKey:   sigPub,
		EncKey:   encPub,
		Ident:    ident,
	}
	kp.Secret = domain.SecretKey{
		SigAlg:   domain.Tag2(domain.SigAlgEd25519),
		EncAlg:   domain.Tag2(domain.EncAlgCS),
		RandomID: randomID,
		SigKey:   sigSec,
		EncKey:   encSec,
		Ident:    ident,
	}

	if err := kdf.Wrap(&kp.Secret, passphrase, rounds); err != nil {
		return domain.Keypair{}, err
	}
	return kp, nil
}
