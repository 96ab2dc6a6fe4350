package kdf

import (
	"github.com/dchest/bcrypt_pbkdf"

	"reop/internal/domain"
	"reop/internal/primitives"
	"reop/internal/reoperr"
)

// DeriveKey derives a 32-byte symmetric key from passphrase, salt and
// rounds. rounds == 0 is the "no password" sentinel: the derived key is
// all zero and bcrypt is never invoked.
func DeriveKey(passphrase string, salt [16]byte, rounds uint32) ([primitives.KeySize]byte, error) {
	var key [primitives.KeySize]byte
	if rounds == domain.NoPasswordKDFRounds {
		return key, nil
	}
	raw, err := bcrypt_pbkdf.Key([]byte(passphrase), salt[:], int(rounds), primitives.KeySize)
	if err != nil {
		return key, reoperr.IOErrorf(err, "bcrypt-pbkdf")
	}
	copy(key[:], raw)
	return key, nil
}

// Wrap encrypts sec's sealed sigkey||enckey region in place under a key
// derived from passphrase, a fresh random salt, and rounds. An empty
// passphrase selects domain.NoPasswordKDFRounds regardless of rounds. It
// sets SymAlg, KDFAlg, KDFRounds, Salt, Nonce and Tag on sec.
func Wrap(sec *domain.SecretKey, passphrase string, rounds uint32) error {
	if passphrase == "" {
		rounds = domain.NoPasswordKDFRounds
	}
	var salt [16]byte
	if err := primitives.RandomBytes(salt[:]); err != nil {
		return err
	}
	key, err := DeriveKey(passphrase, salt, rounds)
	if err != nil {
		return err
	}
	defer primitives.Zeroize(key[:])

	sealed := sec.SealedBytes()
	nonce, tag, err := primitives.SymEncrypt(sealed, key)
	if err != nil {
		return err
	}

	sec.SymAlg = domain.Tag2(domain.SymAlgSP)
	sec.KDFAlg = domain.Tag2(domain.KDFAlgBK)
	sec.KDFRounds = rounds
	sec.Salt = salt
	sec.Nonce = nonce
	sec.Tag = tag
	sec.SetSealedBytes(sealed)
	return nil
}

// Unwrap decrypts sec's sealed sigkey||enckey region in place using
// passphrase. On any failure sec is left untouched and a typed error is
// returned; no partial plaintext is exposed.
func Unwrap(sec *domain.SecretKey, passphrase string) error {
	if string(sec.KDFAlg[:]) != domain.KDFAlgBK {
		return reoperr.AlgorithmUnsupportedf("kdfalg %q", sec.KDFAlg)
	}
	if string(sec.SymAlg[:]) != domain.SymAlgSP {
		return reoperr.AlgorithmUnsupportedf("symalg %q", sec.SymAlg)
	}

	key, err := DeriveKey(passphrase, sec.Salt, sec.KDFRounds)
	if err != nil {
		return err
	}
	defer primitives.Zeroize(key[:])

	sealed := sec.SealedBytes()
	if err := primitives.SymDecrypt(sealed, sec.Nonce, sec.Tag, key); err != nil {
		primitives.Zeroize(sealed)
		return err
	}
	sec.SetSealedBytes(sealed)
	primitives.Zeroize(sealed)
	return nil
}
