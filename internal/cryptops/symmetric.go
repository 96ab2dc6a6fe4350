package cryptops

import (
	"reop/internal/domain"
	"reop/internal/kdf"
	"reop/internal/primitives"
	"reop/internal/reoperr"
)

// EncryptSymmetric derives a key from passphrase with a fresh salt and
// rounds, then encrypts a copy of msg (msg itself is left unchanged),
// returning the SP header alongside the ciphertext.
func EncryptSymmetric(msg []byte, passphrase string, rounds uint32) (domain.SymmetricHeader, []byte, error) {
	var salt [16]byte
	if err := primitives.RandomBytes(salt[:]); err != nil {
		return domain.SymmetricHeader{}, nil, err
	}
	key, err := kdf.DeriveKey(passphrase, salt, rounds)
	if err != nil {
		return domain.SymmetricHeader{}, nil, err
	}
	defer primitives.Zeroize(key[:])

	buf := append([]byte(nil), msg...)
	nonce, tag, err := primitives.SymEncrypt(buf, key)
	if err != nil {
		return domain.SymmetricHeader{}, nil, err
	}

	header := domain.SymmetricHeader{
		SymAlg:    domain.Tag2(domain.SymAlgSP),
		KDFAlg:    domain.Tag2(domain.KDFAlgBK),
		KDFRounds: rounds,
		Salt:      salt,
		Nonce:     nonce,
		Tag:       tag,
	}
	return header, buf, nil
}

// DecryptSymmetric reverses EncryptSymmetric.
func DecryptSymmetric(header domain.SymmetricHeader, ciphertext []byte, passphrase string) ([]byte, error) {
	if string(header.SymAlg[:]) != domain.SymAlgSP {
		return nil, reoperr.AlgorithmUnsupportedf("symalg %q", header.SymAlg)
	}
	if string(header.KDFAlg[:]) != domain.KDFAlgBK {
		return nil, reoperr.AlgorithmUnsupportedf("kdfalg %q", header.KDFAlg)
	}

	key, err := kdf.DeriveKey(passphrase, header.Salt, header.KDFRounds)
	if err != nil {
		return nil, err
	}
	defer primitives.Zeroize(key[:])

	buf := append([]byte(nil), ciphertext...)
	if err := primitives.SymDecrypt(buf, header.Nonce, header.Tag, key); err != nil {
		primitives.Zeroize(buf)
		return nil, err
	}
	return buf, nil
}
