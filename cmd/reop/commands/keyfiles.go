package commands

import (
	"fmt"

	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/kdf"
	"reop/internal/primitives"
	"reop/internal/reoperr"
)

func loadPublicKey(path string) (domain.PublicKey, error) {
	data, err := appCtx.Files.ReadAll(path, domain.MaxInputBytes)
	if err != nil {
		return domain.PublicKey{}, err
	}
	ident, payload, err := envelope.DecodeBlock(data, envelope.KindPublicKey, domain.PublicKeySize)
	if err != nil {
		return domain.PublicKey{}, err
	}
	pub, err := envelope.UnmarshalPublicKey(payload)
	if err != nil {
		return domain.PublicKey{}, err
	}
	pub.Ident = ident
	return pub, nil
}

func loadSecretKey(path string) (domain.SecretKey, error) {
	data, err := appCtx.Files.ReadAll(path, domain.MaxInputBytes)
	if err != nil {
		return domain.SecretKey{}, err
	}
	keyIdent, payload, err := envelope.DecodeBlock(data, envelope.KindSecretKey, domain.SecretKeySize)
	if err != nil {
		return domain.SecretKey{}, err
	}
	sec, err := envelope.UnmarshalSecretKey(payload)
	if err != nil {
		return domain.SecretKey{}, err
	}
	sec.Ident = keyIdent

	phrase := ""
	if sec.KDFRounds != 0 {
		phrase, err = appCtx.Passphrase.ReadPassphrase(fmt.Sprintf("passphrase for %s: ", path), false)
		if err != nil {
			return domain.SecretKey{}, err
		}
	}
	if err := kdf.Unwrap(&sec, phrase); err != nil {
		return domain.SecretKey{}, err
	}
	return sec, nil
}

func writePublicKey(path string, pub domain.PublicKey) error {
	block := envelope.EncodeBlock(envelope.KindPublicKey, pub.Ident, envelope.MarshalPublicKey(pub))
	return appCtx.Files.WriteAll(path, block, 0o644, true)
}

func writeSecretKey(path string, sec domain.SecretKey) error {
	block := envelope.EncodeBlock(envelope.KindSecretKey, sec.Ident, envelope.MarshalSecretKey(sec))
	return appCtx.Files.WriteAll(path, block, 0o600, true)
}

// zeroizeSecretKey wipes the plaintext sigkey/enckey of a loaded secret
// key. Callers should defer this immediately after a successful
// loadSecretKey.
func zeroizeSecretKey(sec *domain.SecretKey) {
	primitives.Zeroize(sec.SigKey[:])
	primitives.Zeroize(sec.EncKey[:])
}

// defaultOutPath appends suffix to msgfile, refusing to do so for the
// stdio sentinel.
func defaultOutPath(msgfile, suffix string) (string, error) {
	if msgfile == "-" {
		return "", reoperr.IOf("must specify an output file explicitly when reading the message from stdin")
	}
	return msgfile + suffix, nil
}
