package cryptops

import (
	"reop/internal/domain"
	"reop/internal/primitives"
	"reop/internal/reoperr"
)

// EncryptPublicKey encrypts msg from sender to recipient using a fresh
// ephemeral keypair: the message body is boxed under (recipient, eph),
// and the ephemeral public key is itself boxed under (recipient, sender)
// so the recipient can authenticate it as coming from sender.
func EncryptPublicKey(msg []byte, sender domain.Keypair, recipient domain.PublicKey) (domain.PublicKeyEnvelope, []byte, error) {
	ephPub, ephSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		return domain.PublicKeyEnvelope{}, nil, err
	}
	defer primitives.Zeroize(ephSec[:])

	buf := append([]byte(nil), msg...)
	nonce, tag, err := primitives.PubEncrypt(buf, recipient.EncKey, ephSec)
	if err != nil {
		return domain.PublicKeyEnvelope{}, nil, err
	}

	ephPubBuf := append([]byte(nil), ephPub[:]...)
	ephNonce, ephTag, err := primitives.PubEncrypt(ephPubBuf, recipient.EncKey, sender.Secret.EncKey)
	if err != nil {
		return domain.PublicKeyEnvelope{}, nil, err
	}
	var sealedEphPub [32]byte
	copy(sealedEphPub[:], ephPubBuf)

	env := domain.PublicKeyEnvelope{
		EncAlg:      domain.Tag2(domain.EncAlgEC),
		SecRandomID: sender.Secret.RandomID,
		PubRandomID: recipient.RandomID,
		EphPubKey:   sealedEphPub,
		EphNonce:    ephNonce,
		EphTag:      ephTag,
		Nonce:       nonce,
		Tag:         tag,
		Ident:       sender.Secret.Ident,
	}
	return env, buf, nil
}

// DecryptPublicKey reverses EncryptPublicKey. senderPub is the sender's
// claimed public key, looked up or supplied out of band.
func DecryptPublicKey(env domain.PublicKeyEnvelope, ciphertext []byte, recipientSec domain.SecretKey, senderPub domain.PublicKey) ([]byte, error) {
	if env.PubRandomID != recipientSec.RandomID || env.SecRandomID != senderPub.RandomID {
		return nil, reoperr.Mismatchf("public-key envelope randomid does not match supplied keys")
	}
	if string(recipientSec.EncAlg[:]) != domain.EncAlgCS || string(senderPub.EncAlg[:]) != domain.EncAlgCS {
		return nil, reoperr.AlgorithmUnsupportedf("encalg must be %q on both keys", domain.EncAlgCS)
	}

	ephPubBuf := append([]byte(nil), env.EphPubKey[:]...)
	if err := primitives.PubDecrypt(ephPubBuf, env.EphNonce, env.EphTag, senderPub.EncKey, recipientSec.EncKey); err != nil {
		return nil, err
	}
	var ephPub [32]byte
	copy(ephPub[:], ephPubBuf)

	buf := append([]byte(nil), ciphertext...)
	if err := primitives.PubDecrypt(buf, env.Nonce, env.Tag, ephPub, recipientSec.EncKey); err != nil {
		primitives.Zeroize(buf)
		return nil, err
	}
	return buf, nil
}

// DecryptLegacyCS decrypts the legacy non-ephemeral "CS" envelope.
//
// The source's binding check compares pubrandomid against the secret
// key's randomid twice, never checking secrandomid at all, almost
// certainly a copy-paste bug rather than an intended design. Here both
// randomids are validated against both supplied keys, accepting either
// assignment of which field names which key.
func DecryptLegacyCS(env domain.LegacyCSEnvelope, ciphertext []byte, recipientSec domain.SecretKey, senderPub domain.PublicKey) ([]byte, error) {
	bound := (env.SecRandomID == senderPub.RandomID && env.PubRandomID == recipientSec.RandomID) ||
		(env.SecRandomID == recipientSec.RandomID && env.PubRandomID == senderPub.RandomID)
	if !bound {
		return nil, reoperr.Mismatchf("legacy CS envelope randomid does not match supplied keys")
	}
	if string(recipientSec.EncAlg[:]) != domain.EncAlgCS || string(senderPub.EncAlg[:]) != domain.EncAlgCS {
		return nil, reoperr.AlgorithmUnsupportedf("encalg must be %q on both keys", domain.EncAlgCS)
	}

	buf := append([]byte(nil), ciphertext...)
	if err := primitives.PubDecrypt(buf, env.Nonce, env.Tag, senderPub.EncKey, recipientSec.EncKey); err != nil {
		primitives.Zeroize(buf)
		return nil, err
	}
	return buf, nil
}

// DecryptLegacyES decrypts the legacy ephemeral-key "eS" envelope, which
// needs only the recipient's secret key.
func DecryptLegacyES(env domain.LegacyESEnvelope, ciphertext []byte, recipientSec domain.SecretKey) ([]byte, error) {
	if env.PubRandomID != recipientSec.RandomID {
		return nil, reoperr.Mismatchf("legacy eS envelope randomid does not match recipient key")
	}

	buf := append([]byte(nil), ciphertext...)
	if err := primitives.PubDecrypt(buf, env.Nonce, env.Tag, env.PubKey, recipientSec.EncKey); err != nil {
		primitives.Zeroize(buf)
		return nil, err
	}
	return buf, nil
}
