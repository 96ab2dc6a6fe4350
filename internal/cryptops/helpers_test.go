package cryptops_test

import (
	"testing"

	"reop/internal/domain"
	"reop/internal/kdf"
	"reop/internal/primitives"
)

func unwrapTest(kp *domain.Keypair) error {
	return kdf.Unwrap(&kp.Secret, "passphrase")
}

// encryptLegacyCSForTest builds a legacy non-ephemeral "CS" envelope the
// way a v1-compatible encrypter would, directly boxing the message under
// (recipient, sender) with no ephemeral key.
func encryptLegacyCSForTest(t *testing.T, msg []byte, sender domain.Keypair, recipient domain.PublicKey) (domain.LegacyCSEnvelope, []byte) {
	t.Helper()
	buf := append([]byte(nil), msg...)
	nonce, tag, err := primitives.PubEncrypt(buf, recipient.EncKey, sender.Secret.EncKey)
	if err != nil {
		t.Fatalf("PubEncrypt: %v", err)
	}
	env := domain.LegacyCSEnvelope{
		EncAlg:      domain.Tag2(domain.EncAlgCS),
		SecRandomID: sender.Secret.RandomID,
		PubRandomID: recipient.RandomID,
		Nonce:       nonce,
		Tag:         tag,
	}
	return env, buf
}

// encryptLegacyESForTest builds a legacy ephemeral-key "eS" envelope: a
// throwaway keypair boxes the message directly to the recipient, with no
// sender authentication at all.
func encryptLegacyESForTest(t *testing.T, msg []byte, recipient domain.PublicKey) (domain.LegacyESEnvelope, []byte) {
	t.Helper()
	ephPub, ephSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}
	buf := append([]byte(nil), msg...)
	nonce, tag, err := primitives.PubEncrypt(buf, recipient.EncKey, ephSec)
	if err != nil {
		t.Fatalf("PubEncrypt: %v", err)
	}
	env := domain.LegacyESEnvelope{
		EkcAlg:      domain.Tag2(domain.EncAlgES),
		PubRandomID: recipient.RandomID,
		PubKey:      ephPub,
		Nonce:       nonce,
		Tag:         tag,
	}
	return env, buf
}
