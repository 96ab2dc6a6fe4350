package keyops_test

import (
	"testing"

	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/kdf"
)

func unwrap(t *testing.T, kp *domain.Keypair) error {
	t.Helper()
	return kdf.Unwrap(&kp.Secret, "passphrase")
}

func encodeSignedForTest(msg []byte, sig domain.Signature) []byte {
	return envelope.EncodeSignedMessage(msg, sig.Ident, envelope.MarshalSignature(sig))
}
