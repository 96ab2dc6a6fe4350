package keyops_test

import (
	"bytes"
	"testing"

	"reop/internal/domain"
	"reop/internal/keyops"
)

type memRing map[string]domain.PublicKey

func (m memRing) FindPublicKeyByIdent(ident string) (domain.PublicKey, bool, error) {
	pub, ok := m[ident]
	return pub, ok, nil
}

func mustGenerate(t *testing.T, ident string) domain.Keypair {
	t.Helper()
	kp, err := keyops.Generate(ident, "passphrase", 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := unwrap(t, &kp); err != nil {
		t.Fatalf("unwrap generated key: %v", err)
	}
	return kp
}

func TestGenerateProducesBoundKeypair(t *testing.T) {
	kp := mustGenerate(t, "alice")
	if kp.Public.RandomID != kp.Secret.RandomID {
		t.Fatal("public and secret randomid do not match")
	}
	if kp.Public.Ident != kp.Secret.Ident {
		t.Fatal("public and secret ident do not match")
	}
	if kp.Public.SigKey == ([32]byte{}) {
		t.Fatal("signing public key was not generated")
	}
	if kp.Public.EncKey == ([32]byte{}) {
		t.Fatal("encryption public key was not generated")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	kp := mustGenerate(t, "alice")
	msg := []byte("message to sign")
	sig := keyops.Sign(kp.Secret, msg)

	if err := keyops.Verify(kp.Public, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsWrongKeyAsMismatch(t *testing.T) {
	alice := mustGenerate(t, "alice")
	bob := mustGenerate(t, "bob")
	msg := []byte("message to sign")
	sig := keyops.Sign(alice.Secret, msg)

	err := keyops.Verify(bob.Public, msg, sig)
	if err == nil {
		t.Fatal("expected an error verifying under the wrong public key")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("mismatch")) {
		t.Fatalf("expected a mismatch error, got %v", err)
	}
}

func TestVerifyRejectsTamperedMessageAsAuthFail(t *testing.T) {
	kp := mustGenerate(t, "alice")
	msg := []byte("message to sign")
	sig := keyops.Sign(kp.Secret, msg)

	err := keyops.Verify(kp.Public, []byte("tampered message"), sig)
	if err == nil {
		t.Fatal("expected an error verifying a tampered message")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("auth_fail")) {
		t.Fatalf("expected an auth_fail error, got %v", err)
	}
}

func TestVerifyEmbeddedRoundTrip(t *testing.T) {
	kp := mustGenerate(t, "alice")
	msg := []byte("embedded message body\n")
	sig := keyops.Sign(kp.Secret, msg)

	frame := encodeSignedForTest(msg, sig)
	ring := memRing{"alice": kp.Public}
	got, err := keyops.VerifyEmbedded(frame, nil, ring)
	if err != nil {
		t.Fatalf("VerifyEmbedded: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("recovered message = %q, want %q", got, msg)
	}
}
