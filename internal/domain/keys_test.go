package domain_test

import (
	"bytes"
	"testing"

	"reop/internal/domain"
)

func TestSecretKeySealedBytesRoundTrip(t *testing.T) {
	var sec domain.SecretKey
	for i := range sec.SigKey {
		sec.SigKey[i] = byte(i)
	}
	for i := range sec.EncKey {
		sec.EncKey[i] = byte(200 + i)
	}

	sealed := sec.SealedBytes()
	if len(sealed) != len(sec.SigKey)+len(sec.EncKey) {
		t.Fatalf("sealed length = %d, want %d", len(sealed), len(sec.SigKey)+len(sec.EncKey))
	}

	var other domain.SecretKey
	other.SetSealedBytes(sealed)
	if !bytes.Equal(other.SigKey[:], sec.SigKey[:]) {
		t.Fatal("sigkey did not round-trip")
	}
	if !bytes.Equal(other.EncKey[:], sec.EncKey[:]) {
		t.Fatal("enckey did not round-trip")
	}
}

func TestTag2(t *testing.T) {
	if got := domain.Tag2("Ed"); got != [2]byte{'E', 'd'} {
		t.Fatalf("Tag2(Ed) = %v", got)
	}
	if got := domain.Tag2(domain.EncAlgCS); got != [2]byte{'C', 'S'} {
		t.Fatalf("Tag2(CS) = %v", got)
	}
}
