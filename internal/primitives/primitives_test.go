package primitives_test

import (
	"bytes"
	"testing"

	"reop/internal/primitives"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	pub, sec, err := primitives.GenerateSigningKeypair()
	if err != nil {
		t.Fatalf("GenerateSigningKeypair: %v", err)
	}
	msg := []byte("the quick brown fox")
	sig := primitives.SignDetached(sec, msg)
	if !primitives.VerifyDetached(pub, msg, sig) {
		t.Fatal("signature did not verify")
	}
	if primitives.VerifyDetached(pub, []byte("tampered"), sig) {
		t.Fatal("signature verified over the wrong message")
	}
}

func TestSymEncryptDecryptRoundTrip(t *testing.T) {
	var key [primitives.KeySize]byte
	for i := range key {
		key[i] = byte(i)
	}
	plain := []byte("symmetric secretbox payload")
	buf := append([]byte(nil), plain...)

	nonce, tag, err := primitives.SymEncrypt(buf, key)
	if err != nil {
		t.Fatalf("SymEncrypt: %v", err)
	}
	if bytes.Equal(buf, plain) {
		t.Fatal("buffer was not encrypted in place")
	}

	if err := primitives.SymDecrypt(buf, nonce, tag, key); err != nil {
		t.Fatalf("SymDecrypt: %v", err)
	}
	if !bytes.Equal(buf, plain) {
		t.Fatalf("decrypted = %q, want %q", buf, plain)
	}
}

func TestSymDecryptRejectsTamperedTag(t *testing.T) {
	var key [primitives.KeySize]byte
	buf := []byte("another payload")
	nonce, tag, err := primitives.SymEncrypt(buf, key)
	if err != nil {
		t.Fatalf("SymEncrypt: %v", err)
	}
	tag[0] ^= 0xff

	if err := primitives.SymDecrypt(buf, nonce, tag, key); err == nil {
		t.Fatal("expected authentication failure on tampered tag")
	}
}

func TestPubEncryptDecryptRoundTrip(t *testing.T) {
	recipientPub, recipientSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}
	senderPub, senderSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}

	plain := []byte("box payload between two parties")
	buf := append([]byte(nil), plain...)
	nonce, tag, err := primitives.PubEncrypt(buf, recipientPub, senderSec)
	if err != nil {
		t.Fatalf("PubEncrypt: %v", err)
	}

	if err := primitives.PubDecrypt(buf, nonce, tag, senderPub, recipientSec); err != nil {
		t.Fatalf("PubDecrypt: %v", err)
	}
	if !bytes.Equal(buf, plain) {
		t.Fatalf("decrypted = %q, want %q", buf, plain)
	}
}

func TestPubDecryptRejectsWrongSender(t *testing.T) {
	recipientPub, recipientSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}
	_, senderSec, err := primitives.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}
	impostorPub, _, err := primitives.GenerateBoxKeypair()
	if err != nil {
		t.Fatalf("GenerateBoxKeypair: %v", err)
	}

	buf := []byte("payload")
	nonce, tag, err := primitives.PubEncrypt(buf, recipientPub, senderSec)
	if err != nil {
		t.Fatalf("PubEncrypt: %v", err)
	}
	if err := primitives.PubDecrypt(buf, nonce, tag, impostorPub, recipientSec); err == nil {
		t.Fatal("expected authentication failure for the wrong sender key")
	}
}

func TestZeroize(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	primitives.Zeroize(buf)
	for _, b := range buf {
		if b != 0 {
			t.Fatal("Zeroize left non-zero bytes")
		}
	}
}
