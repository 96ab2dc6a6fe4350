package envelope_test

import (
	"bytes"
	"strings"
	"testing"

	"reop/internal/envelope"
)

func TestEncodeDecodeBlockRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 42)
	block := envelope.EncodeBlock(envelope.KindSignature, "alice", payload)

	if !strings.HasPrefix(string(block), "-----BEGIN REOP SIGNATURE-----\n") {
		t.Fatalf("missing begin marker: %q", block)
	}
	if !strings.Contains(string(block), "ident:alice\n") {
		t.Fatalf("missing ident line: %q", block)
	}

	ident, got, err := envelope.DecodeBlock(block, envelope.KindSignature, len(payload))
	if err != nil {
		t.Fatalf("DecodeBlock: %v", err)
	}
	if ident != "alice" {
		t.Fatalf("ident = %q, want alice", ident)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("payload mismatch")
	}
}

func TestDecodeBlockWrongKind(t *testing.T) {
	block := envelope.EncodeBlock(envelope.KindPublicKey, "bob", []byte("xyz"))
	if _, _, err := envelope.DecodeBlock(block, envelope.KindSignature, 3); err == nil {
		t.Fatal("expected error decoding wrong kind")
	}
}

func TestDecodeBlockWrongSize(t *testing.T) {
	block := envelope.EncodeBlock(envelope.KindSignature, "bob", []byte("xyz"))
	if _, _, err := envelope.DecodeBlock(block, envelope.KindSignature, 99); err == nil {
		t.Fatal("expected error for wrong payload size")
	}
}

func TestEncodeDecodeEncryptedMessageRoundTrip(t *testing.T) {
	header := bytes.Repeat([]byte{0x11}, 20)
	ciphertext := bytes.Repeat([]byte{0x22}, 500)

	data := envelope.EncodeEncryptedMessage("carol", header, ciphertext)
	ident, gotHeader, gotCipher, err := envelope.DecodeEncryptedMessage(data)
	if err != nil {
		t.Fatalf("DecodeEncryptedMessage: %v", err)
	}
	if ident != "carol" {
		t.Fatalf("ident = %q, want carol", ident)
	}
	if !bytes.Equal(gotHeader, header) {
		t.Fatal("header mismatch")
	}
	if !bytes.Equal(gotCipher, ciphertext) {
		t.Fatal("ciphertext mismatch")
	}
}

func TestDecodeBlockRejectsEmbeddedNULInIdent(t *testing.T) {
	block := []byte("-----BEGIN REOP SIGNATURE-----\nident:al\x00ice\nYWJj\n-----END REOP SIGNATURE-----\n")
	if _, _, err := envelope.DecodeBlock(block, envelope.KindSignature, 3); err == nil {
		t.Fatal("expected error for an ident containing an embedded NUL")
	}
}

func TestArmorWrapsLongLines(t *testing.T) {
	block := envelope.EncodeBlock(envelope.KindPublicKey, "x", bytes.Repeat([]byte{1}, 200))
	for _, line := range strings.Split(string(block), "\n") {
		if len(line) > 76 {
			t.Fatalf("line exceeds wrap width: %d bytes", len(line))
		}
	}
}
