package envelope_test

import (
	"bytes"
	"testing"

	"reop/internal/domain"
	"reop/internal/envelope"
)

func TestEncodeSplitSignedMessageRoundTrip(t *testing.T) {
	message := []byte("hello, world\n")
	payload := bytes.Repeat([]byte{0x7}, domain.SignatureSize)

	data := envelope.EncodeSignedMessage(message, "eve", payload)
	gotMsg, ident, gotPayload, err := envelope.SplitSignedMessage(data)
	if err != nil {
		t.Fatalf("SplitSignedMessage: %v", err)
	}
	if !bytes.Equal(gotMsg, message) {
		t.Fatalf("message = %q, want %q", gotMsg, message)
	}
	if ident != "eve" {
		t.Fatalf("ident = %q, want eve", ident)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Fatal("signature payload mismatch")
	}
}

// A message body that itself contains a signature-block opener must not
// confuse the parser: the real signature is always the last occurrence.
func TestSplitSignedMessageTakesLastOccurrence(t *testing.T) {
	innerMessage := []byte("decoy text\n-----BEGIN REOP SIGNATURE-----\nnot a real block\n")
	payload := bytes.Repeat([]byte{0x9}, domain.SignatureSize)

	data := envelope.EncodeSignedMessage(innerMessage, "frank", payload)
	gotMsg, ident, gotPayload, err := envelope.SplitSignedMessage(data)
	if err != nil {
		t.Fatalf("SplitSignedMessage: %v", err)
	}
	if !bytes.Equal(gotMsg, innerMessage) {
		t.Fatalf("message = %q, want %q", gotMsg, innerMessage)
	}
	if ident != "frank" {
		t.Fatalf("ident = %q, want frank", ident)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Fatal("signature payload mismatch")
	}
}

func TestSplitSignedMessageMissingBegin(t *testing.T) {
	if _, _, _, err := envelope.SplitSignedMessage([]byte("not a signed message")); err == nil {
		t.Fatal("expected error for missing begin marker")
	}
}

func TestSplitSignedMessageMissingSignatureBlock(t *testing.T) {
	data := []byte("-----BEGIN REOP SIGNED MESSAGE-----\nhi\n-----END REOP SIGNED MESSAGE-----\n")
	if _, _, _, err := envelope.SplitSignedMessage(data); err == nil {
		t.Fatal("expected error for missing signature block")
	}
}
