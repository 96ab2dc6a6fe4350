package envelope

import (
	"encoding/binary"

	"reop/internal/domain"
	"reop/internal/reoperr"
)

// MarshalPublicKey serializes pk's raw fields (everything but Ident) into
// exactly domain.PublicKeySize bytes.
func MarshalPublicKey(pk domain.PublicKey) []byte {
	buf := make([]byte, 0, domain.PublicKeySize)
	buf = append(buf, pk.SigAlg[:]...)
	buf = append(buf, pk.EncAlg[:]...)
	buf = append(buf, pk.RandomID[:]...)
	buf = append(buf, pk.SigKey[:]...)
	buf = append(buf, pk.EncKey[:]...)
	return buf
}

// UnmarshalPublicKey parses exactly domain.PublicKeySize bytes into a
// PublicKey (Ident left zero-valued; callers set it from the out-of-band
// identity string).
func UnmarshalPublicKey(b []byte) (domain.PublicKey, error) {
	var pk domain.PublicKey
	if len(b) != domain.PublicKeySize {
		return pk, reoperr.Formatf("public key: want %d bytes, got %d", domain.PublicKeySize, len(b))
	}
	off := 0
	off = readN(b, off, pk.SigAlg[:])
	off = readN(b, off, pk.EncAlg[:])
	off = readN(b, off, pk.RandomID[:])
	off = readN(b, off, pk.SigKey[:])
	readN(b, off, pk.EncKey[:])
	return pk, nil
}

// MarshalSecretKey serializes sec's raw fields (everything but Ident)
// into exactly domain.SecretKeySize bytes.
func MarshalSecretKey(sec domain.SecretKey) []byte {
	buf := make([]byte, 0, domain.SecretKeySize)
	buf = append(buf, sec.SigAlg[:]...)
	buf = append(buf, sec.EncAlg[:]...)
	buf = append(buf, sec.SymAlg[:]...)
	buf = append(buf, sec.KDFAlg[:]...)
	buf = append(buf, sec.RandomID[:]...)
	buf = binary.BigEndian.AppendUint32(buf, sec.KDFRounds)
	buf = append(buf, sec.Salt[:]...)
	buf = append(buf, sec.Nonce[:]...)
	buf = append(buf, sec.Tag[:]...)
	buf = append(buf, sec.SigKey[:]...)
	buf = append(buf, sec.EncKey[:]...)
	return buf
}

// UnmarshalSecretKey parses exactly domain.SecretKeySize bytes into a
// SecretKey.
func UnmarshalSecretKey(b []byte) (domain.SecretKey, error) {
	var sec domain.SecretKey
	if len(b) != domain.SecretKeySize {
		return sec, reoperr.Formatf("secret key: want %d bytes, got %d", domain.SecretKeySize, len(b))
	}
	off := 0
	off = readN(b, off, sec.SigAlg[:])
	off = readN(b, off, sec.EncAlg[:])
	off = readN(b, off, sec.SymAlg[:])
	off = readN(b, off, sec.KDFAlg[:])
	off = readN(b, off, sec.RandomID[:])
	sec.KDFRounds = binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	off = readN(b, off, sec.Salt[:])
	off = readN(b, off, sec.Nonce[:])
	off = readN(b, off, sec.Tag[:])
	off = readN(b, off, sec.SigKey[:])
	readN(b, off, sec.EncKey[:])
	return sec, nil
}

// MarshalSignature serializes sig's raw fields (everything but Ident)
// into exactly domain.SignatureSize bytes.
func MarshalSignature(sig domain.Signature) []byte {
	buf := make([]byte, 0, domain.SignatureSize)
	buf = append(buf, sig.SigAlg[:]...)
	buf = append(buf, sig.RandomID[:]...)
	buf = append(buf, sig.Sig[:]...)
	return buf
}

// UnmarshalSignature parses exactly domain.SignatureSize bytes into a
// Signature.
func UnmarshalSignature(b []byte) (domain.Signature, error) {
	var sig domain.Signature
	if len(b) != domain.SignatureSize {
		return sig, reoperr.Formatf("signature: want %d bytes, got %d", domain.SignatureSize, len(b))
	}
	off := 0
	off = readN(b, off, sig.SigAlg[:])
	off = readN(b, off, sig.RandomID[:])
	readN(b, off, sig.Sig[:])
	return sig, nil
}

// MarshalSymmetricHeader serializes h into exactly
// domain.SymmetricHeaderSize bytes.
func MarshalSymmetricHeader(h domain.SymmetricHeader) []byte {
	buf := make([]byte, 0, domain.SymmetricHeaderSize)
	buf = append(buf, h.SymAlg[:]...)
	buf = append(buf, h.KDFAlg[:]...)
	buf = binary.BigEndian.AppendUint32(buf, h.KDFRounds)
	buf = append(buf, h.Salt[:]...)
	buf = append(buf, h.Nonce[:]...)
	buf = append(buf, h.Tag[:]...)
	return buf
}

// UnmarshalSymmetricHeader parses exactly domain.SymmetricHeaderSize
// bytes into a SymmetricHeader.
func UnmarshalSymmetricHeader(b []byte) (domain.SymmetricHeader, error) {
	var h domain.SymmetricHeader
	if len(b) != domain.SymmetricHeaderSize {
		return h, reoperr.Formatf("symmetric header: want %d bytes, got %d", domain.SymmetricHeaderSize, len(b))
	}
	off := 0
	off = readN(b, off, h.SymAlg[:])
	off = readN(b, off, h.KDFAlg[:])
	h.KDFRounds = binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	off = readN(b, off, h.Salt[:])
	off = readN(b, off, h.Nonce[:])
	readN(b, off, h.Tag[:])
	return h, nil
}

// MarshalPublicKeyEnvelope serializes e's raw fields (everything but
// Ident) into exactly domain.PublicKeyEnvelopeSize bytes.
func MarshalPublicKeyEnvelope(e domain.PublicKeyEnvelope) []byte {
	buf := make([]byte, 0, domain.PublicKeyEnvelopeSize)
	buf = append(buf, e.EncAlg[:]...)
	buf = append(buf, e.SecRandomID[:]...)
	buf = append(buf, e.PubRandomID[:]...)
	buf = append(buf, e.EphPubKey[:]...)
	buf = append(buf, e.EphNonce[:]...)
	buf = append(buf, e.EphTag[:]...)
	buf = append(buf, e.Nonce[:]...)
	buf = append(buf, e.Tag[:]...)
	return buf
}

// UnmarshalPublicKeyEnvelope parses exactly domain.PublicKeyEnvelopeSize
// bytes into a PublicKeyEnvelope.
func UnmarshalPublicKeyEnvelope(b []byte) (domain.PublicKeyEnvelope, error) {
	var e domain.PublicKeyEnvelope
	if len(b) != domain.PublicKeyEnvelopeSize {
		return e, reoperr.Formatf("public-key envelope: want %d bytes, got %d", domain.PublicKeyEnvelopeSize, len(b))
	}
	off := 0
	off = readN(b, off, e.EncAlg[:])
	off = readN(b, off, e.SecRandomID[:])
	off = readN(b, off, e.PubRandomID[:])
	off = readN(b, off, e.EphPubKey[:])
	off = readN(b, off, e.EphNonce[:])
	off = readN(b, off, e.EphTag[:])
	off = readN(b, off, e.Nonce[:])
	readN(b, off, e.Tag[:])
	return e, nil
}

// MarshalLegacyCSEnvelope serializes e into exactly
// domain.LegacyCSEnvelopeSize bytes.
func MarshalLegacyCSEnvelope(e domain.LegacyCSEnvelope) []byte {
	buf := make([]byte, 0, domain.LegacyCSEnvelopeSize)
	buf = append(buf, e.EncAlg[:]...)
	buf = append(buf, e.SecRandomID[:]...)
	buf = append(buf, e.PubRandomID[:]...)
	buf = append(buf, e.Nonce[:]...)
	buf = append(buf, e.Tag[:]...)
	return buf
}

// UnmarshalLegacyCSEnvelope parses exactly domain.LegacyCSEnvelopeSize
// bytes into a LegacyCSEnvelope.
func UnmarshalLegacyCSEnvelope(b []byte) (domain.LegacyCSEnvelope, error) {
	var e domain.LegacyCSEnvelope
	if len(b) != domain.LegacyCSEnvelopeSize {
		return e, reoperr.Formatf("legacy CS envelope: want %d bytes, got %d", domain.LegacyCSEnvelopeSize, len(b))
	}
	off := 0
	off = readN(b, off, e.EncAlg[:])
	off = readN(b, off, e.SecRandomID[:])
	off = readN(b, off, e.PubRandomID[:])
	off = readN(b, off, e.Nonce[:])
	readN(b, off, e.Tag[:])
	return e, nil
}

// MarshalLegacyESEnvelope serializes e into exactly
// domain.LegacyESEnvelopeSize bytes.
func MarshalLegacyESEnvelope(e domain.LegacyESEnvelope) []byte {
	buf := make([]byte, 0, domain.LegacyESEnvelopeSize)
	buf = append(buf, e.EkcAlg[:]...)
	buf = append(buf, e.PubRandomID[:]...)
	buf = append(buf, e.PubKey[:]...)
	buf = append(buf, e.Nonce[:]...)
	buf = append(buf, e.Tag[:]...)
	return buf
}

// UnmarshalLegacyESEnvelope parses exactly domain.LegacyESEnvelopeSize
// bytes into a LegacyESEnvelope.
func UnmarshalLegacyESEnvelope(b []byte) (domain.LegacyESEnvelope, error) {
	var e domain.LegacyESEnvelope
	if len(b) != domain.LegacyESEnvelopeSize {
		return e, reoperr.Formatf("legacy eS envelope: want %d bytes, got %d", domain.LegacyESEnvelopeSize, len(b))
	}
	off := 0
	off = readN(b, off, e.EkcAlg[:])
	off = readN(b, off, e.PubRandomID[:])
	off = readN(b, off, e.PubKey[:])
	off = readN(b, off, e.Nonce[:])
	readN(b, off, e.Tag[:])
	return e, nil
}

// readN copies len(dst) bytes from b starting at off into dst, returning
// the next offset.
func readN(b []byte, off int, dst []byte) int {
	copy(dst, b[off:off+len(dst)])
	return off + len(dst)
}
