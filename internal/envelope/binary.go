package envelope

import (
	"bytes"
	"encoding/binary"

	"reop/internal/domain"
	"reop/internal/reoperr"
)

// HeaderSizeForTag returns the fixed header size for a given 2-byte
// envelope algorithm tag, or an algorithm_unsupported error for anything
// else.
func HeaderSizeForTag(tag string) (int, error) {
	switch tag {
	case domain.SymAlgSP:
		return domain.SymmetricHeaderSize, nil
	case domain.EncAlgEC:
		return domain.PublicKeyEnvelopeSize, nil
	case domain.EncAlgCS:
		return domain.LegacyCSEnvelopeSize, nil
	case domain.EncAlgES:
		return domain.LegacyESEnvelopeSize, nil
	default:
		return 0, reoperr.AlgorithmUnsupportedf("unknown envelope tag %q", tag)
	}
}

// EncodeBinaryMessage renders the binary framing: magic, fixed header
// (size determined by its own leading algorithm tag), a big-endian u32
// identity length, the identity bytes, then the raw ciphertext.
func EncodeBinaryMessage(ident string, header, ciphertext []byte) []byte {
	buf := make([]byte, 0, len(domain.BinaryMagic)+len(header)+4+len(ident)+len(ciphertext))
	buf = append(buf, domain.BinaryMagic[:]...)
	buf = append(buf, header...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(ident)))
	buf = append(buf, ident...)
	buf = append(buf, ciphertext...)
	return buf
}

// DecodeBinaryMessage parses the binary framing produced by
// EncodeBinaryMessage (or one of the legacy variants it also accepts on
// read), returning the envelope's algorithm tag, its raw header bytes,
// the identity string, and the ciphertext.
func DecodeBinaryMessage(data []byte) (tag string, header []byte, ident string, ciphertext []byte, err error) {
	if len(data) < len(domain.BinaryMagic) || [4]byte(data[:4]) != domain.BinaryMagic {
		return "", nil, "", nil, reoperr.Formatf("binary: bad magic")
	}
	rest := data[len(domain.BinaryMagic):]
	if len(rest) < 2 {
		return "", nil, "", nil, reoperr.Formatf("binary: truncated header")
	}
	tag = string(rest[:2])
	size, err := HeaderSizeForTag(tag)
	if err != nil {
		return "", nil, "", nil, err
	}
	if len(rest) < size+4 {
		return "", nil, "", nil, reoperr.Formatf("binary: truncated header")
	}
	header = rest[:size]
	rest = rest[size:]

	idLen := binary.BigEndian.Uint32(rest[:4])
	rest = rest[4:]
	if idLen > domain.IdentMaxBytes {
		return "", nil, "", nil, reoperr.Formatf("binary: identity length %d exceeds buffer", idLen)
	}
	if uint64(len(rest)) < uint64(idLen) {
		return "", nil, "", nil, reoperr.Formatf("binary: truncated identity")
	}
	identBytes := rest[:idLen]
	if bytes.IndexByte(identBytes, 0) >= 0 {
		return "", nil, "", nil, reoperr.Formatf("binary: identity contains an embedded NUL")
	}
	ident = string(identBytes)
	ciphertext = rest[idLen:]
	return tag, header, ident, ciphertext, nil
}
