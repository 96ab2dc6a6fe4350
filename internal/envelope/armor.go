package envelope

import (
	"bytes"
	"encoding/base64"
	"strings"

	"reop/internal/domain"
	"reop/internal/reoperr"
)

const (
	beginPrefix = "-----BEGIN REOP "
	endPrefix   = "-----END REOP "
	blockSuffix = "-----"
	identPrefix = "ident:"
)

// Kind names used in "-----BEGIN REOP <KIND>-----" markers.
const (
	KindPublicKey        = "PUBLIC KEY"
	KindSecretKey        = "SECRET KEY"
	KindSignature        = "SIGNATURE"
	KindEncryptedMessage = "ENCRYPTED MESSAGE"
	KindEncryptedMsgData = "ENCRYPTED MESSAGE DATA"
	KindSignedMessage    = "SIGNED MESSAGE"
)

// validateIdent rejects an identity string that is too long or carries an
// embedded NUL, which a naive string(buf) conversion would otherwise pass
// through silently.
func validateIdent(ident string) error {
	if len(ident) > domain.IdentMaxBytes {
		return reoperr.Formatf("armor: ident too long (%d bytes)", len(ident))
	}
	if strings.IndexByte(ident, 0) >= 0 {
		return reoperr.Formatf("armor: ident contains an embedded NUL")
	}
	return nil
}

// wrapBase64 base64-encodes data with the standard alphabet, inserting a
// line break every domain.ArmorWrapColumns characters without altering
// the decoded bytes.
func wrapBase64(data []byte) string {
	enc := base64.StdEncoding.EncodeToString(data)
	var b strings.Builder
	for len(enc) > 0 {
		n := domain.ArmorWrapColumns
		if n > len(enc) {
			n = len(enc)
		}
		b.WriteString(enc[:n])
		b.WriteByte('\n')
		enc = enc[n:]
	}
	return b.String()
}

// EncodeBlock renders a single "-----BEGIN REOP <kind>-----" / ident /
// base64 payload / "-----END REOP <kind>-----" block.
func EncodeBlock(kind, ident string, payload []byte) []byte {
	var b bytes.Buffer
	b.WriteString(beginPrefix)
	b.WriteString(kind)
	b.WriteString(blockSuffix + "\n")
	b.WriteString(identPrefix)
	b.WriteString(ident)
	b.WriteByte('\n')
	b.WriteString(wrapBase64(payload))
	b.WriteString(endPrefix)
	b.WriteString(kind)
	b.WriteString(blockSuffix + "\n")
	return b.Bytes()
}

// DecodeBlock parses a single armored block of the given kind, returning
// its ident and decoded payload. The payload must decode to exactly
// wantSize bytes unless wantSize is negative.
func DecodeBlock(data []byte, kind string, wantSize int) (ident string, payload []byte, err error) {
	lines := splitLines(data)
	if len(lines) == 0 {
		return "", nil, reoperr.Formatf("armor: empty input")
	}
	beginLine := beginPrefix + kind + blockSuffix
	endLine := endPrefix + kind + blockSuffix
	if lines[0] != beginLine {
		return "", nil, reoperr.Formatf("armor: expected %q, got %q", beginLine, lines[0])
	}
	if len(lines) < 2 || !strings.HasPrefix(lines[1], identPrefix) {
		return "", nil, reoperr.Formatf("armor: missing ident line")
	}
	ident = strings.TrimPrefix(lines[1], identPrefix)
	if err := validateIdent(ident); err != nil {
		return "", nil, err
	}

	var b64 strings.Builder
	i := 2
	for ; i < len(lines); i++ {
		if lines[i] == endLine {
			break
		}
		b64.WriteString(lines[i])
	}
	if i == len(lines) {
		return "", nil, reoperr.Formatf("armor: missing %q", endLine)
	}

	payload, err = base64.StdEncoding.DecodeString(b64.String())
	if err != nil {
		return "", nil, reoperr.FormatErrorf(err, "armor: invalid base64 payload")
	}
	if wantSize >= 0 && len(payload) != wantSize {
		return "", nil, reoperr.Formatf("armor: %s payload wrong size: want %d, got %d", kind, wantSize, len(payload))
	}
	return ident, payload, nil
}

// EncodeEncryptedMessage renders the two-block armored encrypted-message
// framing: a header block carrying the ident, followed by a headerless
// data block carrying the ciphertext.
func EncodeEncryptedMessage(ident string, header, ciphertext []byte) []byte {
	var b bytes.Buffer
	b.WriteString(beginPrefix + KindEncryptedMessage + blockSuffix + "\n")
	b.WriteString(identPrefix + ident + "\n")
	b.WriteString(wrapBase64(header))
	b.WriteString(beginPrefix + KindEncryptedMsgData + blockSuffix + "\n")
	b.WriteString(wrapBase64(ciphertext))
	b.WriteString(endPrefix + KindEncryptedMessage + blockSuffix + "\n")
	return b.Bytes()
}

// DecodeEncryptedMessage parses the two-block armored encrypted-message
// framing produced by EncodeEncryptedMessage.
func DecodeEncryptedMessage(data []byte) (ident string, header, ciphertext []byte, err error) {
	lines := splitLines(data)
	beginMsg := beginPrefix + KindEncryptedMessage + blockSuffix
	beginData := beginPrefix + KindEncryptedMsgData + blockSuffix
	endMsg := endPrefix + KindEncryptedMessage + blockSuffix

	if len(lines) == 0 || lines[0] != beginMsg {
		return "", nil, nil, reoperr.Formatf("armor: expected %q", beginMsg)
	}
	if len(lines) < 2 || !strings.HasPrefix(lines[1], identPrefix) {
		return "", nil, nil, reoperr.Formatf("armor: missing ident line")
	}
	ident = strings.TrimPrefix(lines[1], identPrefix)
	if err := validateIdent(ident); err != nil {
		return "", nil, nil, err
	}

	var headerB64 strings.Builder
	i := 2
	for ; i < len(lines); i++ {
		if lines[i] == beginData {
			break
		}
		headerB64.WriteString(lines[i])
	}
	if i == len(lines) {
		return "", nil, nil, reoperr.Formatf("armor: missing %q", beginData)
	}
	i++ // skip the data-block opener

	var dataB64 strings.Builder
	for ; i < len(lines); i++ {
		if lines[i] == endMsg {
			break
		}
		dataB64.WriteString(lines[i])
	}
	if i == len(lines) {
		return "", nil, nil, reoperr.Formatf("armor: missing %q", endMsg)
	}

	header, err = base64.StdEncoding.DecodeString(headerB64.String())
	if err != nil {
		return "", nil, nil, reoperr.FormatErrorf(err, "armor: invalid base64 header")
	}
	ciphertext, err = base64.StdEncoding.DecodeString(dataB64.String())
	if err != nil {
		return "", nil, nil, reoperr.FormatErrorf(err, "armor: invalid base64 ciphertext")
	}
	return ident, header, ciphertext, nil
}

// splitLines splits data on '\n', stripping a trailing '\r' from each
// line and dropping one trailing empty element caused by a final
// newline.
func splitLines(data []byte) []string {
	s := string(data)
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
