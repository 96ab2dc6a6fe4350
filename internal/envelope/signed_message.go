package envelope

import (
	"bytes"
	"encoding/base64"
	"strings"

	"reop/internal/domain"
	"reop/internal/reoperr"
)

const (
	signedMsgBegin = "-----BEGIN REOP SIGNED MESSAGE-----\n"
	signedMsgEnd   = "-----END REOP SIGNED MESSAGE-----\n"
	sigBlockBegin  = "-----BEGIN REOP SIGNATURE-----\n"
)

// EncodeSignedMessage renders an embedded (in-line) signed message: the
// raw message bytes followed by an armored signature block, all within a
// single SIGNED MESSAGE frame.
func EncodeSignedMessage(message []byte, ident string, sigPayload []byte) []byte {
	var b bytes.Buffer
	b.WriteString(signedMsgBegin)
	b.Write(message)
	b.WriteString(sigBlockBegin)
	b.WriteString(identPrefix + ident + "\n")
	b.WriteString(wrapBase64(sigPayload))
	b.WriteString(signedMsgEnd)
	return b.Bytes()
}

// SplitSignedMessage recovers the signed message span and the embedded
// signature from an EncodeSignedMessage frame.
//
// The message span is defined as the bytes between the end of the opening
// SIGNED MESSAGE line and the LAST occurrence of the SIGNATURE opener in
// the file: message content may legitimately contain substrings that look
// like the opener, so every occurrence is considered and the final one is
// taken.
func SplitSignedMessage(data []byte) (message []byte, ident string, sigPayload []byte, err error) {
	if !bytes.HasPrefix(data, []byte(signedMsgBegin)) {
		return nil, "", nil, reoperr.Formatf("armor: expected %q", strings.TrimSuffix(signedMsgBegin, "\n"))
	}

	idx := bytes.LastIndex(data, []byte(sigBlockBegin))
	if idx < len(signedMsgBegin) {
		return nil, "", nil, reoperr.Formatf("armor: missing signature block")
	}
	message = data[len(signedMsgBegin):idx]

	rest := data[idx+len(sigBlockBegin):]
	lines := splitLines(rest)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], identPrefix) {
		return nil, "", nil, reoperr.Formatf("armor: missing ident line in signature block")
	}
	ident = strings.TrimPrefix(lines[0], identPrefix)
	if err := validateIdent(ident); err != nil {
		return nil, "", nil, err
	}

	endLine := strings.TrimSuffix(signedMsgEnd, "\n")
	var b64 strings.Builder
	i := 1
	for ; i < len(lines); i++ {
		if lines[i] == endLine {
			break
		}
		b64.WriteString(lines[i])
	}
	if i == len(lines) {
		return nil, "", nil, reoperr.Formatf("armor: missing %q", endLine)
	}

	sigPayload, decErr := base64.StdEncoding.DecodeString(b64.String())
	if decErr != nil {
		return nil, "", nil, reoperr.FormatErrorf(decErr, "armor: invalid base64 signature payload")
	}
	if len(sigPayload) != domain.SignatureSize {
		return nil, "", nil, reoperr.Formatf("armor: signature payload wrong size: want %d, got %d", domain.SignatureSize, len(sigPayload))
	}
	return message, ident, sigPayload, nil
}
