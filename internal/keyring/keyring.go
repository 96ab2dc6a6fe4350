package keyring

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"reop/internal/domain"
	"reop/internal/envelope"
	"reop/internal/reoperr"
)

// FileKeyRing is a domain.KeyRing backed by a local armored key-ring
// file.
type FileKeyRing struct {
	path string
}

var _ domain.KeyRing = (*FileKeyRing)(nil)

// New returns a FileKeyRing reading from path.
func New(path string) *FileKeyRing {
	return &FileKeyRing{path: path}
}

// FindPublicKeyByIdent scans the key-ring file for a PUBLIC KEY block
// whose ident matches. A missing file is treated as an empty ring, not
// an error.
func (r *FileKeyRing) FindPublicKeyByIdent(ident string) (domain.PublicKey, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.PublicKey{}, false, nil
		}
		return domain.PublicKey{}, false, reoperr.IOErrorf(err, "read key-ring %s", r.path)
	}

	for _, block := range splitBlocks(data) {
		blockIdent, payload, err := envelope.DecodeBlock(block, envelope.KindPublicKey, domain.PublicKeySize)
		if err != nil {
			continue
		}
		if blockIdent != ident {
			continue
		}
		pub, err := envelope.UnmarshalPublicKey(payload)
		if err != nil {
			continue
		}
		pub.Ident = blockIdent
		return pub, true, nil
	}
	return domain.PublicKey{}, false, nil
}

// splitBlocks extracts each "-----BEGIN REOP ...-----" .. "-----END REOP
// ...-----" span from data, tolerating blank lines between blocks.
func splitBlocks(data []byte) [][]byte {
	var blocks [][]byte
	var cur bytes.Buffer
	inBlock := false

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if !inBlock {
			if strings.HasPrefix(line, "-----BEGIN REOP ") {
				inBlock = true
				cur.Reset()
				cur.WriteString(line)
				cur.WriteByte('\n')
			}
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
		if strings.HasPrefix(line, "-----END REOP ") {
			blocks = append(blocks, append([]byte(nil), cur.Bytes()...))
			inBlock = false
		}
	}
	return blocks
}
