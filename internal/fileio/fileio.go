package fileio

import (
	"io"
	"os"

	"reop/internal/domain"
	"reop/internal/reoperr"
)

const stdio = "-"

// Default is the file-system-backed domain.FileIO.
type Default struct{}

var _ domain.FileIO = (*Default)(nil)

// New returns the default file-system FileIO.
func New() *Default { return &Default{} }

// ReadAll reads path (or stdin, if path is "-"), refusing symlinks and
// directories and rejecting anything over max bytes.
func (Default) ReadAll(path string, max int64) ([]byte, error) {
	if path == stdio {
		return readCapped(os.Stdin, max, "stdin")
	}

	fi, err := os.Lstat(path)
	if err != nil {
		return nil, reoperr.IOErrorf(err, "stat %s", path)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, reoperr.IOf("%s: refusing to read a symlink", path)
	}
	if fi.IsDir() {
		return nil, reoperr.IOf("%s: refusing to read a directory", path)
	}
	if fi.Size() > max {
		return nil, reoperr.TooLargef("%s: %d bytes exceeds the %d byte limit", path, fi.Size(), max)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, reoperr.IOErrorf(err, "open %s", path)
	}
	defer f.Close()
	return readCapped(f, max, path)
}

// WriteAll writes data to path (or stdout, if path is "-") with mode,
// refusing a symlink at path and, if excl is true, refusing to overwrite
// an existing file.
func (Default) WriteAll(path string, data []byte, mode uint32, excl bool) error {
	if path == stdio {
		if _, err := os.Stdout.Write(data); err != nil {
			return reoperr.IOErrorf(err, "write stdout")
		}
		return nil
	}
	if fi, err := os.Lstat(path); err == nil && fi.Mode()&os.ModeSymlink != 0 {
		return reoperr.IOf("%s: refusing to write through a symlink", path)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if excl {
		flags |= os.O_EXCL
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, os.FileMode(mode))
	if err != nil {
		return reoperr.IOErrorf(err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return reoperr.IOErrorf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return reoperr.IOErrorf(err, "close %s", path)
	}
	return nil
}

// readCapped reads at most max+1 bytes from r, so an oversized input is
// detected without buffering the whole (potentially huge) stream.
func readCapped(r io.Reader, max int64, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, reoperr.IOErrorf(err, "read %s", name)
	}
	if int64(len(data)) > max {
		return nil, reoperr.TooLargef("%s: exceeds the %d byte limit", name, max)
	}
	return data, nil
}
