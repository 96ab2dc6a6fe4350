package fileio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"reop/internal/fileio"
)

func TestWriteAllThenReadAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "message.txt")
	fio := fileio.New()

	data := []byte("hello, reop")
	if err := fio.WriteAll(path, data, 0o644, false); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	got, err := fio.ReadAll(path, 1<<20)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %q, want %q", got, data)
	}
}

func TestWriteAllExclRefusesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seckey")
	fio := fileio.New()

	if err := fio.WriteAll(path, []byte("first"), 0o600, true); err != nil {
		t.Fatalf("first WriteAll: %v", err)
	}
	if err := fio.WriteAll(path, []byte("second"), 0o600, true); err == nil {
		t.Fatal("expected exclusive-create to refuse the already-existing file")
	}
}

func TestWriteAllNonExclOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "message.enc")
	fio := fileio.New()

	if err := fio.WriteAll(path, []byte("first"), 0o644, false); err != nil {
		t.Fatalf("first WriteAll: %v", err)
	}
	if err := fio.WriteAll(path, []byte("second"), 0o644, false); err != nil {
		t.Fatalf("second WriteAll: %v", err)
	}
	got, err := fio.ReadAll(path, 1<<20)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("got %q, want overwritten content", got)
	}
}

func TestReadAllRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, bytes.Repeat([]byte{'x'}, 100), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fio := fileio.New()
	if _, err := fio.ReadAll(path, 10); err == nil {
		t.Fatal("expected an error for a file exceeding the size cap")
	}
}

func TestReadAllRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	fio := fileio.New()
	if _, err := fio.ReadAll(dir, 1<<20); err == nil {
		t.Fatal("expected an error reading a directory")
	}
}

func TestReadAllRejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	if err := os.WriteFile(target, []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported in this environment: %v", err)
	}

	fio := fileio.New()
	if _, err := fio.ReadAll(link, 1<<20); err == nil {
		t.Fatal("expected an error reading a symlink")
	}
}
