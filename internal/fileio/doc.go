// Package fileio provides the default file-system-backed implementation
// of domain.FileIO: whole-file reads bounded by a size cap, refusing
// symlinks and directories, and recognizing "-" as the stdio sentinel.
package fileio
