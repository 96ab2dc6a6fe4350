package app

import (
	"os"

	"reop/internal/domain"
	"reop/internal/fileio"
	"reop/internal/keyring"
	"reop/internal/passphrase"
)

// Wire bundles the default collaborators the CLI commands use.
type Wire struct {
	Config     Config
	Files      domain.FileIO
	Passphrase domain.PassphraseProvider
	KeyRing    domain.KeyRing
}

// NewWire constructs the default dependency graph from cfg, creating the
// home directory if it does not already exist.
func NewWire(cfg Config) (*Wire, error) {
	cfg = cfg.withDefaults()
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	return &Wire{
		Config:     cfg,
		Files:      fileio.New(),
		Passphrase: passphrase.New(),
		KeyRing:    keyring.New(cfg.KeyRingPath),
	}, nil
}
