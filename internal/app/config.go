package app

import (
	"os"
	"path/filepath"
)

// Config holds the file paths the CLI operates against. Empty fields are
// filled from Home by NewWire.
type Config struct {
	Home        string // config directory, default $HOME/.reop
	PubKeyPath  string
	SecKeyPath  string
	KeyRingPath string
}

// DefaultConfig returns a Config rooted at $HOME/.reop.
func DefaultConfig() (Config, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	home := filepath.Join(dir, ".reop")
	return Config{Home: home}, nil
}

func (c Config) withDefaults() Config {
	if c.PubKeyPath == "" {
		c.PubKeyPath = filepath.Join(c.Home, "pubkey")
	}
	if c.SecKeyPath == "" {
		c.SecKeyPath = filepath.Join(c.Home, "seckey")
	}
	if c.KeyRingPath == "" {
		c.KeyRingPath = filepath.Join(c.Home, "pubkeyring")
	}
	return c
}
