// Package commands implements the reop command-line surface: generate,
// sign, verify, encrypt, and decrypt, each a thin driver over the
// internal core packages.
package commands
