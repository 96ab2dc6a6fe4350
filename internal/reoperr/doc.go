// Package reoperr defines the typed error kinds the core surfaces to its
// callers. The core never terminates the process or exposes partial
// plaintext; every failure path returns one of these.
package reoperr
