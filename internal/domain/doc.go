// Package domain defines the wire-format entities, fixed algorithm
// constants, and collaborator interfaces shared by every core package. It
// holds plain data and contracts only, no cryptography, no I/O.
package domain
