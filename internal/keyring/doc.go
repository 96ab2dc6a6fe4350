// Package keyring provides the default file-backed domain.KeyRing: a
// local file holding zero or more armored PUBLIC KEY blocks, separated
// by blank lines, searched linearly by identity.
package keyring
