// Package keyops implements key generation and the detached and embedded
// signing flows (sign, verify) on top of the domain entities, primitives,
// and KDF wrapping.
package keyops
