// Package envelope serializes and parses the wire-format entities defined
// in internal/domain: the armored textual framing ("-----BEGIN REOP
// ...-----" blocks) and the alternative binary framing ("RBF\0" plus a
// fixed header and length-prefixed identity). It never performs
// cryptography; it only turns structs into bytes and back.
package envelope
