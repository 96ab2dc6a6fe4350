package domain

// Fixed 2-byte algorithm identifiers. These are the only values the codec
// ever accepts; any other value is a hard rejection, never a fallback.
const (
	SigAlgEd25519 = "Ed" // Ed25519 signatures
	EncAlgCS      = "CS" // Curve25519+Salsa20 key algorithm and legacy public-key envelope
	EncAlgEC      = "eC" // current ephemeral public-key envelope
	EncAlgES      = "eS" // legacy ephemeral-key envelope
	SymAlgSP      = "SP" // Salsa20-Poly1305 symmetric
	KDFAlgBK      = "BK" // bcrypt kdf
)

// BinaryMagic marks binary-framed encrypted files: "RBF" plus a trailing
// NUL byte.
var BinaryMagic = [4]byte{'R', 'B', 'F', 0}

const (
	// RandomIDLen is the width of a randomid, used to pair keys and
	// detect wrong-key operations before expensive crypto.
	RandomIDLen = 8
	// IdentMaxBytes is the maximum number of content bytes an identity
	// string may hold. Neither framing writes a terminating NUL: the
	// armored form has an ident: line, the binary form a length prefix.
	IdentMaxBytes = 63
	// IdentBufLen is IdentMaxBytes plus one byte for a terminating NUL;
	// an identity of IdentBufLen bytes or more is rejected on decode.
	IdentBufLen = IdentMaxBytes + 1

	// DefaultKDFRounds is the default bcrypt-pbkdf iteration count used
	// for newly generated secret keys.
	DefaultKDFRounds = 42
	// NoPasswordKDFRounds is the sentinel iteration count selected by an
	// empty passphrase: the derived key is all zero and no bcrypt call is
	// made, but the authenticated box is still computed.
	NoPasswordKDFRounds = 0

	// MaxInputBytes bounds any single read from disk or stdin.
	MaxInputBytes = 1 << 30 // 1 GiB

	// ArmorWrapColumns is the maximum line length of an emitted base64
	// payload line.
	ArmorWrapColumns = 76
)

// Tag2 converts one of the 2-byte algorithm identifier constants above
// into its fixed-size array form.
func Tag2(s string) [2]byte {
	return [2]byte{s[0], s[1]}
}
