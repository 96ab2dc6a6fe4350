package reoperr

import "fmt"

// Kind classifies why an operation failed.
type Kind int

const (
	// KindUnknown is the zero value and should never be returned.
	KindUnknown Kind = iota
	// KindIO covers file read/write failures, missing files, directories
	// and symlinks presented where a regular file was expected.
	KindIO
	// KindTooLarge is returned when an input exceeds the size cap.
	KindTooLarge
	// KindFormat covers malformed armored framing, invalid base64, bad
	// binary magic/length prefixes, or a size mismatch for a declared
	// algorithm tag.
	KindFormat
	// KindAlgorithmUnsupported is returned when a 2-byte algorithm tag
	// does not equal one of the fixed known constants.
	KindAlgorithmUnsupported
	// KindMismatch is returned when randomids in an envelope or signature
	// do not bind to the keys supplied. Distinct from KindAuthFail.
	KindMismatch
	// KindAuthFail is returned when a cryptographic tag or signature
	// fails verification.
	KindAuthFail
	// KindNoKey is returned when a requested key cannot be located.
	KindNoKey
	// KindPassphrase is returned when a passphrase could not be obtained,
	// was empty when one was required, or confirmations disagreed.
	KindPassphrase
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindTooLarge:
		return "too_large"
	case KindFormat:
		return "format"
	case KindAlgorithmUnsupported:
		return "algorithm_unsupported"
	case KindMismatch:
		return "mismatch"
	case KindAuthFail:
		return "auth_fail"
	case KindNoKey:
		return "no_key"
	case KindPassphrase:
		return "passphrase"
	default:
		return "unknown"
	}
}

// Error is the typed error value returned by every core operation.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by Kind, so callers can do errors.Is(err, reoperr.AuthFail).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == KindUnknown {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values usable with errors.Is for each kind, matched on Kind
// alone (Msg and Err are ignored by Is).
var (
	IO                   = &Error{Kind: KindIO}
	TooLarge             = &Error{Kind: KindTooLarge}
	Format               = &Error{Kind: KindFormat}
	AlgorithmUnsupported = &Error{Kind: KindAlgorithmUnsupported}
	Mismatch             = &Error{Kind: KindMismatch}
	AuthFail             = &Error{Kind: KindAuthFail}
	NoKey                = &Error{Kind: KindNoKey}
	Passphrase           = &Error{Kind: KindPassphrase}
)

func newf(k Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Wrapf builds an *Error of the given kind, wrapping cause (may be nil).
func Wrapf(k Kind, cause error, format string, args ...any) *Error {
	return newf(k, cause, format, args...)
}

func IOf(format string, args ...any) *Error {
	return newf(KindIO, nil, format, args...)
}

func IOErrorf(cause error, format string, args ...any) *Error {
	return newf(KindIO, cause, format, args...)
}

func TooLargef(format string, args ...any) *Error {
	return newf(KindTooLarge, nil, format, args...)
}

func Formatf(format string, args ...any) *Error {
	return newf(KindFormat, nil, format, args...)
}

func FormatErrorf(cause error, format string, args ...any) *Error {
	return newf(KindFormat, cause, format, args...)
}

func AlgorithmUnsupportedf(format string, args ...any) *Error {
	return newf(KindAlgorithmUnsupported, nil, format, args...)
}

func Mismatchf(format string, args ...any) *Error {
	return newf(KindMismatch, nil, format, args...)
}

func AuthFailf(format string, args ...any) *Error {
	return newf(KindAuthFail, nil, format, args...)
}

func NoKeyf(format string, args ...any) *Error {
	return newf(KindNoKey, nil, format, args...)
}

func Passphrasef(format string, args ...any) *Error {
	return newf(KindPassphrase, nil, format, args...)
}
