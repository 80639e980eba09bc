package parquetfooter

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which member of the stable error taxonomy
// a DecodeError belongs to.
type ErrorKind int

const (
	// KindUnknown is the zero value; never returned by this package.
	KindUnknown ErrorKind = iota
	KindTooSmall
	KindBadMagic
	KindTruncatedInput
	KindMalformedEncoding
	KindMissingRequiredField
	KindSchemaMismatch
	KindBloomAbsent
	KindEncryptedFooter
	KindIoError
)

func (k ErrorKind) String() string {
	switch k {
	case KindTooSmall:
		return "TooSmall"
	case KindBadMagic:
		return "BadMagic"
	case KindTruncatedInput:
		return "TruncatedInput"
	case KindMalformedEncoding:
		return "MalformedEncoding"
	case KindMissingRequiredField:
		return "MissingRequiredField"
	case KindSchemaMismatch:
		return "SchemaMismatch"
	case KindBloomAbsent:
		return "BloomAbsent"
	case KindEncryptedFooter:
		return "Encrypted"
	case KindIoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Sentinel errors. DecodeError wraps one of these so callers can compare
// with errors.Is without reaching into the Kind field.
var (
	ErrTooSmall             = errors.New("parquetfooter: input too small to contain a footer")
	ErrBadMagic             = errors.New("parquetfooter: invalid PAR1 magic")
	ErrTruncatedInput       = errors.New("parquetfooter: truncated input")
	ErrMalformedEncoding    = errors.New("parquetfooter: malformed encoding")
	ErrMissingRequiredField = errors.New("parquetfooter: missing required field")
	ErrSchemaMismatch       = errors.New("parquetfooter: column chunk does not match schema")
	ErrBloomAbsent          = errors.New("parquetfooter: bloom filter not present")
	ErrEncryptedFooter      = errors.New("parquetfooter: encrypted footer (PARE) not supported")
)

func sentinelFor(k ErrorKind) error {
	switch k {
	case KindTooSmall:
		return ErrTooSmall
	case KindBadMagic:
		return ErrBadMagic
	case KindTruncatedInput:
		return ErrTruncatedInput
	case KindMalformedEncoding:
		return ErrMalformedEncoding
	case KindMissingRequiredField:
		return ErrMissingRequiredField
	case KindSchemaMismatch:
		return ErrSchemaMismatch
	case KindBloomAbsent:
		return ErrBloomAbsent
	case KindEncryptedFooter:
		return ErrEncryptedFooter
	default:
		return nil
	}
}

// DecodeError is the error type returned by every decoding operation in this
// package. It carries the error kind, the byte offset within the
// decoded slice at the point of failure (-1 when not meaningful), and an
// optional wrapped cause for I/O errors.
type DecodeError struct {
	Kind   ErrorKind
	Offset int64
	Msg    string
	Cause  error
}

func (e *DecodeError) Error() string {
	prefix := fmt.Sprintf("parquetfooter: %s", e.Kind)
	if e.Offset >= 0 {
		prefix = fmt.Sprintf("%s at offset %d", prefix, e.Offset)
	}
	if e.Msg != "" {
		prefix = fmt.Sprintf("%s: %s", prefix, e.Msg)
	}
	if e.Cause != nil {
		prefix = fmt.Sprintf("%s: %v", prefix, e.Cause)
	}
	return prefix
}

// Unwrap exposes the wrapped cause (for I/O errors) and, failing that, the
// stable sentinel for this error's Kind, so errors.Is(err, ErrTooSmall) and
// similar checks work regardless of whether a cause is present.
func (e *DecodeError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return sentinelFor(e.Kind)
}

func newErr(kind ErrorKind, offset int64, msg string) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Msg: msg}
}

func newErrf(kind ErrorKind, offset int64, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func wrapIoErr(offset int64, cause error) *DecodeError {
	return &DecodeError{Kind: KindIoError, Offset: offset, Cause: cause}
}
