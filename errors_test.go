package parquetfooter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeError_Is(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"too small", newErr(KindTooSmall, 0, "x"), ErrTooSmall},
		{"bad magic", newErr(KindBadMagic, 4, "x"), ErrBadMagic},
		{"truncated", newErr(KindTruncatedInput, -1, "x"), ErrTruncatedInput},
		{"malformed", newErrf(KindMalformedEncoding, -1, "bad %d", 1), ErrMalformedEncoding},
		{"missing field", newErr(KindMissingRequiredField, -1, "x"), ErrMissingRequiredField},
		{"schema mismatch", newErr(KindSchemaMismatch, -1, "x"), ErrSchemaMismatch},
		{"bloom absent", newErr(KindBloomAbsent, -1, "x"), ErrBloomAbsent},
		{"encrypted", newErr(KindEncryptedFooter, -1, "x"), ErrEncryptedFooter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, errors.Is(tc.err, tc.sentinel))
			require.False(t, errors.Is(tc.err, ErrTooSmall) && tc.sentinel != ErrTooSmall)
		})
	}
}

func TestDecodeError_WrapsCause(t *testing.T) {
	cause := errors.New("disk gone")
	err := wrapIoErr(42, cause)

	require.ErrorIs(t, err, cause)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	require.Equal(t, KindIoError, de.Kind)
	require.Equal(t, int64(42), de.Offset)
}

func TestDecodeError_Message(t *testing.T) {
	err := newErrf(KindMalformedEncoding, 7, "bad wire type %d", 99)
	msg := err.Error()
	require.Contains(t, msg, "MalformedEncoding")
	require.Contains(t, msg, "offset 7")
	require.Contains(t, msg, "bad wire type 99")
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "TooSmall", KindTooSmall.String())
	require.Equal(t, "Encrypted", KindEncryptedFooter.String())
	require.Equal(t, "Unknown", KindUnknown.String())
}
