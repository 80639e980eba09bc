package parquetfooter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocateFooter_TooSmall(t *testing.T) {
	src := NewReaderAtSource(bytes.NewReader([]byte{1, 2, 3, 4, 5}), 5)
	_, _, err := locateFooter(src)
	require.ErrorIs(t, err, ErrTooSmall)
}

func TestLocateFooter_BadMagic(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf[8:], []byte{4, 0, 0, 0, 'X', 'X', 'X', 'X'})
	src := NewReaderAtSource(bytes.NewReader(buf), int64(len(buf)))
	_, _, err := locateFooter(src)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestLocateFooter_Encrypted(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf[8:], []byte{4, 0, 0, 0, 'P', 'A', 'R', 'E'})
	src := NewReaderAtSource(bytes.NewReader(buf), int64(len(buf)))
	_, _, err := locateFooter(src)
	require.ErrorIs(t, err, ErrEncryptedFooter)
}

func TestLocateFooter_ZeroLength(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf[8:], []byte{0, 0, 0, 0, 'P', 'A', 'R', '1'})
	src := NewReaderAtSource(bytes.NewReader(buf), int64(len(buf)))
	_, _, err := locateFooter(src)
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestLocateFooter_LengthExceedsFile(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf[8:], []byte{255, 255, 255, 0, 'P', 'A', 'R', '1'})
	src := NewReaderAtSource(bytes.NewReader(buf), int64(len(buf)))
	_, _, err := locateFooter(src)
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestLocateFooter_Valid(t *testing.T) {
	footer := []byte{0x01, 0x02, 0x03}
	buf := make([]byte, 0, len(footer)+8)
	buf = append(buf, footer...)
	trailer := []byte{byte(len(footer)), 0, 0, 0, 'P', 'A', 'R', '1'}
	buf = append(buf, trailer...)

	src := NewReaderAtSource(bytes.NewReader(buf), int64(len(buf)))
	got, offset, err := locateFooter(src)
	require.NoError(t, err)
	require.Equal(t, footer, got)
	require.Equal(t, int64(0), offset)
}
