package parquetfooter

import "encoding/binary"

const (
	magic          = "PAR1"
	magicEncrypted = "PARE"
	trailerSize    = 8
)

// locateFooter implements the Footer Locator: validates the
// trailing 8-byte trailer (footer_len u32 LE, magic) against the source's
// total size and returns the footer byte slice.
func locateFooter(src ByteSource) ([]byte, int64, error) {
	size, err := src.Size()
	if err != nil {
		return nil, 0, wrapIoErr(-1, err)
	}
	if size < trailerSize {
		return nil, 0, newErrf(KindTooSmall, size, "file size %d is smaller than the 8-byte trailer", size)
	}

	trailer, err := src.ReadAt(size-trailerSize, trailerSize)
	if err != nil {
		return nil, 0, err
	}

	tail := string(trailer[4:8])
	if tail == magicEncrypted {
		return nil, 0, newErr(KindEncryptedFooter, size-4, "trailing magic is PARE (encrypted footer)")
	}
	if tail != magic {
		return nil, 0, newErrf(KindBadMagic, size-4, "trailing magic is %q, want %q", tail, magic)
	}

	footerLen := int64(binary.LittleEndian.Uint32(trailer[0:4]))
	if footerLen == 0 || footerLen > size-trailerSize {
		return nil, 0, newErrf(KindMalformedEncoding, size-8, "footer length %d is invalid for file size %d", footerLen, size)
	}

	footerOffset := size - trailerSize - footerLen
	footer, err := src.ReadAt(footerOffset, int(footerLen))
	if err != nil {
		return nil, 0, err
	}
	return footer, footerOffset, nil
}
