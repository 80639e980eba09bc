package parquetfooter

import "io"

// ByteSource is the random-access byte range contract the decoder depends
// on. Implementations own their own I/O policy (caching,
// prefetching, memory-mapping); the decoder treats every ByteSource as a
// borrowed, read-only collaborator for the duration of a single call.
type ByteSource interface {
	// Size returns the total size of the underlying byte source.
	Size() (int64, error)
	// ReadAt returns exactly length bytes starting at offset, or an error.
	ReadAt(offset int64, length int) ([]byte, error)
}

// ReaderAtSource adapts an io.ReaderAt of known size to ByteSource. It is
// the one concrete source this package ships; it applies no policy of its
// own (no caching, no prefetching) and exists only so ParseMetadata and
// TestBloom can be exercised without every caller hand-rolling an adapter.
type ReaderAtSource struct {
	r    io.ReaderAt
	size int64
}

// NewReaderAtSource wraps r, whose total size is size bytes.
func NewReaderAtSource(r io.ReaderAt, size int64) *ReaderAtSource {
	return &ReaderAtSource{r: r, size: size}
}

func (s *ReaderAtSource) Size() (int64, error) {
	return s.size, nil
}

func (s *ReaderAtSource) ReadAt(offset int64, length int) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	buf := make([]byte, length)
	n, err := s.r.ReadAt(buf, offset)
	if err != nil && !(err == io.EOF && n == length) {
		return nil, wrapIoErr(offset, err)
	}
	return buf, nil
}
