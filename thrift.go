package parquetfooter

// Thrift Compact Protocol reader.
//
// Parquet footers and bloom filter headers are Thrift structs serialized
// with the Compact Protocol: varint-encoded integers, zig-zag signed
// integers, delta-encoded field ids, and typed container headers. This is
// hand-written rather than delegated to a generated or third-party Thrift
// implementation, grounded on the byte-level decoding style of parquet-go's
// format/thriftdecode package (buffer.readUvarint/readVarint/readField/
// skipValue).

// Compact protocol wire types.
const (
	wireStop      = 0x00
	wireBoolTrue  = 0x01
	wireBoolFalse = 0x02
	wireI8        = 0x03
	wireI16       = 0x04
	wireI32       = 0x05
	wireI64       = 0x06
	wireDouble    = 0x07
	wireBinary    = 0x08
	wireList      = 0x09
	wireSet       = 0x0A
	wireMap       = 0x0B
	wireStruct    = 0x0C
)

// compactReader is a pull-style cursor over a Thrift Compact Protocol
// encoded byte slice.
type compactReader struct {
	buf []byte
	pos int
	// base is added to pos when reporting offsets in errors, so readers over
	// sub-slices still report file-relative offsets. ParseMetadata sets it
	// to the footer's file offset and readBloomHeader to the bloom filter's.
	base int64
}

func newCompactReader(buf []byte) *compactReader {
	return &compactReader{buf: buf}
}

func (r *compactReader) offset() int64 {
	return r.base + int64(r.pos)
}

func (r *compactReader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *compactReader) readByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, newErr(KindTruncatedInput, r.offset(), "unexpected end of input")
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *compactReader) readBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, newErrf(KindMalformedEncoding, r.offset(), "negative length %d", n)
	}
	if n > r.remaining() {
		return nil, newErr(KindTruncatedInput, r.offset(), "length exceeds remaining input")
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// readVarint reads successive 7-bit groups, LSB first, MSB=continuation.
// A varint that would need more than 10 bytes is MalformedEncoding.
func (r *compactReader) readVarint() (uint64, error) {
	var result uint64
	var shift uint
	for i := 0; ; i++ {
		if i > 9 {
			return 0, newErr(KindMalformedEncoding, r.offset(), "varint too long")
		}
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// readZigZag32 decodes a zig-zag encoded 32-bit signed integer.
func (r *compactReader) readZigZag32() (int32, error) {
	v, err := r.readVarint()
	if err != nil {
		return 0, err
	}
	u := uint32(v)
	return int32(u>>1) ^ -int32(u&1), nil
}

// readZigZag64 decodes a zig-zag encoded 64-bit signed integer:
// (n >> 1) XOR -(n & 1).
func (r *compactReader) readZigZag64() (int64, error) {
	v, err := r.readVarint()
	if err != nil {
		return 0, err
	}
	return int64(v>>1) ^ -int64(v&1), nil
}

// readString reads a varint length L followed by L raw bytes.
func (r *compactReader) readString() ([]byte, error) {
	n, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	return r.readBytes(int(n))
}

// fieldHeader is the result of reading one Compact Protocol field header:
// either a (id, wireType) pair, or Stop.
type fieldHeader struct {
	ID       int16
	WireType byte
	Stop     bool
}

// readFieldHeader reads one field header relative to lastID, implementing
// the delta-encoded field id scheme.
func (r *compactReader) readFieldHeader(lastID int16) (fieldHeader, error) {
	b, err := r.readByte()
	if err != nil {
		return fieldHeader{}, err
	}
	if b == 0 {
		return fieldHeader{Stop: true}, nil
	}
	wireType := b & 0x0F
	modifier := b >> 4
	var id int16
	if modifier == 0 {
		v, err := r.readZigZag32()
		if err != nil {
			return fieldHeader{}, err
		}
		id = int16(v)
	} else {
		id = lastID + int16(modifier)
	}
	return fieldHeader{ID: id, WireType: wireType}, nil
}

// readListHeader reads a list/set header: elemType and size.
func (r *compactReader) readListHeader() (elemType byte, size int, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	size = int(b >> 4)
	elemType = b & 0x0F
	if size == 15 {
		n, err := r.readVarint()
		if err != nil {
			return 0, 0, err
		}
		size = int(n)
	}
	return elemType, size, nil
}

// readMapHeader reads a map header: size, keyType, valueType.
// A zero-size map has no following type byte.
func (r *compactReader) readMapHeader() (size int, keyType, valueType byte, err error) {
	n, err := r.readVarint()
	if err != nil {
		return 0, 0, 0, err
	}
	size = int(n)
	if size == 0 {
		return 0, 0, 0, nil
	}
	b, err := r.readByte()
	if err != nil {
		return 0, 0, 0, err
	}
	keyType = b >> 4
	valueType = b & 0x0F
	return size, keyType, valueType, nil
}

// skipValue consumes one value of the given wire type without interpreting
// it: STRUCT recurses by reading field headers until STOP, MAP and
// LIST/SET recurse element-wise. An unrecognized wire type is a
// MalformedEncoding failure, rather than a lenient "consume one byte"
// fallback — guessing at an unknown wire type's length silently corrupts
// whatever follows.
func (r *compactReader) skipValue(wireType byte) error {
	switch wireType {
	case wireBoolTrue, wireBoolFalse:
		return nil
	case wireI8:
		_, err := r.readByte()
		return err
	case wireI16, wireI32, wireI64:
		_, err := r.readVarint()
		return err
	case wireDouble:
		_, err := r.readBytes(8)
		return err
	case wireBinary:
		_, err := r.readString()
		return err
	case wireList, wireSet:
		elemType, size, err := r.readListHeader()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := r.skipValue(elemType); err != nil {
				return err
			}
		}
		return nil
	case wireMap:
		size, keyType, valType, err := r.readMapHeader()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if err := r.skipValue(keyType); err != nil {
				return err
			}
			if err := r.skipValue(valType); err != nil {
				return err
			}
		}
		return nil
	case wireStruct:
		return r.skipStruct()
	default:
		return newErrf(KindMalformedEncoding, r.offset(), "unknown wire type %d", wireType)
	}
}

// skipStruct consumes an entire struct (field headers + values) until STOP.
func (r *compactReader) skipStruct() error {
	var lastID int16
	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return err
		}
		if fh.Stop {
			return nil
		}
		if err := r.skipValue(fh.WireType); err != nil {
			return err
		}
		lastID = fh.ID
	}
}
