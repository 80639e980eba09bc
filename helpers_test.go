package parquetfooter

// cwriter builds Thrift Compact Protocol byte sequences for tests. It is the
// mirror image of compactReader: hand-rolled rather than borrowed from a
// Thrift codegen, since test fixtures need to exercise the exact same wire
// shapes the decoder parses.
type cwriter struct {
	buf    []byte
	lastID int16
}

func newCWriter() *cwriter {
	return &cwriter{}
}

func (w *cwriter) bytes() []byte {
	return w.buf
}

func (w *cwriter) raw(b ...byte) {
	w.buf = append(w.buf, b...)
}

func (w *cwriter) varint(v uint64) {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			w.buf = append(w.buf, b|0x80)
		} else {
			w.buf = append(w.buf, b)
			return
		}
	}
}

func zigzag32(v int32) uint64 {
	return uint64(uint32((v << 1) ^ (v >> 31)))
}

func zigzag64(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// fieldHeader writes a field header, always using the "full" (modifier=0)
// form for simplicity; tests don't need delta compaction.
func (w *cwriter) fieldHeader(id int16, wireType byte) {
	w.buf = append(w.buf, wireType&0x0F)
	w.varint(zigzag32(int32(id)))
}

func (w *cwriter) stop() {
	w.buf = append(w.buf, 0x00)
}

func (w *cwriter) i32Field(id int16, v int32) {
	w.fieldHeader(id, wireI32)
	w.varint(zigzag32(v))
}

func (w *cwriter) i64Field(id int16, v int64) {
	w.fieldHeader(id, wireI64)
	w.varint(zigzag64(v))
}

func (w *cwriter) boolField(id int16, v bool) {
	if v {
		w.fieldHeader(id, wireBoolTrue)
	} else {
		w.fieldHeader(id, wireBoolFalse)
	}
}

func (w *cwriter) binaryField(id int16, b []byte) {
	w.fieldHeader(id, wireBinary)
	w.varint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *cwriter) stringField(id int16, s string) {
	w.binaryField(id, []byte(s))
}

// structFieldHeader writes a field header of STRUCT type; the caller is
// responsible for writing the nested struct's fields and its own stop.
func (w *cwriter) structFieldHeader(id int16) {
	w.fieldHeader(id, wireStruct)
}

// listFieldHeader writes a field header of LIST type followed by the list's
// own element-type/size header.
func (w *cwriter) listFieldHeader(id int16, elemType byte, size int) {
	w.fieldHeader(id, wireList)
	w.listHeader(elemType, size)
}

func (w *cwriter) listHeader(elemType byte, size int) {
	if size < 15 {
		w.buf = append(w.buf, byte(size<<4)|elemType)
		return
	}
	w.buf = append(w.buf, 0xF0|elemType)
	w.varint(uint64(size))
}

// buildMinimalSchemaInto writes a two-element schema: a root group with
// num_children=1, followed by one required INT32 leaf named "id".
func buildMinimalSchemaInto(w *cwriter) {
	// root SchemaElement: { 4:name="schema", 5:num_children=1 }
	w.stringField(4, "schema")
	w.i32Field(5, 1)
	w.stop()

	// leaf SchemaElement: { 1:type=INT32, 3:repetition=REQUIRED, 4:name="id" }
	w.i32Field(1, int32(PhysicalInt32))
	w.i32Field(3, int32(RepetitionRequired))
	w.stringField(4, "id")
	w.stop()
}

// buildFooter assembles a minimal, valid FileMetaData Thrift struct
// (version, schema, num_rows, row_groups, created_by) and wraps it with the
// 8-byte trailer, returning the complete byte slice a decoder would see at
// the tail of a Parquet file.
func buildFooter(t testingTB, numRows int64, rowGroups func(w *cwriter)) []byte {
	t.Helper()

	w := newCWriter()
	w.i32Field(1, 1) // version

	// schema: list<SchemaElement>, 2 elements
	w.listFieldHeader(2, wireStruct, 2)
	buildMinimalSchemaInto(w)

	w.i64Field(3, numRows)

	if rowGroups != nil {
		rowGroups(w)
	} else {
		w.listFieldHeader(4, wireStruct, 0)
	}

	w.stringField(6, "test-fixture")
	w.stop()

	footer := w.bytes()

	trailer := make([]byte, 8)
	trailer[0] = byte(len(footer))
	trailer[1] = byte(len(footer) >> 8)
	trailer[2] = byte(len(footer) >> 16)
	trailer[3] = byte(len(footer) >> 24)
	copy(trailer[4:8], magic)

	out := make([]byte, 0, len(footer)+8)
	out = append(out, footer...)
	out = append(out, trailer...)
	return out
}

// testingTB is satisfied by *testing.T, *testing.B, and *testing.F, so
// buildFooter can be called from ordinary tests and from fuzz seed setup.
type testingTB interface {
	Helper()
}
