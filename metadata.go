package parquetfooter

// FileMetaData Parser: consumes a footer slice via the Compact
// Protocol Reader and produces the FileMetadata tree. Unknown field ids are
// skipped; required-but-absent fields raise
// MissingRequiredField.

// ParseMetadata locates and parses a Parquet footer from src, producing a
// fully decoded FileMetadata.
func ParseMetadata(src ByteSource) (*FileMetadata, error) {
	footer, footerOffset, err := locateFooter(src)
	if err != nil {
		return nil, err
	}

	size, err := src.Size()
	if err != nil {
		return nil, wrapIoErr(-1, err)
	}

	r := newCompactReader(footer)
	r.base = footerOffset

	meta, err := parseFileMetaData(r)
	if err != nil {
		return nil, err
	}
	meta.FileSize = size

	if err := resolveSchema(meta); err != nil {
		return nil, err
	}

	return meta, nil
}

func parseFileMetaData(r *compactReader) (*FileMetadata, error) {
	meta := &FileMetadata{}
	var lastID int16
	sawNumRows := false
	sawRowGroups := false

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return nil, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		switch fh.ID {
		case 1: // version
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			meta.Version = v
		case 2: // schema: list<SchemaElement>
			elems, err := parseStructList(r, fh.WireType, parseSchemaElement)
			if err != nil {
				return nil, err
			}
			meta.Schema = elems
		case 3: // num_rows
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			meta.NumRows = v
			sawNumRows = true
		case 4: // row_groups: list<RowGroup>
			rgs, err := parseStructList(r, fh.WireType, parseRowGroup)
			if err != nil {
				return nil, err
			}
			meta.RowGroups = rgs
			sawRowGroups = true
		case 5: // key_value_metadata: list<KeyValue>
			kvs, err := parseKeyValueList(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			meta.KeyValueMetadata = kvs
		case 6: // created_by
			s, err := requireString(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			meta.CreatedBy = s
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
		}
	}

	if !sawNumRows {
		return nil, newErr(KindMissingRequiredField, r.offset(), "FileMetaData.num_rows")
	}
	if !sawRowGroups {
		return nil, newErr(KindMissingRequiredField, r.offset(), "FileMetaData.row_groups")
	}
	return meta, nil
}

func parseSchemaElement(r *compactReader) (SchemaElement, error) {
	var out SchemaElement
	var lastID int16
	sawName := false

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return out, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		switch fh.ID {
		case 1: // type
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			pt := PhysicalType(v)
			out.PhysicalType = &pt
		case 2: // type_length
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.TypeLength = &v
		case 3: // repetition_type
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			rep := Repetition(v)
			out.Repetition = &rep
		case 4: // name
			s, err := requireString(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.Name = s
			sawName = true
		case 5: // num_children
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.NumChildren = v
		case 6: // converted_type
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			ct := ConvertedType(v)
			out.ConvertedType = &ct
		case 7: // scale
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.Scale = &v
		case 8: // precision
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.Precision = &v
		case 9: // field_id
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.FieldID = &v
		case 10: // logicalType
			if fh.WireType != wireStruct {
				return out, newErrf(KindMalformedEncoding, r.offset(), "SchemaElement.logicalType: expected STRUCT, got %d", fh.WireType)
			}
			lt, err := parseLogicalType(r)
			if err != nil {
				return out, err
			}
			out.LogicalType = lt
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return out, err
			}
		}
	}

	if !sawName {
		return out, newErr(KindMissingRequiredField, r.offset(), "SchemaElement.name")
	}
	return out, nil
}

// parseLogicalType walks the logicalType STRUCT, choosing the first field
// present.
func parseLogicalType(r *compactReader) (*LogicalType, error) {
	out := &LogicalType{Tag: LogicalUnknown}
	var lastID int16
	found := false

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return nil, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		if found {
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			continue
		}

		switch fh.ID {
		case 1: // STRING
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalString
			found = true
		case 2: // MAP
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalMap
			found = true
		case 3: // LIST
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalList
			found = true
		case 4: // ENUM
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalEnum
			found = true
		case 5: // DECIMAL { 1 scale, 2 precision }
			if fh.WireType != wireStruct {
				return nil, newErrf(KindMalformedEncoding, r.offset(), "LogicalType.DECIMAL: expected STRUCT, got %d", fh.WireType)
			}
			scale, precision, err := parseDecimalLogical(r)
			if err != nil {
				return nil, err
			}
			out.Tag = LogicalDecimal
			out.Scale = scale
			out.Precision = precision
			found = true
		case 6: // DATE
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalDate
			found = true
		case 7: // TIME { 1 is_adjusted_utc BOOL, 2 unit }
			if fh.WireType != wireStruct {
				return nil, newErrf(KindMalformedEncoding, r.offset(), "LogicalType.TIME: expected STRUCT, got %d", fh.WireType)
			}
			isUTC, unit, err := parseTimeLogical(r)
			if err != nil {
				return nil, err
			}
			out.Tag = LogicalTime
			out.IsUTC = isUTC
			out.Unit = unit
			found = true
		case 8: // TIMESTAMP { same as TIME }
			if fh.WireType != wireStruct {
				return nil, newErrf(KindMalformedEncoding, r.offset(), "LogicalType.TIMESTAMP: expected STRUCT, got %d", fh.WireType)
			}
			isUTC, unit, err := parseTimeLogical(r)
			if err != nil {
				return nil, err
			}
			out.Tag = LogicalTimestamp
			out.IsUTC = isUTC
			out.Unit = unit
			found = true
		case 9: // INT { 1 bit_width I8, 2 is_signed BOOL }
			if fh.WireType != wireStruct {
				return nil, newErrf(KindMalformedEncoding, r.offset(), "LogicalType.INT: expected STRUCT, got %d", fh.WireType)
			}
			bitWidth, signed, err := parseIntLogical(r)
			if err != nil {
				return nil, err
			}
			out.Tag = LogicalInt
			out.BitWidth = bitWidth
			out.Signed = signed
			found = true
		case 10: // JSON
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalJSON
			found = true
		case 11: // BSON
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalBSON
			found = true
		case 12: // UUID
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalUUID
			found = true
		case 13: // FLOAT16
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
			out.Tag = LogicalFloat16
			found = true
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func parseDecimalLogical(r *compactReader) (scale, precision int32, err error) {
	if err := enterStruct(r); err != nil {
		return 0, 0, err
	}
	var lastID int16
	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return 0, 0, err
		}
		if fh.Stop {
			return scale, precision, nil
		}
		lastID = fh.ID
		switch fh.ID {
		case 1:
			scale, err = requireI32(r, fh.WireType)
		case 2:
			precision, err = requireI32(r, fh.WireType)
		default:
			err = r.skipValue(fh.WireType)
		}
		if err != nil {
			return 0, 0, err
		}
	}
}

func parseTimeLogical(r *compactReader) (isUTC bool, unit TimeUnit, err error) {
	if err := enterStruct(r); err != nil {
		return false, TimeUnitUnset, err
	}
	var lastID int16
	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return false, TimeUnitUnset, err
		}
		if fh.Stop {
			return isUTC, unit, nil
		}
		lastID = fh.ID
		switch fh.ID {
		case 1:
			isUTC, err = requireBool(r, fh.WireType)
		case 2:
			if fh.WireType != wireStruct {
				return false, TimeUnitUnset, newErrf(KindMalformedEncoding, r.offset(), "TimeUnit: expected STRUCT, got %d", fh.WireType)
			}
			unit, err = parseTimeUnit(r)
		default:
			err = r.skipValue(fh.WireType)
		}
		if err != nil {
			return false, TimeUnitUnset, err
		}
	}
}

// parseTimeUnit reads the TimeUnit union and returns which of
// MILLIS/MICROS/NANOS was present.
func parseTimeUnit(r *compactReader) (TimeUnit, error) {
	if err := enterStruct(r); err != nil {
		return TimeUnitUnset, err
	}
	var lastID int16
	unit := TimeUnitUnset
	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return TimeUnitUnset, err
		}
		if fh.Stop {
			return unit, nil
		}
		lastID = fh.ID
		if err := r.skipValue(fh.WireType); err != nil {
			return TimeUnitUnset, err
		}
		switch fh.ID {
		case 1:
			unit = TimeUnitMillis
		case 2:
			unit = TimeUnitMicros
		case 3:
			unit = TimeUnitNanos
		}
	}
}

func parseIntLogical(r *compactReader) (bitWidth int8, signed bool, err error) {
	if err := enterStruct(r); err != nil {
		return 0, false, err
	}
	var lastID int16
	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return 0, false, err
		}
		if fh.Stop {
			return bitWidth, signed, nil
		}
		lastID = fh.ID
		switch fh.ID {
		case 1:
			b, err := r.readByte()
			if err != nil {
				return 0, false, err
			}
			bitWidth = int8(b)
		case 2:
			signed, err = requireBool(r, fh.WireType)
			if err != nil {
				return 0, false, err
			}
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return 0, false, err
			}
		}
	}
}

func parseRowGroup(r *compactReader) (RowGroup, error) {
	var out RowGroup
	var lastID int16
	sawColumns, sawTotalByteSize, sawNumRows := false, false, false

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return out, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		switch fh.ID {
		case 1: // columns: list<ColumnChunk>
			cols, err := parseStructList(r, fh.WireType, parseColumnChunk)
			if err != nil {
				return out, err
			}
			out.Columns = cols
			sawColumns = true
		case 2: // total_byte_size
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.TotalByteSize = v
			sawTotalByteSize = true
		case 3: // num_rows
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.NumRows = v
			sawNumRows = true
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return out, err
			}
		}
	}

	if !sawColumns {
		return out, newErr(KindMissingRequiredField, r.offset(), "RowGroup.columns")
	}
	if !sawTotalByteSize {
		return out, newErr(KindMissingRequiredField, r.offset(), "RowGroup.total_byte_size")
	}
	if !sawNumRows {
		return out, newErr(KindMissingRequiredField, r.offset(), "RowGroup.num_rows")
	}
	return out, nil
}

func parseColumnChunk(r *compactReader) (ColumnChunk, error) {
	out := ColumnChunk{
		DataPageOffset:       -1,
		IndexPageOffset:      -1,
		DictionaryPageOffset: -1,
		BloomFilterOffset:    -1,
		BloomFilterLength:    -1,
	}
	var lastID int16
	sawMetaData := false

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return out, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		switch fh.ID {
		case 1: // file_path
			s, err := requireString(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.FilePath = s
		case 2: // file_offset: informational only, not retained
			if _, err := requireI64(r, fh.WireType); err != nil {
				return out, err
			}
		case 3: // meta_data: ColumnMetaData
			if fh.WireType != wireStruct {
				return out, newErrf(KindMalformedEncoding, r.offset(), "ColumnChunk.meta_data: expected STRUCT, got %d", fh.WireType)
			}
			if err := parseColumnMetaData(r, &out); err != nil {
				return out, err
			}
			sawMetaData = true
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return out, err
			}
		}
	}

	if sawMetaData {
		out.Name = joinPath(out.PathInSchema)
	}
	return out, nil
}

func parseColumnMetaData(r *compactReader, out *ColumnChunk) error {
	var lastID int16
	sawType, sawPath, sawNumValues, sawTUS, sawTCS := false, false, false, false, false

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		switch fh.ID {
		case 1: // type
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return err
			}
			out.PhysicalType = PhysicalType(v)
			sawType = true
		case 2: // encodings: list<i32>
			vals, err := parseI32List(r, fh.WireType)
			if err != nil {
				return err
			}
			out.Encodings = make([]Encoding, len(vals))
			for i, v := range vals {
				out.Encodings[i] = decodeEncoding(v)
			}
		case 3: // path_in_schema: list<string>
			paths, err := parseStringList(r, fh.WireType)
			if err != nil {
				return err
			}
			out.PathInSchema = paths
			sawPath = true
		case 4: // codec
			v, err := requireI32(r, fh.WireType)
			if err != nil {
				return err
			}
			out.Codec = decodeCodec(v)
		case 5: // num_values
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.NumValues = v
			sawNumValues = true
		case 6: // total_uncompressed_size
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.TotalUncompressedSize = v
			sawTUS = true
		case 7: // total_compressed_size
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.TotalCompressedSize = v
			sawTCS = true
		case 8: // key_value_metadata
			kvs, err := parseKeyValueList(r, fh.WireType)
			if err != nil {
				return err
			}
			out.KeyValueMetadata = kvs
		case 9: // data_page_offset
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.DataPageOffset = v
		case 10: // index_page_offset
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.IndexPageOffset = v
		case 11: // dictionary_page_offset
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.DictionaryPageOffset = v
		case 12: // statistics
			if fh.WireType != wireStruct {
				return newErrf(KindMalformedEncoding, r.offset(), "ColumnMetaData.statistics: expected STRUCT, got %d", fh.WireType)
			}
			stats, err := parseStatistics(r)
			if err != nil {
				return err
			}
			out.Statistics = stats
		case 13: // encoding_stats: skipped
			if err := r.skipValue(fh.WireType); err != nil {
				return err
			}
		case 14: // bloom_filter_offset
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.BloomFilterOffset = v
		case 15: // bloom_filter_length
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return err
			}
			out.BloomFilterLength = v
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return err
			}
		}
	}

	if !sawType {
		return newErr(KindMissingRequiredField, r.offset(), "ColumnMetaData.type")
	}
	if !sawPath {
		return newErr(KindMissingRequiredField, r.offset(), "ColumnMetaData.path_in_schema")
	}
	if !sawNumValues {
		return newErr(KindMissingRequiredField, r.offset(), "ColumnMetaData.num_values")
	}
	if !sawTUS {
		return newErr(KindMissingRequiredField, r.offset(), "ColumnMetaData.total_uncompressed_size")
	}
	if !sawTCS {
		return newErr(KindMissingRequiredField, r.offset(), "ColumnMetaData.total_compressed_size")
	}
	return nil
}

// parseStatistics decodes a Statistics struct, giving v2 (min_value/
// max_value) precedence over legacy (min/max).
func parseStatistics(r *compactReader) (*Statistics, error) {
	out := &Statistics{NullCount: -1, DistinctCount: -1}
	var legacyMin, legacyMax []byte
	var hasLegacyMin, hasLegacyMax bool
	var lastID int16

	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return nil, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID

		switch fh.ID {
		case 1: // min (legacy)
			b, err := requireBinary(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			legacyMin, hasLegacyMin = b, true
		case 2: // max (legacy)
			b, err := requireBinary(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			legacyMax, hasLegacyMax = b, true
		case 3: // null_count
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			out.NullCount = v
		case 4: // distinct_count
			v, err := requireI64(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			out.DistinctCount = v
		case 5: // max_value (v2)
			b, err := requireBinary(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			out.Max, out.HasMax = b, true
		case 6: // min_value (v2)
			b, err := requireBinary(r, fh.WireType)
			if err != nil {
				return nil, err
			}
			out.Min, out.HasMin = b, true
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return nil, err
			}
		}
	}

	if !out.HasMin && hasLegacyMin {
		out.Min, out.HasMin = legacyMin, true
	}
	if !out.HasMax && hasLegacyMax {
		out.Max, out.HasMax = legacyMax, true
	}
	return out, nil
}

// --- shared scalar/collection readers ---

func enterStruct(r *compactReader) error {
	return nil // struct contents are read directly by field-header loops
}

func requireBool(r *compactReader, wireType byte) (bool, error) {
	switch wireType {
	case wireBoolTrue:
		return true, nil
	case wireBoolFalse:
		return false, nil
	default:
		return false, newErrf(KindMalformedEncoding, r.offset(), "expected BOOL, got wire type %d", wireType)
	}
}

func requireI32(r *compactReader, wireType byte) (int32, error) {
	if wireType != wireI32 && wireType != wireI16 && wireType != wireI8 {
		return 0, newErrf(KindMalformedEncoding, r.offset(), "expected I32, got wire type %d", wireType)
	}
	v, err := r.readZigZag32()
	if err != nil {
		return 0, err
	}
	return v, nil
}

func requireI64(r *compactReader, wireType byte) (int64, error) {
	if wireType != wireI64 && wireType != wireI32 && wireType != wireI16 && wireType != wireI8 {
		return 0, newErrf(KindMalformedEncoding, r.offset(), "expected I64, got wire type %d", wireType)
	}
	return r.readZigZag64()
}

func requireString(r *compactReader, wireType byte) (string, error) {
	b, err := requireBinary(r, wireType)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func requireBinary(r *compactReader, wireType byte) ([]byte, error) {
	if wireType != wireBinary {
		return nil, newErrf(KindMalformedEncoding, r.offset(), "expected BINARY, got wire type %d", wireType)
	}
	return r.readString()
}

func parseStructList[T any](r *compactReader, wireType byte, parse func(*compactReader) (T, error)) ([]T, error) {
	if wireType != wireList && wireType != wireSet {
		return nil, newErrf(KindMalformedEncoding, r.offset(), "expected LIST, got wire type %d", wireType)
	}
	elemType, size, err := r.readListHeader()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, size)
	for i := 0; i < size; i++ {
		if elemType != wireStruct {
			if err := r.skipValue(elemType); err != nil {
				return nil, err
			}
			continue
		}
		v, err := parse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseI32List(r *compactReader, wireType byte) ([]int32, error) {
	if wireType != wireList && wireType != wireSet {
		return nil, newErrf(KindMalformedEncoding, r.offset(), "expected LIST, got wire type %d", wireType)
	}
	elemType, size, err := r.readListHeader()
	if err != nil {
		return nil, err
	}
	out := make([]int32, 0, size)
	for i := 0; i < size; i++ {
		v, err := requireI32(r, elemType)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseStringList(r *compactReader, wireType byte) ([]string, error) {
	if wireType != wireList && wireType != wireSet {
		return nil, newErrf(KindMalformedEncoding, r.offset(), "expected LIST, got wire type %d", wireType)
	}
	elemType, size, err := r.readListHeader()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, size)
	for i := 0; i < size; i++ {
		v, err := requireString(r, elemType)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseKeyValueList(r *compactReader, wireType byte) (map[string]string, error) {
	kvs, err := parseStructList(r, wireType, parseKeyValue)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out, nil
}

func parseKeyValue(r *compactReader) (KeyValue, error) {
	var out KeyValue
	var lastID int16
	for {
		fh, err := r.readFieldHeader(lastID)
		if err != nil {
			return out, err
		}
		if fh.Stop {
			break
		}
		lastID = fh.ID
		switch fh.ID {
		case 1:
			s, err := requireString(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.Key = s
		case 2:
			s, err := requireString(r, fh.WireType)
			if err != nil {
				return out, err
			}
			out.Value = s
		default:
			if err := r.skipValue(fh.WireType); err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

func joinPath(path []string) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p
	}
	return out
}
