package parquetfooter

import "fmt"

// PhysicalType is the Parquet on-disk value representation (Glossary).
type PhysicalType int32

const (
	PhysicalBoolean           PhysicalType = 0
	PhysicalInt32             PhysicalType = 1
	PhysicalInt64             PhysicalType = 2
	PhysicalInt96             PhysicalType = 3
	PhysicalFloat             PhysicalType = 4
	PhysicalDouble            PhysicalType = 5
	PhysicalByteArray         PhysicalType = 6
	PhysicalFixedLenByteArray PhysicalType = 7
)

func (t PhysicalType) String() string {
	switch t {
	case PhysicalBoolean:
		return "BOOLEAN"
	case PhysicalInt32:
		return "INT32"
	case PhysicalInt64:
		return "INT64"
	case PhysicalInt96:
		return "INT96"
	case PhysicalFloat:
		return "FLOAT"
	case PhysicalDouble:
		return "DOUBLE"
	case PhysicalByteArray:
		return "BYTE_ARRAY"
	case PhysicalFixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// Repetition is a SchemaElement's repetition_type.
type Repetition int32

const (
	RepetitionRequired Repetition = 0
	RepetitionOptional Repetition = 1
	RepetitionRepeated Repetition = 2
)

func (r Repetition) String() string {
	switch r {
	case RepetitionRequired:
		return "REQUIRED"
	case RepetitionOptional:
		return "OPTIONAL"
	case RepetitionRepeated:
		return "REPEATED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(r))
	}
}

// Encoding identifies a column chunk's value encoding (Glossary).
type Encoding int32

const (
	EncodingPlain                Encoding = 0
	EncodingPlainDictionary      Encoding = 2
	EncodingRLE                  Encoding = 3
	EncodingBitPacked            Encoding = 4
	EncodingDeltaBinaryPacked    Encoding = 5
	EncodingDeltaLengthByteArray Encoding = 6
	EncodingDeltaByteArray       Encoding = 7
	EncodingRLEDictionary        Encoding = 8
	EncodingByteStreamSplit      Encoding = 9
	// EncodingUnknown is used for encoding codes not in the table above;
	// the original numeric code is not kept.
	EncodingUnknown Encoding = -1
)

var encodingNames = map[Encoding]string{
	EncodingPlain:                "PLAIN",
	EncodingPlainDictionary:      "PLAIN_DICTIONARY",
	EncodingRLE:                  "RLE",
	EncodingBitPacked:            "BIT_PACKED",
	EncodingDeltaBinaryPacked:    "DELTA_BINARY_PACKED",
	EncodingDeltaLengthByteArray: "DELTA_LENGTH_BYTE_ARRAY",
	EncodingDeltaByteArray:       "DELTA_BYTE_ARRAY",
	EncodingRLEDictionary:        "RLE_DICTIONARY",
	EncodingByteStreamSplit:      "BYTE_STREAM_SPLIT",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return "UNKNOWN"
}

func decodeEncoding(v int32) Encoding {
	if _, ok := encodingNames[Encoding(v)]; ok {
		return Encoding(v)
	}
	return EncodingUnknown
}

// Codec identifies a column chunk's compression codec (Glossary).
type Codec int32

const (
	CodecUncompressed Codec = 0
	CodecSnappy       Codec = 1
	CodecGzip         Codec = 2
	CodecLZO          Codec = 3
	CodecBrotli       Codec = 4
	CodecLZ4          Codec = 5
	CodecZSTD         Codec = 6
	CodecLZ4Raw       Codec = 7
	CodecUnknown      Codec = -1
)

var codecNames = map[Codec]string{
	CodecUncompressed: "UNCOMPRESSED",
	CodecSnappy:       "SNAPPY",
	CodecGzip:         "GZIP",
	CodecLZO:          "LZO",
	CodecBrotli:       "BROTLI",
	CodecLZ4:          "LZ4",
	CodecZSTD:         "ZSTD",
	CodecLZ4Raw:       "LZ4_RAW",
}

func (c Codec) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

func decodeCodec(v int32) Codec {
	if _, ok := codecNames[Codec(v)]; ok {
		return Codec(v)
	}
	return CodecUnknown
}

// ConvertedType is the legacy logical type carried on SchemaElement field 6
// (Glossary: Converted (legacy) logical type map).
type ConvertedType int32

const (
	ConvertedUTF8             ConvertedType = 0
	ConvertedMap              ConvertedType = 1
	ConvertedMapKeyValue      ConvertedType = 2
	ConvertedList             ConvertedType = 3
	ConvertedEnum             ConvertedType = 4
	ConvertedDecimal          ConvertedType = 5
	ConvertedDate             ConvertedType = 6
	ConvertedTimeMillis       ConvertedType = 7
	ConvertedTimeMicros       ConvertedType = 8
	ConvertedTimestampMillis  ConvertedType = 9
	ConvertedTimestampMicros  ConvertedType = 10
	ConvertedUint8            ConvertedType = 11
	ConvertedUint16           ConvertedType = 12
	ConvertedUint32           ConvertedType = 13
	ConvertedUint64           ConvertedType = 14
	ConvertedInt8             ConvertedType = 15
	ConvertedInt16            ConvertedType = 16
	ConvertedInt32            ConvertedType = 17
	ConvertedInt64            ConvertedType = 18
	ConvertedJSON             ConvertedType = 19
	ConvertedBSON             ConvertedType = 20
	ConvertedInterval         ConvertedType = 21
)

// TimeUnit is the unit carried by TIME and TIMESTAMP logical types.
type TimeUnit int

const (
	TimeUnitUnset TimeUnit = iota
	TimeUnitMillis
	TimeUnitMicros
	TimeUnitNanos
)

func (u TimeUnit) String() string {
	switch u {
	case TimeUnitMillis:
		return "MILLIS"
	case TimeUnitMicros:
		return "MICROS"
	case TimeUnitNanos:
		return "NANOS"
	default:
		return "UNSET"
	}
}

// LogicalTypeTag discriminates the LogicalType tagged union.
type LogicalTypeTag int

const (
	// LogicalNone is the explicit NONE variant: present but carrying no
	// shape. Distinct from the Go zero value meaning "absent" at the
	// SchemaElement level.
	LogicalNone LogicalTypeTag = iota
	LogicalString
	LogicalMap
	LogicalList
	LogicalEnum
	LogicalDecimal
	LogicalDate
	LogicalTime
	LogicalTimestamp
	LogicalInt
	LogicalJSON
	LogicalBSON
	LogicalUUID
	LogicalFloat16
	LogicalUnknown
)

func (t LogicalTypeTag) String() string {
	switch t {
	case LogicalNone:
		return "NONE"
	case LogicalString:
		return "STRING"
	case LogicalMap:
		return "MAP"
	case LogicalList:
		return "LIST"
	case LogicalEnum:
		return "ENUM"
	case LogicalDecimal:
		return "DECIMAL"
	case LogicalDate:
		return "DATE"
	case LogicalTime:
		return "TIME"
	case LogicalTimestamp:
		return "TIMESTAMP"
	case LogicalInt:
		return "INT"
	case LogicalJSON:
		return "JSON"
	case LogicalBSON:
		return "BSON"
	case LogicalUUID:
		return "UUID"
	case LogicalFloat16:
		return "FLOAT16"
	default:
		return "UNKNOWN"
	}
}

// LogicalType is the tagged union over Parquet's logical type shapes.
// Only the fields relevant to Tag are meaningful.
type LogicalType struct {
	Tag LogicalTypeTag

	// DECIMAL
	Precision int32
	Scale     int32

	// TIME / TIMESTAMP
	Unit  TimeUnit
	IsUTC bool

	// INT
	BitWidth int8
	Signed   bool
}

func (lt LogicalType) String() string {
	switch lt.Tag {
	case LogicalDecimal:
		return fmt.Sprintf("DECIMAL(%d,%d)", lt.Precision, lt.Scale)
	case LogicalTime:
		return fmt.Sprintf("TIME(%s,utc=%t)", lt.Unit, lt.IsUTC)
	case LogicalTimestamp:
		return fmt.Sprintf("TIMESTAMP(%s,utc=%t)", lt.Unit, lt.IsUTC)
	case LogicalInt:
		return fmt.Sprintf("INT(%d,signed=%t)", lt.BitWidth, lt.Signed)
	default:
		return lt.Tag.String()
	}
}

// SchemaElement is one pre-order node of the flattened schema tree.
type SchemaElement struct {
	Name          string
	PhysicalType  *PhysicalType
	Repetition    *Repetition
	NumChildren   int32
	TypeLength    *int32
	Precision     *int32
	Scale         *int32
	LogicalType   *LogicalType
	ConvertedType *ConvertedType
	FieldID       *int32
}

// IsLeaf reports whether this node is a column (no children) rather than an
// intermediate group.
func (s SchemaElement) IsLeaf() bool {
	return s.NumChildren == 0
}

// Statistics holds a column chunk's per-page-group statistics.
// Min/Max retain v2 (min_value/max_value) precedence over legacy
// (min/max); HasMin/HasMax distinguish "empty but present" from "absent".
type Statistics struct {
	Min           []byte
	HasMin        bool
	Max           []byte
	HasMax        bool
	NullCount     int64 // -1 if absent
	DistinctCount int64 // -1 if absent
}

// KeyValue is a single Thrift KeyValue pair (file or column level metadata).
type KeyValue struct {
	Key   string
	Value string
}

// ColumnChunk is one column's storage within one row group.
type ColumnChunk struct {
	Name                  string // dotted path_in_schema
	PathInSchema          []string
	PhysicalType          PhysicalType
	LogicalType           *LogicalType
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	DataPageOffset        int64 // -1 if absent
	IndexPageOffset       int64 // -1 if absent
	DictionaryPageOffset  int64 // -1 if absent
	Codec                 Codec
	Encodings             []Encoding
	Statistics            *Statistics
	BloomFilterOffset     int64 // -1 if absent
	BloomFilterLength     int64 // -1 if absent
	KeyValueMetadata      map[string]string
	FilePath              string // non-empty => external file, not followed
}

// RowGroup is a horizontal partition of the table.
type RowGroup struct {
	NumRows       int64
	TotalByteSize int64
	Columns       []ColumnChunk
}

// NumColumnChunks is a convenience accessor (SPEC_FULL supplement #3).
func (r RowGroup) NumColumnChunks() int {
	return len(r.Columns)
}

// FileMetadata is the fully decoded, immutable description of a Parquet
// file's logical contents.
type FileMetadata struct {
	Version          int32
	NumRows          int64
	FileSize         int64
	Schema           []SchemaElement
	RowGroups        []RowGroup
	CreatedBy        string
	KeyValueMetadata map[string]string
}

// ColumnsByPath returns, for each row group, a lookup from dotted column
// path to that row group's ColumnChunk (SPEC_FULL supplement #3).
func (m *FileMetadata) ColumnsByPath() []map[string]*ColumnChunk {
	out := make([]map[string]*ColumnChunk, len(m.RowGroups))
	for i := range m.RowGroups {
		rg := &m.RowGroups[i]
		byPath := make(map[string]*ColumnChunk, len(rg.Columns))
		for j := range rg.Columns {
			byPath[rg.Columns[j].Name] = &rg.Columns[j]
		}
		out[i] = byPath
	}
	return out
}

// BloomFilterHeader is the Thrift-encoded header preceding a split-block
// bloom filter's body. Per the Parquet format, a split-block
// filter always uses 8 hash lanes per block; NumBytes/32 gives the block
// count.
type BloomFilterHeader struct {
	NumBytes int32
}

// NumBlocks is NumBytes divided into 32-byte (256-bit) blocks.
func (h BloomFilterHeader) NumBlocks() int {
	return int(h.NumBytes) / bloomBlockBytes
}
