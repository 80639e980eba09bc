package parquetfooter

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// Statistics Decoder: interprets raw min/max bytes according to
// a column's physical type. Any length mismatch returns the raw bytes
// rather than failing (spec: "Any length mismatch: return raw bytes (do not
// fail)"). Grounded on hangxie-parquet-browser's model/format.go
// retrieveRawValue, which uses the same little-endian binary.Read-per-type
// dispatch.

// Int96Timestamp is the decoded form of a 12-byte INT96 statistic: a
// little-endian u64 nanoseconds-of-day followed by a little-endian u32
// Julian day number.
type Int96Timestamp struct {
	DaysSinceEpoch int64 // Julian day - 2440588
	NanosOfDay     uint64
}

const julianDayUnixEpoch = 2440588

// DecodedValue is the typed result of decoding a statistics min/max byte
// string for a given physical type. Valid is false when the byte length did
// not match the physical type's fixed width; Raw always holds the original
// bytes regardless.
type DecodedValue struct {
	Physical PhysicalType
	Raw      []byte
	Valid    bool

	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Int96   Int96Timestamp
}

// DecodeStatValue decodes raw (a Statistics.Min or .Max byte string) per the
// these rules. An empty raw slice is a legitimate value (not
// absence) and is decoded like any other input of that length.
func DecodeStatValue(physical PhysicalType, raw []byte) DecodedValue {
	out := DecodedValue{Physical: physical, Raw: raw}

	switch physical {
	case PhysicalInt32:
		if len(raw) == 4 {
			out.Int32 = int32(binary.LittleEndian.Uint32(raw))
			out.Valid = true
		}
	case PhysicalInt64:
		if len(raw) == 8 {
			out.Int64 = int64(binary.LittleEndian.Uint64(raw))
			out.Valid = true
		}
	case PhysicalFloat:
		if len(raw) == 4 {
			out.Float32 = math.Float32frombits(binary.LittleEndian.Uint32(raw))
			out.Valid = true
		}
	case PhysicalDouble:
		if len(raw) == 8 {
			out.Float64 = math.Float64frombits(binary.LittleEndian.Uint64(raw))
			out.Valid = true
		}
	case PhysicalInt96:
		if len(raw) == 12 {
			nanos := binary.LittleEndian.Uint64(raw[0:8])
			julianDay := binary.LittleEndian.Uint32(raw[8:12])
			out.Int96 = Int96Timestamp{
				DaysSinceEpoch: int64(julianDay) - julianDayUnixEpoch,
				NanosOfDay:     nanos,
			}
			out.Valid = true
		}
	case PhysicalByteArray, PhysicalFixedLenByteArray:
		// Raw bytes are the decoded value; Valid has no length constraint
		// to check against.
		out.Valid = true
	default:
		// BOOLEAN and anything else: not covered by this table,
		// callers get the raw bytes.
	}

	return out
}

// DecodeUUIDStat interprets a 16-byte FIXED_LEN_BYTE_ARRAY statistic value
// as a UUID (SPEC_FULL DOMAIN STACK, using the real github.com/google/uuid
// dependency from the example pack rather than hand parsing 16 bytes).
// Callers should only call this when the column's logical type is UUID.
func DecodeUUIDStat(raw []byte) (uuid.UUID, bool) {
	if len(raw) != 16 {
		return uuid.UUID{}, false
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}
