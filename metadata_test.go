package parquetfooter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func sourceFor(buf []byte) ByteSource {
	return NewReaderAtSource(bytes.NewReader(buf), int64(len(buf)))
}

func TestParseMetadata_Minimal(t *testing.T) {
	buf := buildFooter(t, 100, nil)
	meta, err := ParseMetadata(sourceFor(buf))
	require.NoError(t, err)
	require.Equal(t, int32(1), meta.Version)
	require.Equal(t, int64(100), meta.NumRows)
	require.Equal(t, "test-fixture", meta.CreatedBy)
	require.Len(t, meta.Schema, 2)
	require.Empty(t, meta.RowGroups)
	require.Equal(t, int64(len(buf)), meta.FileSize)
}

func TestParseMetadata_MissingNumRows(t *testing.T) {
	w := newCWriter()
	w.i32Field(1, 1)
	w.listFieldHeader(2, wireStruct, 2)
	buildMinimalSchemaInto(w)
	// no num_rows field (3)
	w.stop()
	footer := w.bytes()

	trailer := []byte{byte(len(footer)), 0, 0, 0, 'P', 'A', 'R', '1'}
	buf := append(append([]byte{}, footer...), trailer...)

	_, err := ParseMetadata(sourceFor(buf))
	require.ErrorIs(t, err, ErrMissingRequiredField)
}

// buildColumnChunk writes a ColumnChunk { 3: ColumnMetaData{...} } for a
// single-segment INT32 path. Each of the legacy min/max and v2
// min_value/max_value statistics is written only when it is non-nil.
func buildColumnChunk(w *cwriter, path string, legacyMin, legacyMax, v2Min, v2Max []byte) {
	w.structFieldHeader(3) // meta_data

	w.i32Field(1, int32(PhysicalInt32))
	w.listFieldHeader(3, wireBinary, 1)
	w.varint(uint64(len(path)))
	w.raw([]byte(path)...)
	w.i64Field(5, 10)   // num_values
	w.i64Field(6, 400)  // total_uncompressed_size
	w.i64Field(7, 300)  // total_compressed_size

	w.structFieldHeader(12) // statistics
	if legacyMin != nil {
		w.binaryField(1, legacyMin)
	}
	if legacyMax != nil {
		w.binaryField(2, legacyMax)
	}
	if v2Max != nil {
		w.binaryField(5, v2Max)
	}
	if v2Min != nil {
		w.binaryField(6, v2Min)
	}
	w.stop() // end statistics

	w.stop() // end meta_data
	w.stop() // end ColumnChunk
}

func TestParseMetadata_StatisticsPrecedence(t *testing.T) {
	buf := buildFooter(t, 10, func(w *cwriter) {
		w.listFieldHeader(4, wireStruct, 1) // row_groups: 1 RowGroup
		w.listFieldHeader(1, wireStruct, 1) // columns: 1 ColumnChunk
		buildColumnChunk(w, "id",
			[]byte("legacy-min"), []byte("legacy-max"),
			[]byte("v2-min"), []byte("v2-max"))
		w.i64Field(2, 400) // total_byte_size
		w.i64Field(3, 10)  // num_rows
		w.stop()           // end RowGroup
	})

	meta, err := ParseMetadata(sourceFor(buf))
	require.NoError(t, err)
	require.Len(t, meta.RowGroups, 1)
	rg := meta.RowGroups[0]
	require.Len(t, rg.Columns, 1)
	col := rg.Columns[0]
	require.Equal(t, "id", col.Name)
	require.NotNil(t, col.Statistics)
	require.True(t, col.Statistics.HasMin)
	require.True(t, col.Statistics.HasMax)
	require.Equal(t, []byte("v2-min"), col.Statistics.Min)
	require.Equal(t, []byte("v2-max"), col.Statistics.Max)

	// schema resolution assigns the INT32 leaf's logical type
	require.Equal(t, LogicalNone, col.LogicalType.Tag)
}

func TestParseMetadata_StatisticsFallsBackToLegacy(t *testing.T) {
	buf := buildFooter(t, 10, func(w *cwriter) {
		w.listFieldHeader(4, wireStruct, 1)
		w.listFieldHeader(1, wireStruct, 1)
		buildColumnChunk(w, "id", []byte("legacy-min"), []byte("legacy-max"), nil, nil)
		w.i64Field(2, 400)
		w.i64Field(3, 10)
		w.stop()
	})

	meta, err := ParseMetadata(sourceFor(buf))
	require.NoError(t, err)
	col := meta.RowGroups[0].Columns[0]
	require.Equal(t, []byte("legacy-min"), col.Statistics.Min)
	require.Equal(t, []byte("legacy-max"), col.Statistics.Max)
}

func TestParseMetadata_EmptyStatBytesIsNotAbsence(t *testing.T) {
	buf := buildFooter(t, 10, func(w *cwriter) {
		w.listFieldHeader(4, wireStruct, 1)
		w.listFieldHeader(1, wireStruct, 1)
		buildColumnChunk(w, "id", nil, nil, []byte{}, []byte{})
		w.i64Field(2, 400)
		w.i64Field(3, 10)
		w.stop()
	})

	meta, err := ParseMetadata(sourceFor(buf))
	require.NoError(t, err)
	col := meta.RowGroups[0].Columns[0]
	require.True(t, col.Statistics.HasMin)
	require.Equal(t, []byte{}, col.Statistics.Min)
}

func TestParseMetadata_SchemaMismatch(t *testing.T) {
	buf := buildFooter(t, 10, func(w *cwriter) {
		w.listFieldHeader(4, wireStruct, 1)
		w.listFieldHeader(1, wireStruct, 1)
		buildColumnChunk(w, "does_not_exist", nil, nil, []byte("a"), []byte("z"))
		w.i64Field(2, 400)
		w.i64Field(3, 10)
		w.stop()
	})

	_, err := ParseMetadata(sourceFor(buf))
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestFileMetadata_ColumnsByPath(t *testing.T) {
	buf := buildFooter(t, 10, func(w *cwriter) {
		w.listFieldHeader(4, wireStruct, 1)
		w.listFieldHeader(1, wireStruct, 1)
		buildColumnChunk(w, "id", nil, nil, []byte("a"), []byte("z"))
		w.i64Field(2, 400)
		w.i64Field(3, 10)
		w.stop()
	})

	meta, err := ParseMetadata(sourceFor(buf))
	require.NoError(t, err)
	byPath := meta.ColumnsByPath()
	require.Len(t, byPath, 1)
	require.Contains(t, byPath[0], "id")
	require.Equal(t, 1, meta.RowGroups[0].NumColumnChunks())
}
