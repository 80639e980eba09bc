package parquetfooter

// Schema Resolver: walks the flattened pre-order SchemaElement
// list, reconstructs dotted leaf paths with a counter-stack (no pointers
// needed), and assigns each
// leaf a final LogicalType by priority: new logicalType, then legacy
// converted_type, then a physical-type fallback. Grounded on the
// stack-based path reconstruction in hangxie-parquet-browser's
// model/utils.go findSchemaElement.

type schemaFrame struct {
	name      string
	remaining int32
}

// resolveSchema computes the dotted-path → LogicalType mapping and applies
// it to every ColumnChunk in meta by name, failing SchemaMismatch if a
// chunk's name has no corresponding leaf.
func resolveSchema(meta *FileMetadata) error {
	if len(meta.Schema) == 0 {
		return nil
	}

	leafTypes := make(map[string]*LogicalType, len(meta.Schema))

	root := meta.Schema[0]
	stack := []schemaFrame{{name: "", remaining: root.NumChildren}}

	for i := 1; i < len(meta.Schema); i++ {
		elem := meta.Schema[i]

		for len(stack) > 0 && stack[len(stack)-1].remaining == 0 {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return newErrf(KindMalformedEncoding, -1, "schema element %q has no enclosing group", elem.Name)
		}
		stack[len(stack)-1].remaining--

		path := buildPath(stack, elem.Name)

		if elem.IsLeaf() {
			leafTypes[path] = resolveLogicalType(elem)
		} else {
			stack = append(stack, schemaFrame{name: path, remaining: elem.NumChildren})
		}
	}

	for rgIdx := range meta.RowGroups {
		cols := meta.RowGroups[rgIdx].Columns
		for ci := range cols {
			lt, ok := leafTypes[cols[ci].Name]
			if !ok {
				return newErrf(KindSchemaMismatch, -1, "column chunk %q does not match any schema leaf", cols[ci].Name)
			}
			cols[ci].LogicalType = lt
		}
	}

	return nil
}

func buildPath(stack []schemaFrame, name string) string {
	// Each frame's name is already the full dotted path of its group, so
	// only the innermost enclosing group is prefixed.
	if parent := stack[len(stack)-1].name; parent != "" {
		return parent + "." + name
	}
	return name
}

// resolveLogicalType applies the priority order: explicit
// logicalType, then legacy converted_type, then physical-type fallback.
func resolveLogicalType(elem SchemaElement) *LogicalType {
	if elem.LogicalType != nil && elem.LogicalType.Tag != LogicalUnknown {
		return elem.LogicalType
	}
	if elem.ConvertedType != nil {
		return legacyLogicalType(*elem.ConvertedType, elem)
	}
	if elem.PhysicalType != nil {
		switch *elem.PhysicalType {
		case PhysicalByteArray:
			return &LogicalType{Tag: LogicalString}
		case PhysicalInt96:
			return &LogicalType{Tag: LogicalTimestamp, Unit: TimeUnitNanos, IsUTC: false}
		}
	}
	return &LogicalType{Tag: LogicalNone}
}

// legacyLogicalType maps a SchemaElement's converted_type into the new
// LogicalType shape (Glossary: Converted (legacy) logical type map).
func legacyLogicalType(ct ConvertedType, elem SchemaElement) *LogicalType {
	switch ct {
	case ConvertedUTF8:
		return &LogicalType{Tag: LogicalString}
	case ConvertedMap, ConvertedMapKeyValue:
		return &LogicalType{Tag: LogicalMap}
	case ConvertedList:
		return &LogicalType{Tag: LogicalList}
	case ConvertedEnum:
		return &LogicalType{Tag: LogicalEnum}
	case ConvertedDecimal:
		lt := &LogicalType{Tag: LogicalDecimal}
		if elem.Precision != nil {
			lt.Precision = *elem.Precision
		}
		if elem.Scale != nil {
			lt.Scale = *elem.Scale
		}
		return lt
	case ConvertedDate:
		return &LogicalType{Tag: LogicalDate}
	case ConvertedTimeMillis:
		return &LogicalType{Tag: LogicalTime, Unit: TimeUnitMillis, IsUTC: true}
	case ConvertedTimeMicros:
		return &LogicalType{Tag: LogicalTime, Unit: TimeUnitMicros, IsUTC: true}
	case ConvertedTimestampMillis:
		return &LogicalType{Tag: LogicalTimestamp, Unit: TimeUnitMillis, IsUTC: true}
	case ConvertedTimestampMicros:
		return &LogicalType{Tag: LogicalTimestamp, Unit: TimeUnitMicros, IsUTC: true}
	case ConvertedUint8:
		return &LogicalType{Tag: LogicalInt, BitWidth: 8, Signed: false}
	case ConvertedUint16:
		return &LogicalType{Tag: LogicalInt, BitWidth: 16, Signed: false}
	case ConvertedUint32:
		return &LogicalType{Tag: LogicalInt, BitWidth: 32, Signed: false}
	case ConvertedUint64:
		return &LogicalType{Tag: LogicalInt, BitWidth: 64, Signed: false}
	case ConvertedInt8:
		return &LogicalType{Tag: LogicalInt, BitWidth: 8, Signed: true}
	case ConvertedInt16:
		return &LogicalType{Tag: LogicalInt, BitWidth: 16, Signed: true}
	case ConvertedInt32:
		return &LogicalType{Tag: LogicalInt, BitWidth: 32, Signed: true}
	case ConvertedInt64:
		return &LogicalType{Tag: LogicalInt, BitWidth: 64, Signed: true}
	case ConvertedJSON:
		return &LogicalType{Tag: LogicalJSON}
	case ConvertedBSON:
		return &LogicalType{Tag: LogicalBSON}
	default:
		return &LogicalType{Tag: LogicalUnknown}
	}
}
