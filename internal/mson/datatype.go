package mson

import "github.com/blueprint-mson/mson-go/internal/mtext"

// DataType is one of the six MSON value types (spec.md §3).
type DataType int

const (
	// UndefinedDataType is the type of an element or property whose type
	// has not (yet) been inferred from a specifier or its values.
	UndefinedDataType DataType = iota
	// StringDataType holds a single scalar string value.
	StringDataType
	// NumberDataType holds a single scalar value meant to be read as a
	// number; the value itself is still stored as its original text.
	NumberDataType
	// BooleanDataType holds a single scalar value meant to be read as a
	// boolean; the value itself is still stored as its original text.
	BooleanDataType
	// ObjectDataType holds a set of named Properties.
	ObjectDataType
	// ArrayDataType holds an ordered list of (possibly anonymous) Elements.
	ArrayDataType
)

func (d DataType) String() string {
	switch d {
	case StringDataType:
		return "string"
	case NumberDataType:
		return "number"
	case BooleanDataType:
		return "boolean"
	case ObjectDataType:
		return "object"
	case ArrayDataType:
		return "array"
	default:
		return "undefined"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for the names String
// returns, so the "type" field of a rendered tree decodes back into a
// DataType. An unrecognized name decodes as UndefinedDataType.
func (d *DataType) UnmarshalText(text []byte) error {
	*d, _ = DataTypeFromString(string(text))
	return nil
}

// DataTypeFromString recognizes one of the five type-specifier keywords, or
// the "array: <type>" abbreviated nested-type syntax (spec.md §4.2). When
// the specifier names an array of a further type, inferredElementType
// carries that nested type back to the caller (e.g. "array: number" returns
// ArrayDataType with inferredElementType == NumberDataType); otherwise
// inferredElementType comes back UndefinedDataType.
func DataTypeFromString(s string) (dataType, inferredElementType DataType) {
	switch s {
	case "string":
		return StringDataType, UndefinedDataType
	case "number":
		return NumberDataType, UndefinedDataType
	case "object":
		return ObjectDataType, UndefinedDataType
	case "array":
		return ArrayDataType, UndefinedDataType
	case "bool", "boolean":
		return BooleanDataType, UndefinedDataType
	}

	head, tail, ok := mtext.SplitOnFirst(s, ':')
	if !ok {
		return UndefinedDataType, UndefinedDataType
	}
	if mtext.Trim(head) != "array" {
		return UndefinedDataType, UndefinedDataType
	}

	inferred, _ := DataTypeFromString(mtext.Trim(tail))
	return ArrayDataType, inferred
}
