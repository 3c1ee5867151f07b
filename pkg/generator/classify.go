package generator

import "github.com/getkin/kin-openapi/openapi3"

// SchemaKind is the classification of a component schema
type SchemaKind int

const (
	// KindStruct is a composite record with named, typed fields
	KindStruct SchemaKind = iota
	// KindEnum is a fixed set of literal values
	KindEnum
)

// Classify decides whether a schema denotes an enumeration or a composite
// record. The decision is total and exclusive: a non-empty enum literal list
// means Enum, everything else is Struct, including objects with zero
// properties.
func Classify(s *openapi3.Schema) SchemaKind {
	if len(s.Enum) > 0 {
		return KindEnum
	}
	return KindStruct
}
