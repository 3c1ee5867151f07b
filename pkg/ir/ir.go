// Package ir holds the language-agnostic intermediate representation that the
// schema pipeline builds from OpenAPI component schemas and hands to the
// per-target renderers. IR nodes are constructed fresh for every schema and
// are never mutated after construction.
package ir

// FieldTypeKind distinguishes the two variants of a field's type
type FieldTypeKind string

const (
	// FieldTypeValue is a concrete target-language type name (e.g. "String", "i32")
	FieldTypeValue FieldTypeKind = "value"
	// FieldTypeRef is the generated name of another component schema
	FieldTypeRef FieldTypeKind = "ref"
)

// FieldType is a tagged union: either a direct value type name or a reference
// to another generated type. Exactly one variant applies; renderers that need
// indirection for reference graphs can branch on IsRef.
type FieldType struct {
	Kind FieldTypeKind
	Name string
}

// ValueType builds the value variant of a FieldType
func ValueType(name string) FieldType {
	return FieldType{Kind: FieldTypeValue, Name: name}
}

// RefType builds the reference variant of a FieldType
func RefType(name string) FieldType {
	return FieldType{Kind: FieldTypeRef, Name: name}
}

// IsRef reports whether the type refers to another generated type
func (t FieldType) IsRef() bool {
	return t.Kind == FieldTypeRef
}

// Struct is a composite record built from an object schema
type Struct struct {
	Name string
	// Description is copied verbatim from the schema; empty means absent
	Description string
	// Fields preserves the schema's property declaration order
	Fields []StructField
}

// StructField is a single named, typed field of a Struct
type StructField struct {
	Name        string
	Description string
	Type        FieldType
	Required    bool
	IsArray     bool
}

// Enum is a fixed set of literal values built from an enumeration schema
type Enum struct {
	Name        string
	Description string
	// Variants preserves the schema's literal declaration order
	Variants []EnumVariant
}

// EnumVariant is a single enum member. Value carries the original wire
// literal and is set only when the normalized name differs from it, so
// generated code can still round-trip the wire representation.
type EnumVariant struct {
	Name  string
	Value string
}
