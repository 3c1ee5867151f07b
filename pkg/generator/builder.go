package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/model-gen/pkg/ir"
)

// RenderSchema is the per-schema entry point: it resolves the component to an
// object schema, classifies it, builds the IR and renders it through the
// target. It returns one declaration string or a typed error; a failure here
// affects only this schema.
func RenderSchema(t Target, name string, sr *openapi3.SchemaRef, propOrder []string) (string, error) {
	schema, err := resolveObject(name, sr)
	if err != nil {
		return "", err
	}

	if Classify(schema) == KindEnum {
		return t.RenderEnum(BuildEnum(t, name, schema))
	}

	st, err := BuildStruct(t, name, schema, propOrder)
	if err != nil {
		return "", fmt.Errorf("schema %q: %w", name, err)
	}
	return t.RenderStruct(st)
}

// BuildStruct builds the IR record for a composite schema. Fields follow
// propOrder when given (the document's declaration order); properties missing
// from propOrder, or all of them when it is empty, are appended in sorted
// order so output stays deterministic.
func BuildStruct(t Target, name string, s *openapi3.Schema, propOrder []string) (ir.Struct, error) {
	out := ir.Struct{
		Name:        t.TypeName(name),
		Description: s.Description,
	}

	required := make(map[string]bool, len(s.Required))
	for _, r := range s.Required {
		required[r] = true
	}

	for _, propName := range orderedPropertyNames(s.Properties, propOrder) {
		field, err := buildField(t, propName, s.Properties[propName])
		if err != nil {
			return ir.Struct{}, fmt.Errorf("property %q: %w", propName, err)
		}
		field.Required = required[propName]
		out.Fields = append(out.Fields, field)
	}
	return out, nil
}

// buildField resolves one property's type, description and array-ness
func buildField(t Target, propName string, pr *openapi3.SchemaRef) (ir.StructField, error) {
	field := ir.StructField{Name: t.FieldName(propName)}

	if pr == nil {
		return field, &ir.MalformedSchemaError{Schema: propName, Reason: "property has no schema"}
	}

	// A direct reference resolves to the referenced schema's generated type
	// name instead of going through the type mapper.
	if pr.Ref != "" {
		field.Type = ir.RefType(t.TypeName(refName(pr.Ref)))
		return field, nil
	}
	if pr.Value == nil {
		return field, &ir.MalformedSchemaError{Schema: propName, Reason: "unresolved schema"}
	}

	v := pr.Value
	field.Description = v.Description

	if v.Type != nil && v.Type.Is(openapi3.TypeArray) {
		field.IsArray = true
		elem, err := resolveElementType(t, v.Items)
		if err != nil {
			return field, err
		}
		field.Type = elem
		return field, nil
	}

	mapped, err := t.MapPrimitive(typeTag(v), v.Format, v.Min)
	if err != nil {
		return field, err
	}
	field.Type = ir.ValueType(mapped)
	return field, nil
}

// resolveElementType resolves an array's item schema through the same
// reference-vs-primitive rule as a plain property
func resolveElementType(t Target, items *openapi3.SchemaRef) (ir.FieldType, error) {
	if items == nil {
		return ir.FieldType{}, &ir.MalformedSchemaError{Schema: "items", Reason: "array schema has no items"}
	}
	if items.Ref != "" {
		return ir.RefType(t.TypeName(refName(items.Ref))), nil
	}
	if items.Value == nil {
		return ir.FieldType{}, &ir.MalformedSchemaError{Schema: "items", Reason: "unresolved schema"}
	}
	mapped, err := t.MapPrimitive(typeTag(items.Value), items.Value.Format, items.Value.Min)
	if err != nil {
		return ir.FieldType{}, err
	}
	return ir.ValueType(mapped), nil
}

// BuildEnum builds the IR enumeration for a schema with literal values, in
// declaration order. An explicit wire Value is kept only when the normalized
// variant name differs from the literal; equal literals omit it so renderers
// can skip a redundant value. This path cannot fail: any literal becomes a
// legal identifier via the digit-prefix rule.
func BuildEnum(t Target, name string, s *openapi3.Schema) ir.Enum {
	out := ir.Enum{
		Name:        t.TypeName(name),
		Description: s.Description,
	}
	for _, raw := range s.Enum {
		literal := fmt.Sprint(raw)
		variant := ir.EnumVariant{Name: t.TypeName(literal)}
		if variant.Name != literal {
			variant.Value = literal
		}
		out.Variants = append(out.Variants, variant)
	}
	return out
}

// resolveObject unwraps a component entry into its object schema. Components
// that are bare references or carry no resolved value are malformed for the
// purposes of model generation.
func resolveObject(name string, sr *openapi3.SchemaRef) (*openapi3.Schema, error) {
	if sr == nil {
		return nil, &ir.MalformedSchemaError{Schema: name, Reason: "no schema"}
	}
	if sr.Ref != "" {
		return nil, &ir.MalformedSchemaError{Schema: name, Reason: "expected an object schema, found a reference"}
	}
	if sr.Value == nil {
		return nil, &ir.MalformedSchemaError{Schema: name, Reason: "unresolved schema"}
	}
	return sr.Value, nil
}

// orderedPropertyNames returns property names in declaration order when
// known, with any names absent from the index appended in sorted order
func orderedPropertyNames(props openapi3.Schemas, propOrder []string) []string {
	names := make([]string, 0, len(props))
	seen := make(map[string]bool, len(props))
	for _, n := range propOrder {
		if _, ok := props[n]; ok && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	rest := make([]string, 0, len(props))
	for n := range props {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// typeTag extracts the primitive type tag of a schema ("string", "integer",
// ...). Multi-type schemas report their first tag; untyped schemas report ""
// and fail in the target's mapper.
func typeTag(s *openapi3.Schema) string {
	if s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}

// refName extracts the component name from a JSON pointer reference
func refName(ref string) string {
	if name, ok := strings.CutPrefix(ref, "#/components/schemas/"); ok {
		return name
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}
