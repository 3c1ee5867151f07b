package typescript

import (
	"testing"

	"github.com/blimu-dev/model-gen/pkg/ir"
)

func TestRenderStruct(t *testing.T) {
	s := ir.Struct{
		Name:        "Pet",
		Description: "A pet",
		Fields: []ir.StructField{
			{Name: "name", Type: ir.ValueType("string"), Required: true},
			{Name: "age", Type: ir.ValueType("number")},
			{Name: "tags", Type: ir.ValueType("string"), IsArray: true},
			{Name: "owner", Type: ir.RefType("Owner"), Required: true},
		},
	}

	expected := `
/**
 * A pet
 */
export interface Pet {
  name: string;
  age?: number;
  tags?: Array<string>;
  owner: Owner;
}
`
	got, err := New().RenderStruct(s)
	if err != nil {
		t.Fatalf("RenderStruct failed: %v", err)
	}
	if got != expected {
		t.Errorf("RenderStruct = %q, expected %q", got, expected)
	}
}

func TestRenderStructEmpty(t *testing.T) {
	expected := `
export interface Empty {
}
`
	got, err := New().RenderStruct(ir.Struct{Name: "Empty"})
	if err != nil {
		t.Fatalf("RenderStruct failed: %v", err)
	}
	if got != expected {
		t.Errorf("RenderStruct = %q, expected %q", got, expected)
	}
}

func TestRenderEnum(t *testing.T) {
	e := ir.Enum{
		Name: "Status",
		Variants: []ir.EnumVariant{
			{Name: "Active", Value: "active"},
			{Name: "Done"},
		},
	}

	expected := `
export enum Status {
  Active = "active",
  Done,
}
`
	got, err := New().RenderEnum(e)
	if err != nil {
		t.Fatalf("RenderEnum failed: %v", err)
	}
	if got != expected {
		t.Errorf("RenderEnum = %q, expected %q", got, expected)
	}
}
