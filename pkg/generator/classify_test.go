package generator

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		schema   *openapi3.Schema
		expected SchemaKind
	}{
		{
			name:     "enum literals",
			schema:   &openapi3.Schema{Enum: []any{"red", "green"}},
			expected: KindEnum,
		},
		{
			name: "object with properties",
			schema: &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeObject},
				Properties: openapi3.Schemas{
					"name": openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}),
				},
			},
			expected: KindStruct,
		},
		{
			name:     "object with zero properties",
			schema:   &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeObject}},
			expected: KindStruct,
		},
		{
			name: "empty enum list with properties",
			schema: &openapi3.Schema{
				Enum: []any{},
				Properties: openapi3.Schemas{
					"name": openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}}),
				},
			},
			expected: KindStruct,
		},
	}

	for _, test := range tests {
		if got := Classify(test.schema); got != test.expected {
			t.Errorf("%s: Classify = %v, expected %v", test.name, got, test.expected)
		}
	}
}
