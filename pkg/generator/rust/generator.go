// Package rust renders component schemas as Rust structs and enums with
// serde round-trip attributes.
package rust

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/model-gen/pkg/ir"
	"github.com/blimu-dev/model-gen/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

// Generator implements the Rust target policy: naming, numeric mapping and
// template rendering
type Generator struct {
	templates *template.Template
}

// New creates a new Rust generator with its templates parsed
func New() *Generator {
	funcMap := sprig.TxtFuncMap()
	funcMap["docComment"] = formatDocComment

	return &Generator{
		templates: template.Must(template.New("rust").Funcs(funcMap).ParseFS(templatesFS, "templates/*.gotmpl")),
	}
}

// GetType returns the target type identifier
func (g *Generator) GetType() string {
	return "rust"
}

// TypeName converts a schema name to a Rust type identifier
func (g *Generator) TypeName(raw string) string {
	return utils.ToTypeIdentifier(raw)
}

// FieldName converts a property name to a Rust field identifier
func (g *Generator) FieldName(raw string) string {
	return utils.GuardLeadingDigit(utils.ToSnakeCase(raw))
}

// MapPrimitive maps a schema primitive type to a Rust type name
func (g *Generator) MapPrimitive(typ, format string, minimum *float64) (string, error) {
	return mapPrimitive(typ, format, minimum)
}

// RenderStruct renders an IR record as a Rust struct declaration
func (g *Generator) RenderStruct(s ir.Struct) (string, error) {
	return g.render("struct.rs.gotmpl", s)
}

// RenderEnum renders an IR enumeration as a Rust enum declaration
func (g *Generator) RenderEnum(e ir.Enum) (string, error) {
	return g.render("enum.rs.gotmpl", e)
}

// Preamble returns the header of the generated models file
func (g *Generator) Preamble() string {
	return "// Code generated from an OpenAPI specification. DO NOT EDIT.\n\nuse serde::{Deserialize, Serialize};\n"
}

// DefaultFileName returns the default output file name
func (g *Generator) DefaultFileName() string {
	return "models.rs"
}

func (g *Generator) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := g.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &ir.RenderError{Target: g.GetType(), Err: err}
	}
	return buf.String(), nil
}
