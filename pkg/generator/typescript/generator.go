// Package typescript renders component schemas as TypeScript interfaces and
// enums.
package typescript

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

// Generator implements the TypeScript target policy: naming, the collapsed
// numeric mapping and template rendering
type Generator struct {
	templates *template.Template
}

// New creates a new TypeScript generator with its templates parsed
func New() *Generator {
	funcMap := sprig.TxtFuncMap()
	funcMap["docComment"] = formatDocComment

	return &Generator{
		templates: template.Must(template.New("typescript").Funcs(funcMap).ParseFS(templatesFS, "templates/*.gotmpl")),
	}
}

// GetType returns the target type identifier
func (g *Generator) GetType() string {
	return "typescript"
}

// TypeName converts a schema name to a TypeScript type identifier
func (g *Generator) TypeName(raw string) string {
	return utils.ToTypeIdentifier(raw)
}

// FieldName converts a property name to a TypeScript field identifier
func (g *Generator) FieldName(raw string) string {
	return utils.GuardLeadingDigit(utils.ToCamelCase(raw))
}

// MapPrimitive maps a schema primitive type to a TypeScript type name
func (g *Generator) MapPrimitive(typ, format string, minimum *float64) (string, error) {
	return mapPrimitive(typ, format, minimum)
}

// RenderStruct renders an IR record as a TypeScript interface declaration
func (g *Generator) RenderStruct(s ir.Struct) (string, error) {
	return g.render("struct.ts.gotmpl", s)
}

// RenderEnum renders an IR enumeration as a TypeScript enum declaration
func (g *Generator) RenderEnum(e ir.Enum) (string, error) {
	return g.render("enum.ts.gotmpl", e)
}

// Preamble returns the header of the generated models file
func (g *Generator) Preamble() string {
	return "// Code generated from an OpenAPI specification. DO NOT EDIT.\n"
}

// DefaultFileName returns the default output file name
func (g *Generator) DefaultFileName() string {
	return "models.ts"
}

func (g *Generator) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := g.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &ir.RenderError{Target: g.GetType(), Err: err}
	}
	return buf.String(), nil
}
