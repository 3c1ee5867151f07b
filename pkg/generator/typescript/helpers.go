package typescript

import (
	"strings"

	"github.com/blimu-dev/model-gen/pkg/ir"
)

// mapPrimitive maps a schema primitive type tag to a TypeScript type name.
// TypeScript has a single numeric type, so format and minimum hints are
// irrelevant and every numeric schema maps to "number".
func mapPrimitive(typ, format string, minimum *float64) (string, error) {
	_ = format
	_ = minimum
	switch typ {
	case "string":
		return "string", nil
	case "boolean":
		return "boolean", nil
	case "number", "integer":
		return "number", nil
	case "array":
		return "Array", nil
	}
	return "", &ir.UnsupportedTypeError{Type: typ}
}

// formatDocComment formats a description as a JSDoc block
func formatDocComment(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	result := make([]string, 0, len(lines)+2)
	result = append(result, "/**")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			result = append(result, " *")
		} else {
			result = append(result, " * "+line)
		}
	}
	result = append(result, " */")
	return strings.Join(result, "\n")
}
