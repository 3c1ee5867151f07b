package rust

import (
	"strings"

	"github.com/blimu-dev/model-gen/pkg/ir"
)

// mapPrimitive maps a schema primitive type tag to a Rust type name. Rust has
// fixed-width numerics, so format and minimum hints pick the width and
// signedness: "float"/"double" select f32/f64 (f64 default), "int32"/"int64"
// select the 32/64-bit integer (32-bit default), and a minimum of exactly
// zero selects the unsigned variant.
func mapPrimitive(typ, format string, minimum *float64) (string, error) {
	switch typ {
	case "string":
		return "String", nil
	case "boolean":
		return "bool", nil
	case "array":
		return "Vec", nil
	case "number":
		if format == "float" {
			return "f32", nil
		}
		return "f64", nil
	case "integer":
		unsigned := minimum != nil && *minimum == 0
		if format == "int64" {
			if unsigned {
				return "u64", nil
			}
			return "i64", nil
		}
		if unsigned {
			return "u32", nil
		}
		return "i32", nil
	}
	return "", &ir.UnsupportedTypeError{Type: typ}
}

// formatDocComment formats a description as Rust /// doc comment lines
func formatDocComment(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			result = append(result, "///")
		} else {
			result = append(result, "/// "+line)
		}
	}
	return strings.Join(result, "\n")
}
