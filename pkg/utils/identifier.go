package utils

// ToTypeIdentifier converts an arbitrary schema name into a declaration-cased
// (PascalCase) identifier. A name whose first word is numeric is illegal as-is,
// so the leading digit becomes its own underscore-delimited segment:
// "1test" -> "_1_Test".
//
// Note the asymmetry with GuardLeadingDigit, which field names use: type names
// get "_1_Test" while field names get a plain "_" prefix. The two rules are
// intentionally different and must not be unified.
func ToTypeIdentifier(raw string) string {
	name := ToPascalCase(raw)
	if name == "" {
		return name
	}
	if isDigit(rune(name[0])) {
		return "_" + name[:1] + "_" + name[1:]
	}
	return name
}

// GuardLeadingDigit prefixes an identifier with "_" when it would otherwise
// start with a digit. Used for field and variable names.
func GuardLeadingDigit(name string) string {
	if name == "" {
		return name
	}
	if isDigit(rune(name[0])) {
		return "_" + name
	}
	return name
}
