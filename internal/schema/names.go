package schema

import (
	"go/token"
	"strings"
	"unicode"
)

// ExportedName converts a snake_case descriptor name into the exported Go
// identifier used for generated types and methods, e.g. "true_dest" becomes
// "TrueDest" and "addi" becomes "Addi".
func ExportedName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '_' || r == '.' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParamName converts a descriptor name into an unexported parameter name.
// Go keywords get a trailing underscore, the same dodge ODS-generated
// bindings use for reserved words.
func ParamName(name string) string {
	s := ExportedName(name)
	if s == "" {
		return s
	}
	s = strings.ToLower(s[:1]) + s[1:]
	if token.IsKeyword(s) {
		return s + "_"
	}
	return s
}
