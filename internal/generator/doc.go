package generator

import (
	"strings"

	"github.com/JPGoodale/melior/internal/schema"
)

// comment renders lines into a // comment block. Empty lines become bare
// "//" separators so no trailing whitespace ever reaches the output.
func comment(lines ...string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = "//"
		} else {
			out[i] = "// " + l
		}
	}
	return strings.Join(out, "\n")
}

// descriptionLines splits free-form descriptor documentation into comment
// lines, dropping blank edges.
func descriptionLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(text), "\n") {
		lines = append(lines, strings.TrimRight(l, " \t"))
	}
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// fieldDoc renders a mechanical doc line followed by the field's descriptor
// documentation, when it has any.
func fieldDoc(mech string, f schema.Field) string {
	lines := append([]string{mech}, descriptionLines(f.Doc)...)
	return comment(lines...)
}

// joinNatural joins names for prose: "a", "a and b", "a, b and c".
func joinNatural(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
