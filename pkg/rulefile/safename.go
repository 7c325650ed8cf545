package rulefile

import "strings"

// unnamedFile is used when a section key has no safe characters at all.
const unnamedFile = "_unnamed"

// SafeFilename keeps only ASCII letters, digits, '.' and '-' from name.
func SafeFilename(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '.', c == '-':
			b.WriteRune(c)
		}
	}
	return b.String()
}

// coalesce joins lines and trims surrounding whitespace.
func coalesce(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, ""))
}
