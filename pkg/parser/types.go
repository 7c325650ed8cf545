// Package parser provides mlox rule file reading and section parsing.
package parser

import (
	"fmt"
	"strings"
)

// HeaderKey is the key of the implicit section that precedes the first
// section header in a rule file.
const HeaderKey = "_header"

// Line is a single line of a rule file.
type Line struct {
	// Text is the raw line content, including its line terminator.
	Text string

	// Num is the 1-based line number in the source file.
	Num int
}

// Section is one version of a named section in a rule file.
type Section struct {
	// Key identifies the section; see SectionKey.
	Key string

	// LineNum is the line number of the section header, or 1 for the
	// implicit header section.
	LineNum int

	// ModName is the trimmed name following the '@' marker.
	ModName string

	// Author is the trimmed bracketed author, empty if none was given.
	Author string

	// Lines holds the raw text of every line in the section, including the
	// header line and any comment lines attached ahead of it.
	Lines []string
}

// Text returns the section's raw lines joined together.
func (s *Section) Text() string {
	return strings.Join(s.Lines, "")
}

// SectionKey formats the key for a section header.
func SectionKey(modName, author string) string {
	return fmt.Sprintf("%s [%s]", modName, author)
}
