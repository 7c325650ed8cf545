package parser

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// sectionHeaderPattern matches "; @mod name [author]". The author group
	// is optional.
	sectionHeaderPattern = regexp.MustCompile(`^\s*;+\s*@(.*?)\s*(?:\[(.*)\])?\s*$`)

	// commentPattern matches lines made only of ';' characters and whitespace.
	commentPattern = regexp.MustCompile(`^\s*;+\s*$`)
)

// MatchSectionHeader reports whether line is a section header and, if so,
// returns its trimmed mod name and author.
func MatchSectionHeader(line string) (modName, author string, ok bool) {
	m := sectionHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// IsComment reports whether line is a bare comment line. Section headers are
// not comments.
func IsComment(line string) bool {
	if sectionHeaderPattern.MatchString(line) {
		return false
	}
	return commentPattern.MatchString(line)
}

// Parse splits lines into the implicit header section and the named sections
// that follow it. It never fails: lines that are neither headers nor comments
// are ordinary content.
//
// Comment lines are held back until the next line is seen. A run of comments
// directly before a section header belongs to that header's section; any
// other run belongs to the section already open.
func Parse(lines []Line) *Result {
	result := NewResult()
	current := &Section{Key: HeaderKey, LineNum: 1, ModName: HeaderKey}
	var pending []string

	for _, line := range lines {
		if modName, author, ok := MatchSectionHeader(line.Text); ok {
			result.Add(current)
			current = &Section{
				Key:     SectionKey(modName, author),
				LineNum: line.Num,
				ModName: modName,
				Author:  author,
				Lines:   append(pending, line.Text),
			}
			pending = nil
			continue
		}

		if commentPattern.MatchString(line.Text) {
			pending = append(pending, line.Text)
			continue
		}

		current.Lines = append(current.Lines, pending...)
		pending = nil
		current.Lines = append(current.Lines, line.Text)
	}

	current.Lines = append(current.Lines, pending...)
	result.Add(current)
	return result
}

func sortByLine(sections []*Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].LineNum < sections[j].LineNum
	})
}
