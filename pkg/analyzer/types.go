// Package analyzer computes statistics about parsed mlox rule files.
package analyzer

// Stats summarizes a parsed rule file. The implicit header section is not
// counted as a mod section.
type Stats struct {
	// HasHeader is true when the text before the first section header is
	// not empty.
	HasHeader bool

	// SectionCount is the number of section versions, duplicates included.
	SectionCount int

	// Sorted is true when the section keys, in file order and with
	// duplicates counted individually, are sorted case-insensitively.
	Sorted bool

	// Duplicates lists keys with more than one version, in first-seen order.
	Duplicates []Duplicate

	// Sections is the key of every section version in file order.
	Sections []string
}

// Duplicate is a section key that appears more than once.
type Duplicate struct {
	// Key is the repeated section key.
	Key string `json:"key"`

	// LineNums are the header line numbers of each version.
	LineNums []int `json:"line_nums"`
}

// IsEmpty returns true if the file has neither a header nor any sections.
func (s *Stats) IsEmpty() bool {
	return !s.HasHeader && s.SectionCount == 0
}

// HasIssues returns true if the sections are unsorted or duplicated.
func (s *Stats) HasIssues() bool {
	return !s.Sorted || len(s.Duplicates) > 0
}
