// Package output provides formatting for rule file reports.
package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccollicutt/mloxrules/pkg/analyzer"
)

// Report is the complete report for one rule file.
type Report struct {
	// RuleFile is the path of the examined file, as given by the user.
	RuleFile string `json:"rule_file"`

	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Duplicates lists section keys that appear more than once.
	Duplicates []analyzer.Duplicate `json:"duplicates"`

	// Sections lists every section key in file order. It is nil unless
	// section listing was requested.
	Sections []string `json:"sections,omitempty"`

	// Metadata provides context about the report run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// Empty is true when the file has no header and no sections.
	Empty bool `json:"empty"`

	// HasHeader is true when the file has text before its first section.
	HasHeader bool `json:"has_header"`

	// SectionCount is the number of mod section versions.
	SectionCount int `json:"section_count"`

	// Sorted is true when sections are in case-insensitive order.
	Sorted bool `json:"sorted"`

	// DuplicateCount is the number of keys with more than one version.
	DuplicateCount int `json:"duplicate_count"`
}

// Metadata provides context about the report run.
type Metadata struct {
	// RunID uniquely identifies this report, e.g. for webhook receivers.
	RunID string `json:"run_id"`

	// AnalyzedAt is when the report was produced.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long parsing and analysis took.
	Duration time.Duration `json:"duration_ns"`
}

// NewReport creates a Report from analyzer statistics.
func NewReport(stats *analyzer.Stats, ruleFile string, withSections bool) *Report {
	report := &Report{
		RuleFile:   ruleFile,
		Duplicates: stats.Duplicates,
		Summary: Summary{
			Empty:          stats.IsEmpty(),
			HasHeader:      stats.HasHeader,
			SectionCount:   stats.SectionCount,
			Sorted:         stats.Sorted,
			DuplicateCount: len(stats.Duplicates),
		},
		Metadata: Metadata{
			RunID:      uuid.NewString(),
			AnalyzedAt: time.Now(),
		},
	}

	if report.Duplicates == nil {
		report.Duplicates = []analyzer.Duplicate{}
	}

	if withSections {
		report.Sections = stats.Sections
		if report.Sections == nil {
			report.Sections = []string{}
		}
	}

	return report
}

// HasIssues returns true if sections are unsorted or duplicated.
func (r *Report) HasIssues() bool {
	return !r.Summary.Sorted || r.Summary.DuplicateCount > 0
}
