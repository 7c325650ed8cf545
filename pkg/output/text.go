package output

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text. An empty file gets a single line and
// nothing else.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Summary.Empty {
		_, err := fmt.Fprintf(w, "%s is empty.\n", report.RuleFile)
		return err
	}
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %s, %d duplicate(s), sorted: %s\n",
		report.RuleFile,
		pluralSections(report.Summary.SectionCount),
		report.Summary.DuplicateCount,
		yesNo(report.Summary.Sorted))
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Header Present: %s\n", yesNo(report.Summary.HasHeader))
	fmt.Fprintf(&b, "%s\n", pluralSections(report.Summary.SectionCount))
	fmt.Fprintf(&b, "Sections Sorted: %s\n", yesNo(report.Summary.Sorted))

	fmt.Fprintf(&b, "Duplicate Sections: %d\n", report.Summary.DuplicateCount)
	for _, dup := range report.Duplicates {
		lines := make([]string, len(dup.LineNums))
		for i, n := range dup.LineNums {
			lines[i] = strconv.Itoa(n)
		}
		fmt.Fprintf(&b, "  %s (lines %s)\n", dup.Key, strings.Join(lines, ", "))
	}

	if report.Sections != nil {
		fmt.Fprintln(&b, "Sections:")
		for _, key := range report.Sections {
			fmt.Fprintf(&b, "  %s\n", key)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func pluralSections(n int) string {
	if n == 1 {
		return "1 Mod Section"
	}
	return fmt.Sprintf("%d Mod Sections", n)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
