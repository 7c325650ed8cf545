package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/mloxrules/pkg/analyzer"
)

func exampleStats() *analyzer.Stats {
	return &analyzer.Stats{
		HasHeader:    true,
		SectionCount: 6,
		Sorted:       false,
		Duplicates: []analyzer.Duplicate{
			{Key: "mod2 [author2]", LineNums: []int{10, 29}},
			{Key: "abc_mod [author1]", LineNums: []int{18, 49}},
		},
		Sections: []string{
			"mod2 [author2]",
			"abc_mod [author1]",
			"mod2 [author2]",
			"unique_mod [author3]",
			"abc_mod [author1]",
			"mod2 [otherauthor]",
		},
	}
}

func format(t *testing.T, name string, opts FormatOptions, report *Report) string {
	t.Helper()
	f, err := NewFormatter(name, opts)
	require.NoError(t, err)
	assert.Equal(t, name, f.Name())

	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), report, &buf))
	return buf.String()
}

func TestNewFormatter_Unknown(t *testing.T) {
	_, err := NewFormatter("xml", FormatOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestNewReport(t *testing.T) {
	report := NewReport(exampleStats(), "rules.txt", false)

	assert.Equal(t, "rules.txt", report.RuleFile)
	assert.Equal(t, Summary{
		HasHeader:      true,
		SectionCount:   6,
		DuplicateCount: 2,
	}, report.Summary)
	assert.Nil(t, report.Sections)
	assert.NotEmpty(t, report.Metadata.RunID)
	assert.False(t, report.Metadata.AnalyzedAt.IsZero())
	assert.True(t, report.HasIssues())
}

func TestNewReport_EmptyWithSections(t *testing.T) {
	report := NewReport(&analyzer.Stats{Sorted: true}, "empty.txt", true)

	assert.True(t, report.Summary.Empty)
	assert.NotNil(t, report.Sections)
	assert.Empty(t, report.Sections)
	assert.NotNil(t, report.Duplicates)
	assert.False(t, report.HasIssues())
}

func TestTextFormatter_Full(t *testing.T) {
	got := format(t, "text", FormatOptions{}, NewReport(exampleStats(), "rules.txt", false))

	want := "Header Present: Yes\n" +
		"6 Mod Sections\n" +
		"Sections Sorted: No\n" +
		"Duplicate Sections: 2\n" +
		"  mod2 [author2] (lines 10, 29)\n" +
		"  abc_mod [author1] (lines 18, 49)\n"
	assert.Equal(t, want, got)
}

func TestTextFormatter_WithSections(t *testing.T) {
	got := format(t, "text", FormatOptions{}, NewReport(exampleStats(), "rules.txt", true))

	assert.Contains(t, got, "Duplicate Sections: 2\n")
	assert.Contains(t, got, "Sections:\n"+
		"  mod2 [author2]\n"+
		"  abc_mod [author1]\n"+
		"  mod2 [author2]\n"+
		"  unique_mod [author3]\n"+
		"  abc_mod [author1]\n"+
		"  mod2 [otherauthor]\n")
}

func TestTextFormatter_SingleSection(t *testing.T) {
	stats := &analyzer.Stats{SectionCount: 1, Sorted: true, Sections: []string{"a [b]"}}
	got := format(t, "text", FormatOptions{}, NewReport(stats, "one.txt", false))

	assert.Equal(t, "Header Present: No\n1 Mod Section\nSections Sorted: Yes\nDuplicate Sections: 0\n", got)
}

func TestTextFormatter_Empty(t *testing.T) {
	report := NewReport(&analyzer.Stats{Sorted: true}, "some/dir/empty.txt", true)

	assert.Equal(t, "some/dir/empty.txt is empty.\n", format(t, "text", FormatOptions{}, report))
	assert.Equal(t, "some/dir/empty.txt is empty.\n", format(t, "text", FormatOptions{Quiet: true}, report))
}

func TestTextFormatter_Quiet(t *testing.T) {
	got := format(t, "text", FormatOptions{Quiet: true}, NewReport(exampleStats(), "rules.txt", true))

	assert.Equal(t, "rules.txt: 6 Mod Sections, 2 duplicate(s), sorted: No\n", got)
}

func TestJSONFormatter_Full(t *testing.T) {
	got := format(t, "json", FormatOptions{}, NewReport(exampleStats(), "rules.txt", true))

	var parsed Report
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, "rules.txt", parsed.RuleFile)
	assert.Equal(t, 6, parsed.Summary.SectionCount)
	assert.Equal(t, 2, parsed.Summary.DuplicateCount)
	assert.Equal(t, exampleStats().Duplicates, parsed.Duplicates)
	assert.Len(t, parsed.Sections, 6)
	assert.NotEmpty(t, parsed.Metadata.RunID)

	assert.Contains(t, got, `"rule_file": "rules.txt"`)
	assert.Contains(t, got, `"line_nums": [`)
}

func TestJSONFormatter_Quiet(t *testing.T) {
	got := format(t, "json", FormatOptions{Quiet: true}, NewReport(exampleStats(), "rules.txt", false))

	var parsed Summary
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, 6, parsed.SectionCount)
	assert.True(t, parsed.HasHeader)
	assert.NotContains(t, got, "run_id")
}

func TestJSONFormatter_OmitsSectionsUnlessRequested(t *testing.T) {
	got := format(t, "json", FormatOptions{}, NewReport(exampleStats(), "rules.txt", false))
	assert.NotContains(t, got, `"sections"`)
}
