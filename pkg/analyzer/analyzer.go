package analyzer

import (
	"context"
	"slices"

	"github.com/ccollicutt/mloxrules/pkg/logging"
	"github.com/ccollicutt/mloxrules/pkg/parser"
)

// Analyze computes statistics for a parsed rule file.
func Analyze(result *parser.Result) *Stats {
	stats := &Stats{}

	for _, h := range result.Header() {
		if h.Text() != "" {
			stats.HasHeader = true
			break
		}
	}

	mods := result.Without(parser.HeaderKey)
	for _, key := range mods.Keys() {
		versions := mods.Sections(key)
		if len(versions) > 1 {
			dup := Duplicate{Key: key}
			for _, v := range versions {
				dup.LineNums = append(dup.LineNums, v.LineNum)
			}
			stats.Duplicates = append(stats.Duplicates, dup)
		}
	}

	for _, s := range mods.InFileOrder() {
		stats.Sections = append(stats.Sections, s.Key)
	}
	stats.SectionCount = len(stats.Sections)
	stats.Sorted = isSortedFold(stats.Sections)

	return stats
}

// AnalyzeFile parses the rule file at path and analyzes it.
func AnalyzeFile(ctx context.Context, path string) (*Stats, error) {
	logger := logging.GetLogger("analyzer")
	done := logging.LogOperationStart(logger, "analyze")
	defer done()

	result, err := parser.ParseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	stats := Analyze(result)
	logger.Debug().
		Str("rule_file", path).
		Int("sections", stats.SectionCount).
		Int("duplicates", len(stats.Duplicates)).
		Msg("analyzed rule file")
	return stats, nil
}

// isSortedFold reports whether keys equals its own case-insensitive stable sort.
func isSortedFold(keys []string) bool {
	sorted := slices.Clone(keys)
	parser.SortFold(sorted)
	return slices.Equal(keys, sorted)
}
