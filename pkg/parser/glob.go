package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ccollicutt/mloxrules/pkg/logging"
)

// ExpandGlobs expands file paths and glob patterns into the list of matching
// files, sorted case-insensitively. Patterns that match nothing contribute
// nothing. Duplicates are kept, so a file named twice is listed twice.
func ExpandGlobs(patterns []string) ([]string, error) {
	logger := logging.GetLogger("glob")

	var result []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			logger.Warn().Str("pattern", pattern).Msg("pattern matched no files")
			continue
		}

		result = append(result, matches...)
	}

	SortFold(result)
	return result, nil
}

// SortFold sorts names case-insensitively, keeping the relative order of
// names that differ only in case.
func SortFold(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}
