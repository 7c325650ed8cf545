// Package rulefile implements the merge and split operations on mlox rule
// files.
package rulefile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ccollicutt/mloxrules/pkg/logging"
	"github.com/ccollicutt/mloxrules/pkg/parser"
)

// Options controls how merged and split files are written.
type Options struct {
	// Terminator is written after each merged file or section version.
	Terminator string

	// Extension is appended to split section file names.
	Extension string
}

func (o Options) withDefaults() Options {
	if o.Terminator == "" {
		o.Terminator = "\n"
	}
	if o.Extension == "" {
		o.Extension = ".txt"
	}
	return o
}

// MergeResult describes a completed merge.
type MergeResult struct {
	// BaseFile is the file that was written.
	BaseFile string

	// Sources lists the merged files in the order they were written.
	Sources []string
}

// Merge expands patterns, sorts the matching files case-insensitively and
// writes their whitespace-trimmed contents into basePath, each followed by
// one terminator. basePath is truncated first. Files are not parsed.
func Merge(ctx context.Context, basePath string, patterns []string, opts Options) (*MergeResult, error) {
	opts = opts.withDefaults()
	logger := logging.GetLogger("merge")
	done := logging.LogOperationStart(logger, "merge")
	defer done()

	logger.Debug().Str("base_file", basePath).Strs("rule_files", patterns).Msg("merging")

	sources, err := parser.ExpandGlobs(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding rule files: %w", err)
	}

	out, err := os.Create(basePath) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("creating base file %s: %w", basePath, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		logger.Info().Str("file", src).Msg("reading rule file")
		text, err := readText(src)
		if err != nil {
			return nil, err
		}

		if _, err := w.WriteString(coalesce([]string{text}) + opts.Terminator); err != nil {
			return nil, fmt.Errorf("writing base file %s: %w", basePath, err)
		}
	}

	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("writing base file %s: %w", basePath, err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing base file %s: %w", basePath, err)
	}

	return &MergeResult{BaseFile: basePath, Sources: sources}, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", fmt.Errorf("reading rule file %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("reading rule file %s: %w", path, parser.ErrInvalidUTF8)
	}
	return string(data), nil
}
