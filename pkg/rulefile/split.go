package rulefile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccollicutt/mloxrules/pkg/logging"
	"github.com/ccollicutt/mloxrules/pkg/parser"
)

// ErrOutputDirNotFound is returned by Split when the output directory does
// not exist. Nothing is read or written in that case.
var ErrOutputDirNotFound = errors.New("output directory does not exist")

// SplitFile is one file written by Split.
type SplitFile struct {
	// Path is the written file.
	Path string

	// Keys lists the section keys stored in the file. More than one key
	// means distinct keys reduced to the same safe name.
	Keys []string

	// Versions is the number of section versions written.
	Versions int
}

// SplitResult describes a completed split.
type SplitResult struct {
	RuleFile  string
	Directory string
	Files     []SplitFile
}

// Split parses the rule file at path and writes every section key to its own
// file in dir, named after the key's safe form. Each version's trimmed text
// is written followed by one terminator, in file order. An empty dir means
// the directory of the rule file after symlinks are resolved.
func Split(ctx context.Context, path, dir string, opts Options) (*SplitResult, error) {
	opts = opts.withDefaults()
	logger := logging.GetLogger("split")
	done := logging.LogOperationStart(logger, "split")
	defer done()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving rule file %s: %w", path, err)
	}
	// the default directory is the one holding the real file, not a link to it
	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, fmt.Errorf("resolving rule file %s: %w", path, err)
	}
	if dir == "" {
		dir = filepath.Dir(absPath)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrOutputDirNotFound, dir)
		}
		return nil, fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output path %s is not a directory", dir)
	}

	logger.Debug().Str("rule_file", absPath).Str("directory", dir).Msg("splitting")

	result, err := parser.ParseFile(ctx, absPath)
	if err != nil {
		return nil, err
	}

	out := &SplitResult{RuleFile: absPath, Directory: dir}
	for _, group := range groupByFilename(result, opts.Extension) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(group.keys) > 1 {
			logger.Warn().
				Str("file", group.name).
				Strs("keys", group.keys).
				Msg("section keys share a file name, writing them to one file")
		}

		target := filepath.Join(dir, group.name)
		if err := writeSections(target, group.sections, opts.Terminator); err != nil {
			return nil, err
		}
		for i, s := range group.sections {
			logger.Info().Str("section", s.Key).Int("version", i).Str("file", target).Msg("saved section")
		}

		out.Files = append(out.Files, SplitFile{
			Path:     target,
			Keys:     group.keys,
			Versions: len(group.sections),
		})
	}

	return out, nil
}

type fileGroup struct {
	name     string
	keys     []string
	sections []*parser.Section
}

// groupByFilename collects the sections of each key under its file name,
// keeping first-seen order of both names and keys.
func groupByFilename(result *parser.Result, ext string) []*fileGroup {
	var groups []*fileGroup
	byName := make(map[string]*fileGroup)

	for _, key := range result.Keys() {
		name := SectionFilename(key, ext)
		g, ok := byName[name]
		if !ok {
			g = &fileGroup{name: name}
			byName[name] = g
			groups = append(groups, g)
		}
		g.keys = append(g.keys, key)
		g.sections = append(g.sections, result.Sections(key)...)
	}

	return groups
}

// SectionFilename returns the file name Split uses for a section key. The
// header section keeps its reserved name.
func SectionFilename(key, ext string) string {
	if key == parser.HeaderKey {
		return key + ext
	}
	name := SafeFilename(key)
	if name == "" {
		name = unnamedFile
	}
	return name + ext
}

func writeSections(path string, sections []*parser.Section, terminator string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is built from the target directory
	if err != nil {
		return fmt.Errorf("creating section file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, s := range sections {
		if _, err := w.WriteString(coalesce(s.Lines) + terminator); err != nil {
			return fmt.Errorf("writing section file %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing section file %s: %w", path, err)
	}
	return f.Close()
}
