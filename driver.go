package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

type runOptions struct {
	Overwrite    bool
	CRLF         bool
	ITunes       bool
	AbortOnError bool
}

type runSummary struct {
	Expected    int
	Processed   int
	Unsupported int
	Failures    []string
	ByExt       map[string]int
}

func newRunSummary() *runSummary {
	return &runSummary{ByExt: make(map[string]int)}
}

func (s *runSummary) Skipped() int {
	return s.Expected - s.Processed - s.Unsupported - len(s.Failures)
}

func extKey(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "(none)"
	}
	return strings.TrimPrefix(ext, ".")
}

func formatable(key string) bool {
	return hasExt("."+key, audioExts()) || hasExt("."+key, lyricExts)
}

func (s *runSummary) render(w io.Writer) {
	keys := make([]string, 0, len(s.ByExt))
	for key := range s.ByExt {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Extension", "Files", "Formatable"})
	for _, key := range keys {
		mark := "yes"
		if !formatable(key) {
			mark = "no"
		}
		table.Append([]string{key, fmt.Sprint(s.ByExt[key]), mark})
	}
	table.Render()

	fmt.Fprintf(w, "Fixed %d of %d files, %d not formatable, %d skipped, %d failed\n",
		s.Processed, s.Expected, s.Unsupported, s.Skipped(), len(s.Failures))
	for _, failure := range s.Failures {
		fmt.Fprintf(w, "  failed: %s\n", failure)
	}
}

// fixLyricFile normalizes a lyric file in place. Timestamps are always kept
// here, whatever the import policy says: stripping them from a standalone
// .lrc would destroy its only copy of the timing.
func fixLyricFile(rep *reporter, path string, opts runOptions) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %v", path, err)
	}
	fixed := fixLyric(string(content), fixOptions{CRLF: opts.CRLF})
	if err := writeFileAtomic(path, []byte(fixed)); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	rep.Successf("fixed %s", path)
	return nil
}

// applyTree walks root and processes every file: audio files get an export
// and an import attempt (independently, either one counts the file as
// processed), lyric files are normalized in place, everything else is
// tallied as unsupported. Per-file failures are logged and the walk
// continues unless AbortOnError is set.
func applyTree(rep *reporter, root string, opts runOptions) (*runSummary, error) {
	summary := newRunSummary()

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		summary.Expected++
		summary.ByExt[extKey(path)]++

		fail := func(ferr error) error {
			summary.Failures = append(summary.Failures, path)
			rep.Errorf("failed to process %s: %v", path, ferr)
			if opts.AbortOnError {
				return ferr
			}
			return nil
		}

		switch {
		case hasExt(path, audioExts()):
			rep.Infof("processing %s", path)
			exported, expErr := exportLyrics(rep, path, opts)
			imported, impErr := importLyrics(rep, path, opts)
			if expErr != nil {
				return fail(expErr)
			}
			if impErr != nil {
				return fail(impErr)
			}
			if exported || imported {
				summary.Processed++
			}
		case hasExt(path, lyricExts):
			rep.Infof("processing %s", path)
			if ferr := fixLyricFile(rep, path, opts); ferr != nil {
				return fail(ferr)
			}
			summary.Processed++
		default:
			rep.Infof("skipped %s (not a supported file format)", path)
			summary.Unsupported++
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	return summary, nil
}

// scanTree is the dry-run pass: it walks root and tallies what applyTree
// would touch, writing nothing.
func scanTree(rep *reporter, root string) (*runSummary, error) {
	summary := newRunSummary()

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		summary.Expected++
		summary.ByExt[extKey(path)]++

		switch {
		case hasExt(path, audioExts()):
			rep.Infof("would export/import %s", path)
			summary.Processed++
		case hasExt(path, lyricExts):
			rep.Infof("would fix %s", path)
			summary.Processed++
		default:
			summary.Unsupported++
		}
		return nil
	})
	return summary, err
}
