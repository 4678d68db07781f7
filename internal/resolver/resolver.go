// Package resolver locates k6 summary files on disk.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoResultsDir is returned when the results directory does not exist.
	ErrNoResultsDir = errors.New("no results directory found")
	// ErrNoSummaryFiles is returned when the results directory holds no summary files.
	ErrNoSummaryFiles = errors.New("no summary files found")
)

// Candidates returns every file in dir whose name ends with suffix, newest first.
// Summary files are timestamp-prefixed, so lexicographic order is chronological.
func Candidates(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoResultsDir, dir)
		}
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		names = append(names, entry.Name())
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSummaryFiles, dir)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}

	return paths, nil
}

// Latest returns the lexicographically greatest summary file in dir.
func Latest(dir, suffix string) (string, error) {
	paths, err := Candidates(dir, suffix)
	if err != nil {
		return "", err
	}

	return paths[0], nil
}
