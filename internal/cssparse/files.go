package cssparse

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"
	ignore "github.com/sabhiram/go-gitignore"
)

// FileStats tracks file discovery statistics
type FileStats struct {
	FilesDiscovered int // Total files matched by the patterns
	FilesSelected   int // Files kept after filtering
	FilesSkipped    int // Files dropped by .gitignore
}

// loadGitIgnore compiles .gitignore from the current directory.
// A missing file is not an error: nothing is ignored.
func loadGitIgnore() *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a matched file is ignored. Only relative
// paths are checked; absolute paths are outside the project's .gitignore.
func shouldSkipFile(gi *ignore.GitIgnore, path string) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(path)
}

// ExpandGlobs expands doublestar patterns to a deduplicated list of files in
// natural order ("h2.css" before "h10.css"). Patterns without wildcards
// match themselves when the file exists.
func ExpandGlobs(patterns []string) ([]string, FileStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := FileStats{}
	gi := loadGitIgnore()

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(gi, match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesSelected++
		}
	}

	sort.Sort(natural.StringSlice(files))
	return files, stats, nil
}
