package fs

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// partialSuffixes mark downloads that have not finished.
var partialSuffixes = []string{".part", ".tmp", ".crdownload"}

// IsPage reports whether name looks like a complete saved HTML page.
func IsPage(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	lower := strings.ToLower(name)
	for _, s := range partialSuffixes {
		if strings.HasSuffix(lower, s) {
			return false
		}
	}
	ext := filepath.Ext(lower)
	return ext == ".html" || ext == ".htm"
}

// Scan returns the paths of the saved pages directly inside dir, sorted by
// name. Subdirectories are not descended into.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsPage(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}
