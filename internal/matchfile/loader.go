package matchfile

import (
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

// LoadDir scans a matches directory and parses every workbook in it. Files
// that fail either stage land in the rejected list with their reason; one
// bad file never hides the rest. The directory is rescanned on every call
// because workbooks may be dropped in or edited externally between requests.
func LoadDir(dir string) ([]*Match, []RejectedFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(paths)

	var matches []*Match
	var rejected []RejectedFile

	for _, path := range paths {
		match, err := Parse(path)
		if err != nil {
			log.Debug("Rejected match file", "file", filepath.Base(path), "error", err)
			rejected = append(rejected, Reject(path, err))
			continue
		}
		matches = append(matches, match)
	}

	return matches, rejected, nil
}
