// Package discover finds candidate log files on disk.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExts are the extensions considered log material.
var DefaultExts = []string{".json", ".log", ".txt"}

// Files recursively collects regular files under root whose extension is in
// exts (case-insensitive; nil means DefaultExts). A missing or non-directory
// root yields an empty list. Results are sorted so batch passes are
// deterministic.
func Files(root string, exts []string) []string {
	if len(exts) == 0 {
		exts = DefaultExts
	}
	allow := make(map[string]bool, len(exts))
	for _, e := range exts {
		allow[strings.ToLower(e)] = true
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it, keep walking.
			return nil
		}
		if d.Type().IsRegular() && allow[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
