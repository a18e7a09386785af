package cli

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/toyz/apiscan/internal/errors"
)

// DirectoryScanner finds candidate Java source files under a repository root
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// skipDirs are directories that never contain scannable source code
var skipDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"target":       true,
	"build":        true,
	"dist":         true,
	"out":          true,
}

// ScanRepository walks the repository tree and returns every .java file path
// in walk order. An unreadable root is an error; unreadable subtrees are
// skipped so one bad directory does not abort the run.
func (s *DirectoryScanner) ScanRepository(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return fs.SkipDir
		}

		if entry.IsDir() {
			name := entry.Name()
			if skipDirs[name] || (strings.HasPrefix(name, ".") && path != root) {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(entry.Name(), ".java") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", root, err)
	}

	return files, nil
}
