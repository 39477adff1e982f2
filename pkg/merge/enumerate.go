package merge

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Enumerate walks the directory tree under root and returns the files that
// pass the allowlist and exclusion rules, sorted case-insensitively by
// full path. Directories whose name is in cfg.ExcludeDirs are pruned
// entirely; the root itself is exempt from that check even if its own name
// matches. An empty result is valid and not an error.
func Enumerate(root string, cfg Config, logger *zap.Logger) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil // Skip paths that cause errors
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, excluded := cfg.ExcludeDirs[d.Name()]; excluded {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !allowed(d.Name(), cfg) {
			return nil
		}

		files = append(files, path)
		logger.Debug("Added file to merge list", zap.String("filePath", path))
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return nil, err
	}

	sortEntries(files)
	logger.Debug("Completed file enumeration", zap.Int("fileCount", len(files)))
	return files, nil
}

// allowed reports whether a filename passes the allowlist: an exact
// bare-name match or a case-insensitive extension match.
func allowed(name string, cfg Config) bool {
	if _, ok := cfg.BareNames[name]; ok {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := cfg.Extensions[ext]
	return ok
}

// sortEntries orders paths case-insensitively, ascending. Paths that are
// equal under case folding fall back to the raw comparison so the ordering
// is a total order and runs are byte-for-byte reproducible.
func sortEntries(files []string) {
	sort.Slice(files, func(i, j int) bool {
		li, lj := strings.ToLower(files[i]), strings.ToLower(files[j])
		if li != lj {
			return li < lj
		}
		return files[i] < files[j]
	})
}
