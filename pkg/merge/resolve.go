package merge

import (
	"fmt"
	"os"
	"path/filepath"
)

// Target holds the resolved scan root and output location for one run.
type Target struct {
	Root   string // Absolute directory the scan is anchored under
	Output string // Absolute path of the merged document
}

// Resolve validates the selected scan mode against the filesystem and
// computes the scan root and output path. In all mode the root is baseDir
// itself; in dir mode the root is the named subdirectory beneath baseDir,
// which must exist and be a directory. The output path is always resolved
// relative to baseDir so repeated runs from any working directory hit the
// same file.
func Resolve(baseDir string, all bool, dirName, outputName string) (Target, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return Target{}, fmt.Errorf("failed to resolve base directory %s: %w", baseDir, err)
	}

	root := absBase
	if !all {
		root = filepath.Join(absBase, dirName)
		info, err := os.Stat(root)
		if err != nil {
			return Target{}, fmt.Errorf("directory not found: %s", root)
		}
		if !info.IsDir() {
			return Target{}, fmt.Errorf("not a directory: %s", root)
		}
	}

	if outputName == "" {
		outputName = DefaultOutputName
	}

	return Target{
		Root:   root,
		Output: filepath.Join(absBase, outputName),
	}, nil
}
