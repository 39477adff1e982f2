package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// writeFile creates a file (and any parent directories) under root.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// relPaths converts absolute results back to slash-separated paths
// relative to root for easy assertions.
func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	rels := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestEnumerateCollectsAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/b.txt", "b")
	writeFile(t, root, "a.py", "a")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "sub/b.txt"}, relPaths(t, root, files))
}

func TestEnumerateSkipsExcludedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "node_modules/x.js", "excluded")
	writeFile(t, root, "src/.git/config.txt", "excluded")
	writeFile(t, root, "src/keep.js", "kept")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"src/keep.js"}, relPaths(t, root, files))
}

func TestEnumerateRootExemptFromExclusion(t *testing.T) {
	// A root whose own name matches an excluded directory is still scanned;
	// only strict descendants are pruned.
	base := t.TempDir()
	root := filepath.Join(base, "build")
	writeFile(t, root, "main.go", "package main")
	writeFile(t, root, "build/generated.go", "excluded")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, relPaths(t, root, files))
}

func TestEnumerateExcludedNameAnywhereBelowRoot(t *testing.T) {
	// Exclusion matches directory names, not paths, so an excluded name
	// deep in an unrelated branch still prunes that branch.
	root := t.TempDir()
	writeFile(t, root, "a/b/venv/deep.py", "excluded")
	writeFile(t, root, "a/b/c.py", "kept")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b/c.py"}, relPaths(t, root, files))
}

func TestEnumerateAllowlist(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "img.png", "\x89PNG")
	writeFile(t, root, "Makefile", "all:")
	writeFile(t, root, "CMakeLists.txt", "project(x)")
	writeFile(t, root, "README.MD", "case-insensitive extension")
	writeFile(t, root, "noext", "skipped")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"CMakeLists.txt", "Makefile", "README.MD"}, relPaths(t, root, files))
}

func TestEnumerateCaseInsensitiveOrdering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Beta.go", "b")
	writeFile(t, root, "alpha.go", "a")
	writeFile(t, root, "Gamma/one.go", "g")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.go", "Beta.go", "Gamma/one.go"}, relPaths(t, root, files))
}

func TestEnumerateDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "z.go", "z")
	writeFile(t, root, "sub/a.go", "a")
	writeFile(t, root, "M.go", "m")

	first, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	second, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnumerateEmptyResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "binary.bin", "data")

	files, err := Enumerate(root, Default(), zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestEnumerateInjectedConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes.custom", "kept")
	writeFile(t, root, "code.go", "skipped under this config")
	writeFile(t, root, "skipme/other.custom", "excluded")

	cfg := Config{
		Extensions:  newSet(".custom"),
		BareNames:   newSet(),
		ExcludeDirs: newSet("skipme"),
	}
	files, err := Enumerate(root, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.custom"}, relPaths(t, root, files))
}
