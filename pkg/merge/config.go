package merge

// DefaultOutputName is the output filename used when none is given.
const DefaultOutputName = "document.txt"

// Config holds the filtering rules applied during enumeration. Instances
// are treated as immutable once constructed; tests inject their own rather
// than mutating shared state.
type Config struct {
	Extensions  map[string]struct{} // Lowercase file extensions (with leading dot) eligible for inclusion
	BareNames   map[string]struct{} // Exact filenames eligible regardless of extension
	ExcludeDirs map[string]struct{} // Directory names pruned from traversal (matched by name, not path)
}

// Default returns the fixed configuration embedded in the tool. The
// allowlist keeps binary and large build artifacts out of the merged
// document; the exclusion set covers common VCS, dependency, and build
// directories.
func Default() Config {
	return Config{
		Extensions: newSet(
			".c", ".h", ".hpp", ".hh", ".hxx", ".ipp",
			".cpp", ".cc", ".cxx", ".inl", ".ixx",
			".cs", ".java", ".kt",
			".ts", ".tsx", ".js", ".jsx",
			".py", ".rs", ".go", ".swift",
			".m", ".mm", ".lua", ".sh", ".bat", ".ps1",
			".cmake", ".proto", ".sql",
			".yml", ".yaml", ".toml", ".ini", ".cfg", ".conf",
			".txt", ".md", ".json", ".csv",
			".f90", ".f95", ".f03", ".f08", ".for", ".f", ".ftn",
			".asm", ".s",
			".vert", ".frag", ".glsl", ".hlsl", ".metal",
			".make",
		),
		BareNames: newSet("Makefile", "CMakeLists.txt"),
		ExcludeDirs: newSet(
			".git", ".hg", ".svn", ".idea", ".vscode", ".vs",
			"node_modules", "dist", "out", "build", "target", "bin", "obj",
			"__pycache__", ".venv", "venv", ".mypy_cache", ".pytest_cache",
			"DerivedData", "Pods",
		),
	}
}

func newSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
