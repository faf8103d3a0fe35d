package project

import (
	"os"
	"path/filepath"
	"strings"
)

// ModuleName computes a source file's module-qualified name: its path
// relative to root, with the .sn extension stripped and path
// separators preserved (spec 6.2), e.g. root "src", file
// "src/foo/bar.sn" => "foo/bar". This replaces the original
// implementation's pathToNamespace, which instead produced a single
// mangled identifier like "sn_project_foo_bar" — spec 6.2 defines a
// simpler, separator-preserving rule and that is what this
// implements.
func ModuleName(root, file string) string {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		rel = file
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, ".sn")
}

// FindRoot walks up from the directory containing entryFile looking
// for a config.snc, returning the first ancestor directory that has
// one. If none is found, the entry file's own directory is the root
// (spec 6.2: "Project root is the directory of the main source file
// passed on the command line, or... any ancestor directory containing
// it").
func FindRoot(entryFile string) string {
	dir, err := filepath.Abs(filepath.Dir(entryFile))
	if err != nil {
		dir = filepath.Dir(entryFile)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "config.snc")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Dir(entryFile)
}
