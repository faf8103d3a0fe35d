package modules

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveLocalSibling(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "utils.sn"), "public func add(a: i64, b: i64) -> i64 { return a + b; }")
	mainFile := filepath.Join(root, "main.sn")
	writeFile(t, mainFile, "import utils use { * };")

	r := NewResolver()
	c, err := r.Resolve("utils", mainFile)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if c.IsDir {
		t.Fatalf("expected a file candidate, got directory")
	}
	src, err := r.ReadSource(c)
	if err != nil {
		t.Fatalf("ReadSource() error = %v", err)
	}
	if string(src) == "" {
		t.Fatalf("expected non-empty source")
	}
}

func TestResolveProjectAncestor(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "shapes.sn"), "public struct Point { x: i32; y: i32; }")
	srcDir := filepath.Join(root, "src", "nested", "deep")
	mainFile := filepath.Join(srcDir, "main.sn")
	writeFile(t, mainFile, "import lib::shapes use { Point };")

	r := NewResolver()
	c, err := r.Resolve("lib/shapes", mainFile)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if c.IsDir {
		t.Fatalf("expected a file candidate")
	}
}

func TestResolveDirectoryCandidate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "pkg", "a.sn"), "public func a() -> void {}")
	writeFile(t, filepath.Join(root, "pkg", "b.sn"), "public func b() -> void {}")
	mainFile := filepath.Join(root, "main.sn")
	writeFile(t, mainFile, "import pkg use { * };")

	r := NewResolver()
	c, err := r.Resolve("pkg", mainFile)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !c.IsDir {
		t.Fatalf("expected a directory candidate")
	}

	entries, err := r.DirEntries(c)
	if err != nil {
		t.Fatalf("DirEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("DirEntries() = %d entries, want 2", len(entries))
	}
}

func TestResolveNotFound(t *testing.T) {
	root := t.TempDir()
	mainFile := filepath.Join(root, "main.sn")
	writeFile(t, mainFile, "import nope use { * };")

	r := NewResolver()
	r.externalRoot = filepath.Join(root, "nonexistent-external-root")
	if _, err := r.Resolve("nope", mainFile); err == nil {
		t.Fatalf("expected an error for an unresolvable module")
	}
}
