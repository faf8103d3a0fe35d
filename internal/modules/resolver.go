// Package modules implements spec 4.3.2's three-tier module
// resolution (local, project, external) and the directory-as-
// namespace rule. It adapts nooga-paserati's pkg/modules
// ModuleFS/FileSystemResolver shapes (interfaces.go, resolver_fs.go)
// to this front end's much narrower needs: a single synchronous
// resolver, no worker pool, no parse queue, no cache TTL, because
// spec 5 mandates a fully synchronous single-threaded pipeline.
package modules

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ModuleFS is the filesystem surface module resolution needs: read a
// file's bytes, or list a directory's immediate children. Narrowed
// from paserati's ModuleFS (fs.FS + fs.ReadFileFS) by dropping
// Glob/Sub and the writable variant — module loading here never
// writes (spec 5: "read-only for source files... read-only for
// external library paths").
type ModuleFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// osFS implements ModuleFS directly against the OS filesystem,
// mirroring paserati's osFS without its Glob/Sub machinery.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error)          { return os.Open(name) }
func (osFS) ReadFile(name string) ([]byte, error)        { return os.ReadFile(name) }
func (osFS) ReadDir(name string) ([]fs.DirEntry, error)  { return os.ReadDir(name) }

// Candidate is one module resolution hit: either a single source file
// or a directory that becomes a synthetic namespace (spec 4.3.2 point
// 4: "A directory candidate becomes a synthetic namespace whose
// children are one sub-namespace per .sn file and one nested
// namespace per sub-directory").
type Candidate struct {
	Path  string // filesystem path, absolute or relative to the working directory
	IsDir bool
}

// Resolver implements spec 4.3.2's search order for `import A::B::C`:
// local sibling of the importing file, then each ancestor project
// directory, then the external library root.
type Resolver struct {
	fsys         ModuleFS
	externalRoot string
}

// NewResolver creates a Resolver reading from the OS filesystem, with
// its external tier pointing at the platform's sonic_lib (spec
// 4.3.2.b).
func NewResolver() *Resolver {
	return &Resolver{fsys: osFS{}, externalRoot: defaultExternalRoot()}
}

func defaultExternalRoot() string {
	if runtime.GOOS == "windows" {
		if pf := os.Getenv("ProgramFiles"); pf != "" {
			return filepath.Join(pf, "sonic_lib")
		}
		return filepath.Join(`C:\Program Files`, "sonic_lib")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "lib", "sonic_lib")
}

// Resolve searches for qualified (the `::`-joined import path, e.g.
// "A/B/C" after concatenation with "/" per spec 4.3.2 point 1)
// starting from fromFile, the absolute path of the importing source
// file. It returns the first candidate that exists as either
// "<path>.sn" or a directory.
func (r *Resolver) Resolve(qualified string, fromFile string) (*Candidate, error) {
	for _, base := range r.searchDirs(fromFile) {
		candidatePath := filepath.Join(base, filepath.FromSlash(qualified))
		if c := r.tryCandidate(candidatePath); c != nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("module %q not found (searched local, project ancestors, and %s)", qualified, r.externalRoot)
}

// searchDirs enumerates the tiers in priority order: local sibling,
// every ancestor directory up to the filesystem root, then external.
func (r *Resolver) searchDirs(fromFile string) []string {
	fromDir := filepath.Dir(fromFile)
	dirs := []string{fromDir}

	for dir := fromDir; ; {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dirs = append(dirs, parent)
		dir = parent
	}

	dirs = append(dirs, r.externalRoot)
	return dirs
}

func (r *Resolver) tryCandidate(path string) *Candidate {
	if info, err := os.Stat(path + ".sn"); err == nil && !info.IsDir() {
		return &Candidate{Path: path + ".sn"}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &Candidate{Path: path, IsDir: true}
	}
	return nil
}

// ReadSource reads a file candidate's bytes through the resolver's
// ModuleFS.
func (r *Resolver) ReadSource(c *Candidate) ([]byte, error) {
	return r.fsys.ReadFile(c.Path)
}

// DirEntries lists the immediate children of a directory candidate.
func (r *Resolver) DirEntries(c *Candidate) ([]fs.DirEntry, error) {
	return r.fsys.ReadDir(c.Path)
}
