package sema

import (
	"path/filepath"
	"strings"

	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/modules"
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

// resolveImport resolves one `import A::B::C use { ... };` statement:
// locate the target module or directory, analyze it if not already
// loaded, then declare an Alias in scope for each requested item
// (spec 4.3.2, and the Import row of 4.3.3).
func (a *Analyzer) resolveImport(stmt *syntax.ImportStmt, scope *types.Symbol, mc *moduleContext) {
	parts := make([]string, len(stmt.Qualified))
	for i, f := range stmt.Qualified {
		parts[i] = f.Name
	}
	qualified := strings.Join(parts, "/")

	c, err := a.Resolver.Resolve(qualified, mc.file)
	if err != nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, stmt.Pos(), "%v", err)
		return
	}

	var target *types.Symbol
	if c.IsDir {
		target = a.loadDirectory(c, a.Universe)
	} else {
		src, err := a.Resolver.ReadSource(c)
		if err != nil {
			a.Diag.Reportf(diag.Semantic, diag.Error, stmt.Pos(), "reading module %q: %v", qualified, err)
			return
		}
		a.Diag.AddSource(c.Path, src)
		prog := a.parseSource(c.Path, src)
		prog.ModuleName = moduleBaseName(c.Path)
		target = a.analyzeModule(prog, c.Path, a.Universe)
	}

	requested := stmt.Items
	if stmt.ImportAll {
		requested = importAllItems(target, stmt.Items)
	}
	for _, item := range requested {
		a.declareImportedItem(target, item, scope, stmt.Pos())
	}
}

// loadDirectory builds (or returns the cached) synthetic namespace for
// a directory candidate: one child namespace per .sn file, fully
// analyzed, and one nested namespace per sub-directory, recursively
// (spec 4.3.2 point 4).
func (a *Analyzer) loadDirectory(c *modules.Candidate, parent *types.Symbol) *types.Symbol {
	if ns, ok := a.loaded[c.Path]; ok {
		return ns
	}
	ns := types.NewSymbol(types.SymNamespace, filepath.Base(c.Path), types.NoPos)
	ns.Public = true
	parent.Declare(ns)
	a.loaded[c.Path] = ns

	entries, err := a.Resolver.DirEntries(c)
	if err != nil {
		a.Diag.Reportf(diag.Internal, diag.Error, types.NoPos, "reading module directory %q: %v", c.Path, err)
		return ns
	}

	for _, e := range entries {
		full := filepath.Join(c.Path, e.Name())
		if e.IsDir() {
			a.loadDirectory(&modules.Candidate{Path: full, IsDir: true}, ns)
			continue
		}
		if filepath.Ext(e.Name()) != ".sn" {
			continue
		}
		src, err := a.Resolver.ReadSource(&modules.Candidate{Path: full})
		if err != nil {
			a.Diag.Reportf(diag.Internal, diag.Error, types.NoPos, "reading %q: %v", full, err)
			continue
		}
		a.Diag.AddSource(full, src)
		prog := a.parseSource(full, src)
		prog.ModuleName = moduleBaseName(full)
		a.analyzeModule(prog, full, ns)
	}
	return ns
}

// importAllItems expands a `*` import into one synthetic item per
// top-level child of target, public or not. Per spec 4.3.2 points 5/6,
// a `*` import is treated as requesting every top-level name, so a
// name it reaches that happens not to be public still produces the
// same "is not public" diagnostic an explicitly named item would,
// rather than being silently dropped.
func importAllItems(target *types.Symbol, explicit []*syntax.ImportItemStmt) []*syntax.ImportItemStmt {
	if target == nil {
		return nil
	}
	items := make([]*syntax.ImportItemStmt, 0, len(target.Children())+len(explicit))
	for _, child := range target.Children() {
		items = append(items, &syntax.ImportItemStmt{Name: child.Name()})
	}
	for _, it := range explicit {
		if !it.ImportAll {
			items = append(items, it)
		}
	}
	return items
}

func (a *Analyzer) declareImportedItem(target *types.Symbol, item *syntax.ImportItemStmt, scope *types.Symbol, pos syntax.Pos) {
	if target == nil {
		return
	}
	child := target.Lookup(item.Name)
	if child == nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "module %q has no symbol %q", target.Name(), item.Name)
		return
	}
	if !child.Public {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "symbol %q is not public", item.Name)
		return
	}

	aliasName := item.Name
	if item.Alias != "" {
		aliasName = item.Alias
	}
	alias := types.NewSymbol(types.SymAlias, aliasName, pos)
	alias.Ref = child
	alias.Public = child.Public
	if dup := scope.Declare(alias); dup != nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "redeclaration of %q", aliasName)
	}
}
