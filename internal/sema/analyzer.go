// Package sema implements the three-pass semantic analyzer (spec
// 4.3): eager top-level declaration, an import/body pass interleaved
// statement by statement, and match_type-driven expression and
// statement checking. It walks the AST built by internal/syntax and
// populates the symbol table of internal/types, reporting every
// failure through internal/diag rather than as a Go error value.
package sema

import (
	"path/filepath"
	"strings"

	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/handoff"
	"github.com/exzgit/sonic/internal/modules"
	"github.com/exzgit/sonic/internal/project"
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

// Analyzer drives semantic analysis of one compilation's module
// graph: a shared universe, a diagnostic sink, a module resolver, and
// the bookkeeping spec 5's recursion guard needs.
type Analyzer struct {
	Universe *types.Symbol
	Diag     *diag.Engine
	Resolver *modules.Resolver
	Root     string

	loaded  map[string]*types.Symbol // file/directory path -> its namespace symbol
	loading map[string]bool          // in-progress guard for cyclic imports
}

// New creates an Analyzer rooted at root (the project directory used
// to compute module-qualified names, spec 6.2), reporting to d.
func New(d *diag.Engine, root string) *Analyzer {
	return &Analyzer{
		Universe: types.NewUniverseWithBuiltins(),
		Diag:     d,
		Resolver: modules.NewResolver(),
		Root:     root,
		loaded:   make(map[string]*types.Symbol),
		loading:  make(map[string]bool),
	}
}

// moduleContext carries the state scoped to one module's analysis:
// the file it was parsed from (for module resolution and diagnostic
// tagging) and the function symbol currently enclosing statement
// analysis, nil at module top level.
type moduleContext struct {
	file string
	fn   *types.Symbol
}

// Result is the outcome of analyzing an entry file and everything it
// transitively imports.
type Result struct {
	Universe *types.Symbol
	Program  *syntax.Program
	Diag     *diag.Engine
}

// Handoff narrows Result to the boundary value internal/handoff
// defines for whatever consumes an analysis: the universe, the entry
// program, and the one bit that matters for an exit code. cmd/sonicc
// reads it through this rather than reaching into Result.Diag itself.
func (r *Result) Handoff() handoff.Handoff {
	return handoff.Handoff{
		Universe:  r.Universe,
		Program:   r.Program,
		HadErrors: r.Diag.HadErrors(),
	}
}

// Analyze parses entryFile's src and runs full module-graph analysis
// starting from it (spec 4.3, 5), returning the resulting universe,
// the entry program's AST, and the diagnostic engine both reported
// to.
func Analyze(d *diag.Engine, root, entryFile string, src []byte) *Result {
	a := New(d, root)
	d.AddSource(entryFile, src)
	prog := a.parseSource(entryFile, src)
	prog.ModuleName = project.ModuleName(root, entryFile)
	a.analyzeModule(prog, entryFile, a.Universe)
	return &Result{Universe: a.Universe, Program: prog, Diag: d}
}

func (a *Analyzer) parseSource(file string, src []byte) *syntax.Program {
	errh := func(pos syntax.Pos, msg string) {
		a.Diag.Report(diag.Diagnostic{Kind: classifyParseErr(msg), Severity: diag.Error, Pos: pos, Message: msg})
	}
	return syntax.NewParser(file, src, errh).Parse()
}

// classifyParseErr heuristically splits the parser's single error
// channel (lexer and parser both report through NewParser's one errh
// callback) into Invalid (malformed tokens) vs Syntax (malformed
// grammar), based on substrings unique to the scanner's own messages.
func classifyParseErr(msg string) diag.Kind {
	switch {
	case strings.Contains(msg, "literal"),
		strings.Contains(msg, "token"),
		strings.Contains(msg, "character"),
		strings.Contains(msg, "comment"),
		strings.Contains(msg, "digit"),
		strings.Contains(msg, "escape"):
		return diag.Invalid
	default:
		return diag.Syntax
	}
}

// analyzeModule analyzes prog (already parsed from file) as a
// namespace under parent, returning its namespace symbol. Per spec
// 5's recursion guard, an already-loaded module is returned directly
// rather than re-analyzed; a still-loading one (an import cycle
// resolving back on itself before its own analysis finished) is also
// returned directly, since its eager declarations already ran before
// this function descends into its imports.
func (a *Analyzer) analyzeModule(prog *syntax.Program, file string, parent *types.Symbol) *types.Symbol {
	if ns, ok := a.loaded[file]; ok {
		return ns
	}

	name := prog.ModuleName
	if name == "" {
		name = moduleBaseName(file)
	}
	ns := types.NewSymbol(types.SymNamespace, name, prog.Pos())
	if dup := parent.Declare(ns); dup != nil {
		ns = dup
	}
	a.loaded[file] = ns
	a.loading[file] = true

	mc := &moduleContext{file: file}
	a.eagerDeclare(prog.Stmts, ns, mc)

	for _, s := range prog.Stmts {
		if imp, ok := s.(*syntax.ImportStmt); ok {
			a.resolveImport(imp, ns, mc)
			continue
		}
		a.checkStmt(s, ns, mc)
	}

	delete(a.loading, file)
	return ns
}

func moduleBaseName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
