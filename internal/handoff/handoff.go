// Package handoff defines the boundary value passed from the front
// end to whatever consumes its result — today cmd/sonicc's own
// reporting, eventually a code generator. It exists so that callers
// depend on one small struct instead of reaching into internal/sema's
// Analyzer directly.
package handoff

import (
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

// Handoff is the result of fully analyzing a module graph: the
// universe namespace every loaded module hangs off of, the entry
// file's own AST, and whether analysis produced any Error-severity
// diagnostic.
type Handoff struct {
	Universe  *types.Symbol
	Program   *syntax.Program
	HadErrors bool
}
