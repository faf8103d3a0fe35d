package types

import "github.com/exzgit/sonic/internal/syntax"

// NoPos is the zero position value, used for predeclared symbols.
var NoPos syntax.Pos

// NewUniverseWithBuiltins creates a fresh root namespace symbol (spec
// 3.4/5.1: "the universe... the root symbol table containing all
// loaded namespaces") and predeclares println/new/panic, the three
// builtins spec 4.3.3's Call resolution rule dispatches on directly by
// name (mirroring yoru's types2/call.go builtin special-casing).
func NewUniverseWithBuiltins() *Symbol {
	u := NewUniverse()
	for _, name := range []string{"println", "new", "panic"} {
		b := NewSymbol(SymFunction, name, NoPos)
		b.Extern = true
		b.Public = true
		u.Declare(b)
	}
	return u
}

// IsBuiltin reports whether sym is one of the three predeclared
// builtin functions.
func IsBuiltin(sym *Symbol) bool {
	if sym == nil || sym.Kind != SymFunction || sym.Parent() == nil {
		return false
	}
	if !sym.Parent().IsUniverse() {
		return false
	}
	switch sym.Name() {
	case "println", "new", "panic":
		return true
	}
	return false
}
