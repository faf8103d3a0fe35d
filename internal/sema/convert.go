package sema

import (
	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

// resolveType converts a syntax.Type into its internal/types
// representation, resolving Object/Scope names against scope (spec
// 4.3.1). Generic argument lists are parsed but never instantiated —
// generics monomorphization is out of scope, so they are simply
// ignored here. A type node's own nullable flag wraps the result in a
// Nullable.
func (a *Analyzer) resolveType(t syntax.Type, scope *types.Symbol, mc *moduleContext) types.Type {
	if t == nil {
		return nil
	}
	var base types.Type
	switch tt := t.(type) {
	case *syntax.LiteralType:
		base = types.Typ[basicKindOf(tt.Kind)]
	case *syntax.VoidType:
		base = types.Typ[types.Void]
	case *syntax.PtrType:
		if elem := a.resolveType(tt.Elem, scope, mc); elem != nil {
			base = types.NewPointer(elem)
		}
	case *syntax.RefType:
		if elem := a.resolveType(tt.Elem, scope, mc); elem != nil {
			base = types.NewRef(elem)
		}
	case *syntax.ObjectType:
		sym := scope.Resolve(tt.Name)
		if sym == nil || (sym.Kind != types.SymStruct && sym.Kind != types.SymEnum) {
			a.Diag.Reportf(diag.Semantic, diag.Error, t.Pos(), "undefined type %q", tt.Name)
			return nil
		}
		tt.SymbolRef = sym
		base = sym.Type
	case *syntax.ScopeType:
		sym := a.resolveScopeSymbol(tt, scope)
		if sym == nil || sym.Type == nil {
			a.Diag.Reportf(diag.Semantic, diag.Error, t.Pos(), "undefined type %q", tt.Name)
			return nil
		}
		base = sym.Type
	case *syntax.FuncType:
		params := make([]*types.Field, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = types.NewField("", a.resolveType(p, scope, mc))
		}
		var ret types.Type
		if tt.Ret != nil {
			ret = a.resolveType(tt.Ret, scope, mc)
			if isVoidType(ret) {
				ret = nil
			}
		}
		base = types.NewFunc(params, ret, false)
	default:
		return nil
	}
	if base != nil && t.Nullable() {
		base = types.NewNullable(base)
	}
	return base
}

// resolveScopeSymbol walks a `::`-qualified type path down the symbol
// tree: the innermost ObjectType resolves through the normal
// enclosing-scope chain, and each further ScopeType layer looks up
// its Name among the previous symbol's direct children only (spec
// 4.3.3's combined Scope/Member resolution rule).
func (a *Analyzer) resolveScopeSymbol(t syntax.Type, scope *types.Symbol) *types.Symbol {
	switch tt := t.(type) {
	case *syntax.ObjectType:
		return scope.Resolve(tt.Name)
	case *syntax.ScopeType:
		nested := a.resolveScopeSymbol(tt.Nested, scope)
		if nested == nil {
			return nil
		}
		return nested.Lookup(tt.Name)
	default:
		return nil
	}
}

func basicKindOf(k syntax.BasicLitType) types.BasicKind {
	switch k {
	case syntax.TI32:
		return types.I32
	case syntax.TI64:
		return types.I64
	case syntax.TI128:
		return types.I128
	case syntax.TF32:
		return types.F32
	case syntax.TF64:
		return types.F64
	case syntax.TBool:
		return types.Bool
	case syntax.TChar:
		return types.Char
	case syntax.TString:
		return types.String
	case syntax.TUnkInt:
		return types.UnkInt
	case syntax.TUnkFloat:
		return types.UnkFloat
	case syntax.TAny:
		return types.Any
	default:
		return types.Invalid
	}
}
