package sema

import (
	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

func symOf(e syntax.Expr) *types.Symbol {
	if e == nil {
		return nil
	}
	s, _ := e.Sym().(*types.Symbol)
	return s
}

func litOf(e syntax.Expr) *syntax.LiteralExpr {
	l, _ := e.(*syntax.LiteralExpr)
	return l
}

func exprType(e syntax.Expr) types.Type {
	if e == nil {
		return nil
	}
	t, _ := e.Type().(types.Type)
	return t
}

func literalType(kind syntax.LitKind) types.Type {
	switch kind {
	case syntax.IntLit:
		return types.Typ[types.UnkInt]
	case syntax.FloatLit:
		return types.Typ[types.UnkFloat]
	case syntax.StringLit:
		return types.Typ[types.String]
	case syntax.CharLit:
		return types.Typ[types.Char]
	case syntax.BoolLit:
		return types.Typ[types.Bool]
	default:
		return nil
	}
}

// checkExpr types e in scope, decorating it with its resolved Type
// and, when applicable, the Symbol it refers to (spec 4.3.3's
// expression table).
func (a *Analyzer) checkExpr(e syntax.Expr, scope *types.Symbol, mc *moduleContext) types.Type {
	if e == nil {
		return nil
	}
	var t types.Type
	var sym *types.Symbol

	switch ex := e.(type) {
	case *syntax.LiteralExpr:
		t = literalType(ex.Kind)
	case *syntax.NoneExpr:
		t = types.Typ[types.UntypedNil]
	case *syntax.VariableExpr:
		sym = scope.Resolve(ex.Name)
		if sym == nil {
			a.Diag.Reportf(diag.Semantic, diag.Error, ex.Pos(), "undefined name %q", ex.Name)
		} else {
			t = sym.Type
		}
	case *syntax.ScopeExpr:
		a.checkExpr(ex.Nested, scope, mc)
		sym, t = a.checkQualified(symOf(ex.Nested), ex.Name, ex.Pos())
	case *syntax.MemberExpr:
		a.checkExpr(ex.Nested, scope, mc)
		sym, t = a.checkQualified(symOf(ex.Nested), ex.Name, ex.Pos())
	case *syntax.RefExpr:
		if inner := a.checkExpr(ex.Inner, scope, mc); inner != nil {
			t = types.NewRef(inner)
		}
	case *syntax.DerefExpr:
		inner := a.checkExpr(ex.Inner, scope, mc)
		if p, ok := inner.(*types.Pointer); ok {
			t = p.Elem()
		} else if inner != nil {
			a.Diag.Reportf(diag.Semantic, diag.Error, ex.Pos(), "cannot dereference non-pointer type %s", inner)
		}
	case *syntax.IndexExpr:
		nested := a.checkExpr(ex.Nested, scope, mc)
		a.checkExpr(ex.Index, scope, mc)
		switch nt := nested.(type) {
		case *types.Array:
			t = nt.Elem()
		case *types.Pointer:
			t = nt.Elem()
		}
	case *syntax.BinaryExpr:
		t = a.checkBinary(ex, scope, mc)
	case *syntax.UnaryExpr:
		inner := a.checkExpr(ex.Inner, scope, mc)
		if inner != nil {
			if !types.IsNumericType(inner) {
				a.Diag.Reportf(diag.Semantic, diag.Error, ex.Pos(), "unary %s requires a numeric operand, got %s", ex.Op, inner)
			} else {
				t = inner
			}
		}
	case *syntax.CallExpr:
		t = a.checkCall(ex, scope, mc)
	case *syntax.RangeExpr:
		lt := a.checkExpr(ex.LHS, scope, mc)
		rt := a.checkExpr(ex.RHS, scope, mc)
		if lt != nil && !types.IsIntegerType(lt) {
			a.Diag.Reportf(diag.Semantic, diag.Error, ex.LHS.Pos(), "range bound must be an integer type, got %s", lt)
		}
		if rt != nil && !types.IsIntegerType(rt) {
			a.Diag.Reportf(diag.Semantic, diag.Error, ex.RHS.Pos(), "range bound must be an integer type, got %s", rt)
		}
		t = lt
	}

	e.SetType(t)
	if sym != nil {
		e.SetSym(sym)
	}
	return t
}

// checkQualified resolves a `::` or `.` qualified reference: name must
// be a direct child of nested's symbol (spec 4.3.3's combined
// Scope/Member row — struct fields and enum variants are declared as
// Variable children of their Struct/Enum symbol, see decl.go, so the
// same lookup serves both `.` and `::`).
func (a *Analyzer) checkQualified(nested *types.Symbol, name string, pos syntax.Pos) (*types.Symbol, types.Type) {
	if nested == nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "cannot resolve qualifier for %q", name)
		return nil, nil
	}
	child := nested.Lookup(name)
	if child == nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "%q has no member %q", nested.Name(), name)
		return nil, nil
	}
	if child.Kind == types.SymAlias {
		return child.Ref, child.Ref.Type
	}
	return child, child.Type
}

func (a *Analyzer) checkBinary(ex *syntax.BinaryExpr, scope *types.Symbol, mc *moduleContext) types.Type {
	lt := a.checkExpr(ex.LHS, scope, mc)
	rt := a.checkExpr(ex.RHS, scope, mc)
	if lt == nil || rt == nil {
		return nil
	}
	pos := ex.Pos()

	switch ex.Op.String() {
	case "&&", "||":
		a.expectBool(lt, ex.LHS.Pos())
		a.expectBool(rt, ex.RHS.Pos())
		return types.Typ[types.Bool]
	case "==", "!=":
		a.unifyOperands(lt, rt, litOf(ex.LHS), litOf(ex.RHS), pos)
		if !types.Comparable(lt) {
			a.Diag.Reportf(diag.Semantic, diag.Error, pos, "%s is not comparable", lt)
		}
		return types.Typ[types.Bool]
	case "<", "<=", ">", ">=":
		if !types.Ordered(lt) || !types.Ordered(rt) {
			a.Diag.Reportf(diag.Semantic, diag.Error, pos, "operator %s requires ordered operands", ex.Op)
		}
		a.unifyOperands(lt, rt, litOf(ex.LHS), litOf(ex.RHS), pos)
		return types.Typ[types.Bool]
	default:
		return a.unifyOperands(lt, rt, litOf(ex.LHS), litOf(ex.RHS), pos)
	}
}

func (a *Analyzer) expectBool(t types.Type, pos syntax.Pos) {
	if b, ok := t.(*types.Basic); !ok || b.Kind() != types.Bool {
		a.Diag.Reportf(diag.Semantic, diag.Error, pos, "expected bool, got %s", t)
	}
}

// unifyOperands implements match_type's role in binary operators:
// whichever operand is untyped widens toward the other's concrete
// type; if both are untyped, the promotion ladder (PromoteUntyped)
// applies, falling back to the I64/F64 default when the literal's
// magnitude can't be read.
func (a *Analyzer) unifyOperands(lt, rt types.Type, llit, rlit *syntax.LiteralExpr, pos syntax.Pos) types.Type {
	lUntyped := types.IsUntypedType(lt)
	rUntyped := types.IsUntypedType(rt)
	switch {
	case !lUntyped && rUntyped:
		result, _ := a.matchType(lt, rt, rlit, pos)
		return result
	case lUntyped && !rUntyped:
		result, _ := a.matchType(rt, lt, llit, pos)
		return result
	case lUntyped && rUntyped:
		if llit != nil {
			if v, ok := parseBigInt(llit.Value); ok {
				if pt, err := PromoteUntyped(v); err == nil {
					return pt
				}
				a.Diag.Reportf(diag.Semantic, diag.Error, pos, "integer literal overflow")
			}
		}
		return types.DefaultType(lt)
	default:
		if !types.Identical(lt, rt) {
			a.Diag.Reportf(diag.Semantic, diag.Error, pos, "type mismatch: %s vs %s", lt, rt)
		}
		return lt
	}
}

func (a *Analyzer) checkCall(ex *syntax.CallExpr, scope *types.Symbol, mc *moduleContext) types.Type {
	a.checkExpr(ex.Callee, scope, mc)
	calleeSym := symOf(ex.Callee)
	for _, arg := range ex.Args {
		a.checkExpr(arg, scope, mc)
	}
	if calleeSym == nil {
		return nil
	}
	if calleeSym.Kind != types.SymFunction {
		a.Diag.Reportf(diag.Semantic, diag.Error, ex.Pos(), "%q is not callable", calleeSym.Name())
		return nil
	}
	if types.IsBuiltin(calleeSym) {
		// Any accepts anything: arity and per-argument checks don't
		// apply to println/new/panic (spec 3's match_type escape hatch).
		return types.Typ[types.Any]
	}

	fn, ok := calleeSym.Type.(*types.Func)
	if !ok {
		return nil
	}
	nParams := fn.NumParams()
	nArgs := len(ex.Args)
	if fn.Variadic() {
		if nArgs < nParams-1 {
			a.Diag.Reportf(diag.Semantic, diag.Error, ex.Pos(), "%s expects at least %d arguments, got %d", calleeSym.Name(), nParams-1, nArgs)
		}
	} else if nArgs != nParams {
		a.Diag.Reportf(diag.Semantic, diag.Error, ex.Pos(), "%s expects %d arguments, got %d", calleeSym.Name(), nParams, nArgs)
	}

	for i, arg := range ex.Args {
		var want types.Type
		switch {
		case i < nParams:
			want = fn.Param(i).Type()
		case fn.Variadic() && nParams > 0:
			want = fn.Param(nParams - 1).Type()
		default:
			continue
		}
		a.matchType(want, exprType(arg), litOf(arg), arg.Pos())
	}

	if fn.Result() == nil {
		return types.Typ[types.Void]
	}
	return fn.Result()
}
