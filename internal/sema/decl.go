package sema

import (
	"github.com/exzgit/sonic/internal/diag"
	"github.com/exzgit/sonic/internal/syntax"
	"github.com/exzgit/sonic/internal/types"
)

// eagerDeclare runs the first pass over a module's top-level
// statements (spec 4.3 point 1): declare one symbol per
// function/variable/struct/enum before any body is checked, so that
// forward references within the same module resolve regardless of
// declaration order.
func (a *Analyzer) eagerDeclare(stmts []syntax.Stmt, scope *types.Symbol, mc *moduleContext) {
	for _, s := range stmts {
		switch st := s.(type) {
		case *syntax.FunctionStmt:
			a.declareFunction(st, scope, mc)
		case *syntax.VariableStmt:
			a.declareVariable(st, scope, mc)
		case *syntax.StructStmt:
			a.declareStruct(st, scope, mc)
		case *syntax.EnumStmt:
			a.declareEnum(st, scope, mc)
		}
	}
}

func (a *Analyzer) declareFunction(st *syntax.FunctionStmt, scope *types.Symbol, mc *moduleContext) *types.Symbol {
	sym := types.NewSymbol(types.SymFunction, st.Name, st.Pos())
	sym.Public = st.Public
	sym.Extern = st.Extern
	sym.Async = st.Async
	sym.Decl = st.Declare

	params := make([]*types.Field, len(st.Params))
	for i, p := range st.Params {
		params[i] = types.NewField(p.Name, a.resolveType(p.TypeAnn, scope, mc))
		if p.Variadic {
			sym.Variadic = true
		}
	}
	var ret types.Type
	if st.Ret != nil {
		ret = a.resolveType(st.Ret, scope, mc)
		if isVoidType(ret) {
			ret = nil
		}
	}
	sym.Type = types.NewFunc(params, ret, sym.Variadic)

	if dup := scope.Declare(sym); dup != nil {
		if merged := mergeForwardDecl(dup, sym); merged {
			return dup
		}
		a.Diag.Reportf(diag.Semantic, diag.Error, st.Pos(), "redeclaration of %q", st.Name)
		return dup
	}
	return sym
}

// mergeForwardDecl implements spec 4.3.1's "forward declarations are
// accepted, redefinitions are rejected": dup and fresh name the same
// symbol, where fresh just lost a Declare collision. If exactly one
// of the two has no body (Decl true), the pair is a forward
// declaration completed by its definition (in either statement order)
// rather than a real duplicate; the defining one's signature replaces
// the stub's in place on dup, which every earlier reference already
// points at. Returns false when both have a body — a genuine
// redefinition the caller should still report.
func mergeForwardDecl(dup, fresh *types.Symbol) bool {
	if dup.Kind != types.SymFunction || fresh.Kind != types.SymFunction {
		return false
	}
	if !dup.Decl && !fresh.Decl {
		return false
	}
	if !fresh.Decl {
		dup.Type = fresh.Type
		dup.Variadic = fresh.Variadic
		dup.Decl = false
	}
	return true
}

func (a *Analyzer) declareVariable(st *syntax.VariableStmt, scope *types.Symbol, mc *moduleContext) *types.Symbol {
	sym := types.NewSymbol(types.SymVariable, st.Name, st.Pos())
	sym.Public = st.Public
	sym.Extern = st.Extern
	sym.Decl = st.Declare
	sym.Mutability = mutabilityOf(st.Mutability)
	if st.TypeAnn != nil {
		sym.Type = a.resolveType(st.TypeAnn, scope, mc)
	}
	if dup := scope.Declare(sym); dup != nil {
		if merged := mergeVariableForwardDecl(dup, sym); merged {
			return dup
		}
		a.Diag.Reportf(diag.Semantic, diag.Error, st.Pos(), "redeclaration of %q", st.Name)
		return dup
	}
	return sym
}

// mergeVariableForwardDecl applies the same forward-declaration rule
// mergeForwardDecl does for functions (spec 4.3.1): a `let x: T;` with
// no initializer followed later by one that supplies a type is
// accepted, not a redeclaration, and the later statement's resolved
// type replaces the stub's placeholder on dup.
func mergeVariableForwardDecl(dup, fresh *types.Symbol) bool {
	if dup.Kind != types.SymVariable || fresh.Kind != types.SymVariable {
		return false
	}
	if !dup.Decl && !fresh.Decl {
		return false
	}
	if !fresh.Decl {
		if fresh.Type != nil {
			dup.Type = fresh.Type
		}
		dup.Decl = false
	}
	return true
}

// declareStruct declares the struct's own symbol and, for each field,
// a Variable-kind symbol nested under it. Fields are not a distinct
// Symbol kind (spec 3.4's Symbol.kind set has none), so nesting them
// as Variable children lets Scope and Member expressions share one
// resolution rule: look the name up among the qualifier's direct
// children (spec 4.3.3).
//
// Layout is computed here, once, right after the field list is known:
// an extern struct's mangled_name keeps its source spelling unchanged
// (spec 3.4), which only matters because something on the other side
// of that boundary reads the struct by its byte layout, so the size,
// alignment, and per-field offsets have to exist the moment the type
// is declared rather than only if a later pass happens to ask for
// them.
func (a *Analyzer) declareStruct(st *syntax.StructStmt, scope *types.Symbol, mc *moduleContext) *types.Symbol {
	sym := types.NewSymbol(types.SymStruct, st.Name, st.Pos())
	sym.Public = st.Public
	sym.Extern = st.Extern
	named := types.NewNamed(sym, nil)

	fields := make([]*types.Field, len(st.Fields))
	for i, f := range st.Fields {
		ftype := a.resolveType(f.TypeAnn, scope, mc)
		fields[i] = types.NewField(f.Name, ftype)
		fsym := types.NewSymbol(types.SymVariable, f.Name, f.Pos())
		fsym.Type = ftype
		if dup := sym.Declare(fsym); dup != nil {
			a.Diag.Reportf(diag.Semantic, diag.Error, f.Pos(), "duplicate field %q in struct %q", f.Name, st.Name)
		}
	}
	underlying := types.NewStruct(fields)
	named.SetUnderlying(underlying)
	types.DefaultSizes.ComputeLayout(underlying)

	if dup := scope.Declare(sym); dup != nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, st.Pos(), "redeclaration of %q", st.Name)
		return dup
	}
	return sym
}

// declareEnum mirrors declareStruct: each variant becomes a Variable
// child of the enum's symbol, typed as the enum itself, so `Color::Red`
// resolves through the same Scope lookup rule as a namespace member.
func (a *Analyzer) declareEnum(st *syntax.EnumStmt, scope *types.Symbol, mc *moduleContext) *types.Symbol {
	sym := types.NewSymbol(types.SymEnum, st.Name, st.Pos())
	sym.Public = st.Public
	sym.Extern = st.Extern
	named := types.NewNamed(sym, nil)

	variants := make([]*types.Field, len(st.Variants))
	for i, v := range st.Variants {
		variants[i] = types.NewField(v.Name, named)
		vsym := types.NewSymbol(types.SymVariable, v.Name, v.Pos())
		vsym.Type = named
		if dup := sym.Declare(vsym); dup != nil {
			a.Diag.Reportf(diag.Semantic, diag.Error, v.Pos(), "duplicate variant %q in enum %q", v.Name, st.Name)
		}
		if v.Value != nil {
			a.checkExpr(v.Value, scope, mc)
		}
	}
	named.SetUnderlying(types.NewEnum(variants))

	if dup := scope.Declare(sym); dup != nil {
		a.Diag.Reportf(diag.Semantic, diag.Error, st.Pos(), "redeclaration of %q", st.Name)
		return dup
	}
	return sym
}

func mutabilityOf(m syntax.Mutability) types.Mutability {
	switch m {
	case syntax.MutStatic:
		return types.Static
	case syntax.MutConstant:
		return types.Constant
	default:
		return types.Variable
	}
}

func isVoidType(t types.Type) bool {
	b, ok := t.(*types.Basic)
	return ok && b.Kind() == types.Void
}
