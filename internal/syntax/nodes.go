package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Three recursive entities share the tree: Type, Expr, and Stmt (3.3).
// Each owns its children exclusively; the only non-owning edges are the
// post-analysis decorations on Expr (its resolved type and symbol) and
// a Symbol's weak parent back-edge, which lives in internal/types.

// Node is the interface implemented by every AST node.
type Node interface {
	Pos() Pos // position of the first character belonging to the node
	End() Pos // position of the first character immediately after the node
	aNode()
}

// Type is the interface for all type nodes (3.3).
type Type interface {
	Node
	Nullable() bool
	SetNullable(bool)
	aType()
}

// Expr is the interface for all expression nodes (3.3). After semantic
// analysis each expression is decorated, non-owning, with the Type it
// resolved to and the Symbol it refers to (nil when not applicable).
// Both are stored untyped to keep this package free of a dependency on
// internal/types, which itself depends on syntax for Pos.
type Expr interface {
	Node
	Type() interface{}
	SetType(interface{})
	Sym() interface{}
	SetSym(interface{})
	aExpr()
}

// Stmt is the interface for all statement nodes (3.3).
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
	end Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) End() Pos {
	if n.end.IsValid() {
		return n.end
	}
	return n.pos
}
func (n *node) aNode() {}

type typ struct {
	node
	nullable bool
}

func (t *typ) Nullable() bool     { return t.nullable }
func (t *typ) SetNullable(b bool) { t.nullable = b }
func (*typ) aType()               {}

type expr struct {
	node
	typ interface{}
	sym interface{}
}

func (e *expr) Type() interface{}       { return e.typ }
func (e *expr) SetType(t interface{})   { e.typ = t }
func (e *expr) Sym() interface{}        { return e.sym }
func (e *expr) SetSym(s interface{})    { e.sym = s }
func (*expr) aExpr()                    {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Types (3.3)

// BasicLitType enumerates the primitive Literal(L) type kinds.
type BasicLitType uint8

const (
	TI32 BasicLitType = iota
	TI64
	TI128
	TF32
	TF64
	TBool
	TChar
	TString
	TUnkInt
	TUnkFloat
	TAny // `any`; outside the spec's Literal(L) set but lexed the same way
)

func (k BasicLitType) String() string {
	switch k {
	case TI32:
		return "i32"
	case TI64:
		return "i64"
	case TI128:
		return "i128"
	case TF32:
		return "f32"
	case TF64:
		return "f64"
	case TBool:
		return "bool"
	case TChar:
		return "char"
	case TString:
		return "str"
	case TUnkInt:
		return "untyped int"
	case TUnkFloat:
		return "untyped float"
	case TAny:
		return "any"
	}
	return "?"
}

// LiteralType is a primitive type: i32, i64, i128, f32, f64, bool, char, str,
// or one of the two untyped numeric kinds produced for bare literals.
type LiteralType struct {
	typ
	Kind BasicLitType
}

// VoidType is the absence of a value; forbidden as a variable type (4.3.5).
type VoidType struct{ typ }

// PtrType is a pointer type, written with a trailing star: Base*.
type PtrType struct {
	typ
	Elem Type
}

// RefType is a reference type, written with a trailing ampersand: Base&.
type RefType struct {
	typ
	Elem Type
}

// ObjectType names a user-defined type, optionally generic: Name<G...>.
// SymbolRef is filled in during semantic analysis (whenever the type is
// resolved, in any pass) once the name resolves to a declared
// Struct/Enum symbol.
type ObjectType struct {
	typ
	Name      string
	Generics  []Type
	SymbolRef interface{}
}

// ScopeType is a `::`-qualified type path: Nested::Name.
type ScopeType struct {
	typ
	Nested Type
	Name   string
}

// FuncType is a function type: func(params) -> ret.
type FuncType struct {
	typ
	Params []Type
	Ret    Type // nil for void
}

// ----------------------------------------------------------------------------
// Expressions (3.3)

// LiteralExpr is a numeric, string, char, or boolean literal.
type LiteralExpr struct {
	expr
	Kind  LitKind
	Value string // normalized value
	Raw   string // original spelling
}

// VariableExpr is a bare identifier reference.
type VariableExpr struct {
	expr
	Name string
}

// ScopeExpr is a `::`-qualified reference: Nested::Name.
type ScopeExpr struct {
	expr
	Nested Expr
	Name   string
}

// MemberExpr is a `.`-qualified field access: Nested.Name.
type MemberExpr struct {
	expr
	Nested Expr
	Name   string
}

// RefExpr takes the address of its operand: &inner.
type RefExpr struct {
	expr
	Inner Expr
}

// DerefExpr dereferences a pointer: *inner.
type DerefExpr struct {
	expr
	Inner Expr
}

// IndexExpr indexes an array or pointer: nested[index].
type IndexExpr struct {
	expr
	Nested Expr
	Index  Expr
}

// BinaryExpr is a binary operation: lhs op rhs.
type BinaryExpr struct {
	expr
	Op       Token
	LHS, RHS Expr
}

// UnaryExpr is a prefix unary operation: op inner, where op is - or +
// (prefix & and * produce RefExpr and DerefExpr instead).
type UnaryExpr struct {
	expr
	Op    Token
	Inner Expr
}

// CallExpr is a function call: callee<generics>(args...).
type CallExpr struct {
	expr
	Callee   Expr
	Generics []Type
	Args     []Expr
}

// RangeExpr is an integer range: lhs..rhs, consumed by for loops.
type RangeExpr struct {
	expr
	LHS, RHS Expr
}

// NoneExpr is the literal `none`, the absence of a nullable value.
type NoneExpr struct{ expr }

// ----------------------------------------------------------------------------
// Statements (3.3)

// Mutability mirrors types.Mutability without importing internal/types
// (which itself imports this package for Pos).
type Mutability uint8

const (
	MutVariable Mutability = iota // let
	MutStatic                     // static
	MutConstant                   // const
)

// DefaultStmt is the statement-kind-left-at-its-default placeholder a
// parser synchronization failure produces for the skipped region (4.2).
type DefaultStmt struct{ stmt }

// NamespaceStmt groups statements under a module-qualified name. Neither
// the parser nor semantic analysis builds one; module resolution (4.3.2)
// represents a directory candidate as a types.Symbol namespace instead.
type NamespaceStmt struct {
	stmt
	Name string
	Body []Stmt
}

// VariableStmt declares a variable: [public] [extern] let|static|const Name [: Type] [= Value].
type VariableStmt struct {
	stmt
	Public     bool
	Extern     bool
	Declare    bool // true when there is no initializer (requires a type annotation)
	Mutability Mutability
	Name       string
	TypeAnn    Type // nil when inferred from Value
	Value      Expr // nil when Declare
}

// GenericsStmt is one entry of a function/struct/enum's generic parameter list.
type GenericsStmt struct {
	stmt
	Name  string
	Bound Type // nil when unconstrained
}

// ParameterStmt is one function parameter.
type ParameterStmt struct {
	stmt
	Name     string
	TypeAnn  Type
	Variadic bool // true only for the final parameter
}

// FunctionStmt declares or defines a function.
type FunctionStmt struct {
	stmt
	Public   bool
	Extern   bool
	Async    bool
	Declare  bool // true when Body is nil (forward declaration)
	Name     string
	Generics []*GenericsStmt
	Params   []*ParameterStmt
	Ret      Type // nil for void
	Body     *BlockStmt
}

// AssignmentStmt assigns to an existing lvalue. Compound assignment
// operators are desugared by the parser into Value = target ⊕ rhs.
type AssignmentStmt struct {
	stmt
	Target Expr
	Value  Expr
}

// ExprStmt is an expression evaluated for its side effect.
type ExprStmt struct {
	stmt
	X Expr
}

// BlockStmt is a brace-delimited statement list.
type BlockStmt struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos
}

// IfStmt is a conditional; Else is nil, *IfStmt (else if), or *BlockStmt.
type IfStmt struct {
	stmt
	Cond Expr
	Then *BlockStmt
	Else Stmt
}

// WhileStmt is a condition-guarded loop.
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// ForStmt is a for-in loop: for Iter in Value { Body }. Value may be a
// RangeExpr (`lhs..rhs`) or any other iterable expression.
type ForStmt struct {
	stmt
	Iter  string
	Value Expr
	Body  *BlockStmt
}

// TryCatchStmt is a try/catch/finally block. Catch and Finally are both
// optional, but at least one must be present for the statement to be
// well-formed (enforced during analysis, not parsing).
type TryCatchStmt struct {
	stmt
	Try       *BlockStmt
	CatchName string // bound identifier, empty if there is no catch clause
	CatchType Type   // optional type annotation on the caught value
	Catch     *BlockStmt
	Finally   *BlockStmt
}

// ReturnStmt returns from the enclosing function, with an optional value.
type ReturnStmt struct {
	stmt
	Value Expr
}

// BreakStmt exits the innermost loop.
type BreakStmt struct{ stmt }

// ContinueStmt jumps to the next iteration of the innermost loop.
type ContinueStmt struct{ stmt }

// ImportFieldStmt is one `::`-separated segment of an import's qualified path.
type ImportFieldStmt struct {
	stmt
	Name string
}

// ImportItemStmt is one entry of an import's `use { ... }` list.
type ImportItemStmt struct {
	stmt
	Name      string
	Alias     string // empty when there is no `as`
	ImportAll bool   // true when this entry is `*`
}

// ImportStmt is `import A::B::C use { X, Y as Z, * };`.
type ImportStmt struct {
	stmt
	Qualified []*ImportFieldStmt
	Items     []*ImportItemStmt
	ImportAll bool // true when `*` appears anywhere in Items
}

// StructFieldStmt is one field of a struct declaration.
type StructFieldStmt struct {
	stmt
	Name    string
	TypeAnn Type
}

// StructStmt declares a struct type, optionally generic.
type StructStmt struct {
	stmt
	Public   bool
	Extern   bool
	Name     string
	Generics []*GenericsStmt
	Fields   []*StructFieldStmt
}

// EnumVariantStmt is one variant of an enum declaration.
type EnumVariantStmt struct {
	stmt
	Name  string
	Value Expr // optional explicit discriminant
}

// EnumStmt declares an enum type, optionally generic.
type EnumStmt struct {
	stmt
	Public   bool
	Extern   bool
	Name     string
	Generics []*GenericsStmt
	Variants []*EnumVariantStmt
}

// ----------------------------------------------------------------------------
// Program (3.3)

// Program is the root of one source file: a module-qualified name (its
// path relative to the project root, stripped of extension) and an
// ordered list of top-level statements.
type Program struct {
	node
	ModuleName string
	Stmts      []Stmt
}
