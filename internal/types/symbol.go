package types

import (
	"strings"

	"github.com/exzgit/sonic/internal/syntax"
)

// SymbolKind identifies the kind of entity a Symbol names.
type SymbolKind int

const (
	SymNamespace SymbolKind = iota
	SymFunction
	SymVariable
	SymParameter
	SymStruct
	SymEnum
	SymAlias
)

func (k SymbolKind) String() string {
	switch k {
	case SymNamespace:
		return "namespace"
	case SymFunction:
		return "function"
	case SymVariable:
		return "variable"
	case SymParameter:
		return "parameter"
	case SymStruct:
		return "struct"
	case SymEnum:
		return "enum"
	case SymAlias:
		return "alias"
	default:
		return "invalid"
	}
}

// Mutability classifies how a Variable/Parameter symbol may be written to.
type Mutability int

const (
	Variable Mutability = iota // let
	Static                     // static
	Constant                   // const
)

// Symbol is a node in the tree of declared entities. Edges encode
// lexical containment: a Symbol's children are declared inside it,
// and Parent is a non-owning back-edge up to the enclosing scope,
// terminating at the Universe namespace.
//
// Invariants (spec 3.4):
//  1. No two sibling children share a name.
//  2. An Alias's Ref always targets a public symbol in a different
//     namespace, or the special `main` function.
//  3. Every Expression.symbol_ref after analysis resolves to a symbol
//     reachable by walking parents from the enclosing statement.
//  4. Function.MangledName is parent.MangledName + "_" + name, except
//     `main` which is kept unmangled.
type Symbol struct {
	Kind SymbolKind
	name string

	parent   *Symbol
	children []*Symbol
	byName   map[string]*Symbol

	Type       Type
	Mutability Mutability

	Public   bool
	Extern   bool
	Async    bool
	Decl     bool // declared-only, no body (functions) / no initializer (vars)
	Variadic bool

	Ref *Symbol // Alias target; nil otherwise

	Pos syntax.Pos
}

// NewSymbol creates a detached symbol. Attach it to a parent with Declare.
func NewSymbol(kind SymbolKind, name string, pos syntax.Pos) *Symbol {
	return &Symbol{Kind: kind, name: name, Pos: pos}
}

// Name returns the symbol's source name.
func (s *Symbol) Name() string { return s.name }

// Parent returns the enclosing symbol, or nil for the universe.
func (s *Symbol) Parent() *Symbol { return s.parent }

// Children returns the symbols declared directly inside s, in
// declaration order.
func (s *Symbol) Children() []*Symbol { return s.children }

// MangledName returns the fully-qualified assembly-level name.
// `main` and extern symbols are exempt from mangling.
func (s *Symbol) MangledName() string {
	if s.name == "main" || s.Extern {
		return s.name
	}
	if s.parent == nil || s.parent.Kind == SymNamespace && s.parent.parent == nil {
		return s.name
	}
	parentMangled := s.parent.MangledName()
	if parentMangled == "" {
		return s.name
	}
	return parentMangled + "_" + s.name
}

// Declare inserts child into s's children. Returns the pre-existing
// symbol of the same name if one exists (caller reports a duplicate
// declaration error) and leaves s unmodified in that case.
func (s *Symbol) Declare(child *Symbol) *Symbol {
	if s.byName == nil {
		s.byName = make(map[string]*Symbol)
	}
	if existing, ok := s.byName[child.name]; ok {
		return existing
	}
	s.byName[child.name] = child
	s.children = append(s.children, child)
	child.parent = s
	return nil
}

// Lookup finds name among s's direct children only. Alias symbols are
// returned as-is; callers that want transparency should use Resolve.
func (s *Symbol) Lookup(name string) *Symbol {
	if s.byName == nil {
		return nil
	}
	return s.byName[name]
}

// LookupChain searches s's children, then walks Parent up to (and
// including) the universe, per spec 4.3.1.
func (s *Symbol) LookupChain(name string) *Symbol {
	for scope := s; scope != nil; scope = scope.parent {
		if sym := scope.Lookup(name); sym != nil {
			return sym
		}
	}
	return nil
}

// Resolve is LookupChain followed by transparent Alias dereferencing:
// hitting an Alias resolves immediately to alias.Ref (spec 4.3.1).
func (s *Symbol) Resolve(name string) *Symbol {
	sym := s.LookupChain(name)
	if sym != nil && sym.Kind == SymAlias {
		return sym.Ref
	}
	return sym
}

// IsUniverse reports whether s is the root universe namespace.
func (s *Symbol) IsUniverse() bool {
	return s.parent == nil && s.Kind == SymNamespace
}

// Path returns the dotted namespace path from the universe to s,
// excluding the universe itself. Used for diagnostics, not mangling.
func (s *Symbol) Path() string {
	var parts []string
	for sym := s; sym != nil && !sym.IsUniverse(); sym = sym.parent {
		parts = append([]string{sym.name}, parts...)
	}
	return strings.Join(parts, "::")
}

// NewUniverse creates a fresh root namespace symbol with no parent.
func NewUniverse() *Symbol {
	return NewSymbol(SymNamespace, "universe", syntax.Pos{})
}
