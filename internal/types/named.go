package types

// Named represents a user-defined type introduced by `struct` or `enum`
// (spec 3.4: Symbol.kind ∈ {Struct, Enum}). Two Named types match only
// by identity of their defining Symbol (spec 4.3.4: "Object types match
// by resolved symbol identity"), never structurally.
type Named struct {
	typ
	obj        *Symbol // the Struct/Enum symbol that declared this type
	underlying Type    // the Struct or Enum composite type
}

// NewNamed creates a new named type bound to its declaring symbol.
func NewNamed(obj *Symbol, underlying Type) *Named {
	n := &Named{obj: obj, underlying: underlying}
	if obj != nil {
		obj.Type = n
	}
	return n
}

// Obj returns the declaring symbol.
func (n *Named) Obj() *Symbol {
	return n.obj
}

// SetUnderlying sets the underlying type once it has been resolved.
func (n *Named) SetUnderlying(underlying Type) {
	n.underlying = underlying
}

// Underlying implements Type.
func (n *Named) Underlying() Type {
	return n.underlying
}

// String implements Type.
func (n *Named) String() string {
	if n.obj != nil {
		return n.obj.Name()
	}
	return "unnamed"
}
