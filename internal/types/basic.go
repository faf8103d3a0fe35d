package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Invalid BasicKind = iota // invalid type

	// Concrete basic types
	Bool
	I32
	I64
	I128
	F32
	F64
	Char
	String
	Void
	Any

	// Untyped basic types (for constant expressions not yet widened)
	UnkInt
	UnkFloat
	UntypedNil
)

// BasicInfo describes properties of a basic type.
type BasicInfo int

const (
	IsBoolean BasicInfo = 1 << iota
	IsInteger
	IsFloat
	IsChar
	IsString
	IsUntyped
	IsNumeric = IsInteger | IsFloat
)

// Basic represents a basic type: bool, the sized integer/float kinds,
// char, string, void, any, and the untyped literal kinds.
type Basic struct {
	typ
	kind BasicKind
	info BasicInfo
	name string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Info returns information about the basic type.
func (b *Basic) Info() BasicInfo {
	return b.info
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// Underlying implements Type.
func (b *Basic) Underlying() Type {
	return b
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Typ holds the predeclared basic types, indexed by BasicKind.
// Typ[Invalid] is nil, representing an invalid type.
var Typ = []*Basic{
	Invalid:    nil,
	Bool:       {kind: Bool, info: IsBoolean, name: "bool"},
	I32:        {kind: I32, info: IsInteger | IsNumeric, name: "i32"},
	I64:        {kind: I64, info: IsInteger | IsNumeric, name: "i64"},
	I128:       {kind: I128, info: IsInteger | IsNumeric, name: "i128"},
	F32:        {kind: F32, info: IsFloat | IsNumeric, name: "f32"},
	F64:        {kind: F64, info: IsFloat | IsNumeric, name: "f64"},
	Char:       {kind: Char, info: IsChar, name: "char"},
	String:     {kind: String, info: IsString, name: "str"},
	Void:       {kind: Void, name: "void"},
	Any:        {kind: Any, name: "any"},
	UnkInt:     {kind: UnkInt, info: IsInteger | IsNumeric | IsUntyped, name: "untyped int"},
	UnkFloat:   {kind: UnkFloat, info: IsFloat | IsNumeric | IsUntyped, name: "untyped float"},
	UntypedNil: {kind: UntypedNil, info: IsUntyped, name: "untyped nil"},
}

// IntWidths lists the integer kinds in ascending width order, used by
// match_type's UnkInt widening rule (spec 4.3.4).
var IntWidths = []BasicKind{I32, I64, I128}

// FloatWidths lists the float kinds in ascending width order.
var FloatWidths = []BasicKind{F32, F64}
