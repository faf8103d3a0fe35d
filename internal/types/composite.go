package types

import (
	"fmt"
	"strings"
)

// Field is a struct field: a name plus its declared type. Fields are
// not Symbols — the spec's Symbol.kind set has no separate "field"
// kind, only Struct/Enum at the declaration level (spec 3.4).
type Field struct {
	name string
	typ  Type
}

// NewField creates a struct field.
func NewField(name string, typ Type) *Field { return &Field{name: name, typ: typ} }

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Type returns the field type.
func (f *Field) Type() Type { return f.typ }

// Array represents an array type [N]Elem.
type Array struct {
	typ
	len  int64
	elem Type
}

// NewArray creates a new array type with the given length and element type.
func NewArray(len int64, elem Type) *Array {
	return &Array{len: len, elem: elem}
}

// Len returns the array length.
func (a *Array) Len() int64 { return a.len }

// Elem returns the array element type.
func (a *Array) Elem() Type { return a.elem }

// Underlying implements Type.
func (a *Array) Underlying() Type { return a }

// String implements Type.
func (a *Array) String() string {
	return fmt.Sprintf("[%d]%s", a.len, a.elem)
}

// Struct represents the structural shape of a `struct` declaration.
type Struct struct {
	typ
	fields  []*Field
	size    int64
	align   int64
	offsets []int64
}

// NewStruct creates a new struct type with the given fields.
func NewStruct(fields []*Field) *Struct {
	return &Struct{fields: fields}
}

// NumFields returns the number of fields.
func (s *Struct) NumFields() int { return len(s.fields) }

// Field returns the field at the given index.
func (s *Struct) Field(i int) *Field { return s.fields[i] }

// Fields returns all fields.
func (s *Struct) Fields() []*Field { return s.fields }

// FieldByName looks up a field by name, returning nil if absent.
func (s *Struct) FieldByName(name string) *Field {
	for _, f := range s.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Size returns the struct size in bytes. Must be called after layout
// is computed (Sizes.ComputeLayout).
func (s *Struct) Size() int64 { return s.size }

// Align returns the struct alignment in bytes.
func (s *Struct) Align() int64 { return s.align }

// Offset returns the offset of field i in bytes.
func (s *Struct) Offset(i int) int64 { return s.offsets[i] }

// SetLayout sets the computed layout information.
func (s *Struct) SetLayout(size, align int64, offsets []int64) {
	s.size = size
	s.align = align
	s.offsets = offsets
}

// LayoutDone reports whether layout has been computed.
func (s *Struct) LayoutDone() bool { return s.offsets != nil }

// Underlying implements Type.
func (s *Struct) Underlying() Type { return s }

// String implements Type.
func (s *Struct) String() string {
	var buf strings.Builder
	buf.WriteString("struct{")
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(f.Name())
		buf.WriteString(" ")
		buf.WriteString(f.Type().String())
	}
	buf.WriteString("}")
	return buf.String()
}

// Enum represents the structural shape of an `enum` declaration: an
// ordered set of variant names, each with an optional associated type
// (payload) left unset (nil) for plain C-style variants.
type Enum struct {
	typ
	variants []*Field
}

// NewEnum creates a new enum type with the given variants.
func NewEnum(variants []*Field) *Enum {
	return &Enum{variants: variants}
}

// NumVariants returns the number of variants.
func (e *Enum) NumVariants() int { return len(e.variants) }

// Variant returns the variant at index i.
func (e *Enum) Variant(i int) *Field { return e.variants[i] }

// Variants returns all variants.
func (e *Enum) Variants() []*Field { return e.variants }

// VariantByName looks up a variant by name.
func (e *Enum) VariantByName(name string) *Field {
	for _, v := range e.variants {
		if v.Name() == name {
			return v
		}
	}
	return nil
}

// Underlying implements Type.
func (e *Enum) Underlying() Type { return e }

// String implements Type.
func (e *Enum) String() string {
	var buf strings.Builder
	buf.WriteString("enum{")
	for i, v := range e.variants {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(v.Name())
	}
	buf.WriteString("}")
	return buf.String()
}

// Pointer represents a stack-scoped pointer type *T.
type Pointer struct {
	typ
	base Type
}

// NewPointer creates a new pointer type.
func NewPointer(base Type) *Pointer { return &Pointer{base: base} }

// Elem returns the base type that the pointer points to.
func (p *Pointer) Elem() Type { return p.base }

// Underlying implements Type.
func (p *Pointer) Underlying() Type { return p }

// String implements Type.
func (p *Pointer) String() string { return "*" + p.base.String() }

// Ref represents a GC-managed reference type ref T.
type Ref struct {
	typ
	base Type
}

// NewRef creates a new reference type.
func NewRef(base Type) *Ref { return &Ref{base: base} }

// Elem returns the base type that the reference points to.
func (r *Ref) Elem() Type { return r.base }

// Underlying implements Type.
func (r *Ref) Underlying() Type { return r }

// String implements Type.
func (r *Ref) String() string { return "ref " + r.base.String() }

// Func represents a function type.
type Func struct {
	typ
	params   []*Field
	result   Type // nil means void
	variadic bool
}

// NewFunc creates a new function type.
func NewFunc(params []*Field, result Type, variadic bool) *Func {
	return &Func{params: params, result: result, variadic: variadic}
}

// Params returns the parameter list.
func (f *Func) Params() []*Field { return f.params }

// NumParams returns the number of parameters.
func (f *Func) NumParams() int { return len(f.params) }

// Param returns the parameter at index i.
func (f *Func) Param(i int) *Field { return f.params[i] }

// Result returns the result type, or nil for void functions.
func (f *Func) Result() Type { return f.result }

// Variadic reports whether the final parameter accepts extra arguments.
func (f *Func) Variadic() bool { return f.variadic }

// Underlying implements Type.
func (f *Func) Underlying() Type { return f }

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	buf.WriteString("func(")
	for i, p := range f.params {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(p.Name())
		buf.WriteString(" ")
		buf.WriteString(p.Type().String())
	}
	if f.variadic {
		buf.WriteString("...")
	}
	buf.WriteString(")")
	if f.result != nil {
		buf.WriteString(" -> ")
		buf.WriteString(f.result.String())
	}
	return buf.String()
}

// Nullable wraps a type T that additionally accepts `none` (spec 3.3
// Type flag `nullable`).
type Nullable struct {
	typ
	base Type
}

// NewNullable creates a nullable wrapper around base. Wrapping an
// already-nullable type returns the same type (idempotent).
func NewNullable(base Type) *Nullable {
	if n, ok := base.(*Nullable); ok {
		return n
	}
	return &Nullable{base: base}
}

// Elem returns the wrapped, non-nullable type.
func (n *Nullable) Elem() Type { return n.base }

// Underlying implements Type.
func (n *Nullable) Underlying() Type { return n }

// String implements Type.
func (n *Nullable) String() string { return n.base.String() + "?" }
