package types

// ABI size/alignment constants. These used to live in a standalone
// rtabi package shared with a code generator; since code generation is
// an external collaborator this front end never drives (spec 1), the
// constants are folded directly into the one place that still needs
// them: struct layout, computed when a struct declaration is analyzed.
const (
	sizeBool  int64 = 1
	sizeI32   int64 = 4
	sizeI64   int64 = 8
	sizeI128  int64 = 16
	sizeF32   int64 = 4
	sizeF64   int64 = 8
	sizeChar  int64 = 4 // unicode code point
	sizePtr   int64 = 8
	sizeSlice int64 = 16 // { ptr, len }

	alignBool int64 = 1
	alignI32  int64 = 4
	alignI64  int64 = 8
	alignI128 int64 = 16
	alignF32  int64 = 4
	alignF64  int64 = 8
	alignChar int64 = 4
	alignPtr  int64 = 8
)

// Sizes provides size and alignment calculations for types.
type Sizes struct{}

// DefaultSizes is the default Sizes implementation.
var DefaultSizes = &Sizes{}

// Sizeof returns the size of type T in bytes.
func (s *Sizes) Sizeof(T Type) int64 {
	switch t := T.Underlying().(type) {
	case *Basic:
		return s.basicSize(t.Kind())
	case *Array:
		return t.Len() * s.Sizeof(t.Elem())
	case *Struct:
		s.ComputeLayout(t)
		return t.Size()
	case *Enum:
		return sizeI32
	case *Pointer, *Ref:
		return sizePtr
	case *Func:
		return sizePtr
	case *Nullable:
		return s.Sizeof(t.base)
	case *Named:
		return s.Sizeof(t.Underlying())
	}
	return 0
}

// Alignof returns the alignment of type T in bytes.
func (s *Sizes) Alignof(T Type) int64 {
	switch t := T.Underlying().(type) {
	case *Basic:
		return s.basicAlign(t.Kind())
	case *Array:
		if t.Len() == 0 {
			return 1
		}
		return s.Alignof(t.Elem())
	case *Struct:
		s.ComputeLayout(t)
		return t.Align()
	case *Enum:
		return alignI32
	case *Pointer, *Ref:
		return alignPtr
	case *Func:
		return alignPtr
	case *Nullable:
		return s.Alignof(t.base)
	case *Named:
		return s.Alignof(t.Underlying())
	}
	return 1
}

// Offsetof returns the offset of field i in struct type T.
func (s *Sizes) Offsetof(T *Struct, i int) int64 {
	s.ComputeLayout(T)
	return T.Offset(i)
}

// ComputeLayout computes the size, alignment, and field offsets for a
// struct. Idempotent: safe to call multiple times.
func (s *Sizes) ComputeLayout(st *Struct) {
	if st.LayoutDone() {
		return
	}

	var offset int64
	var maxAlign int64 = 1
	offsets := make([]int64, len(st.fields))

	for i, f := range st.fields {
		fieldSize := s.Sizeof(f.Type())
		fieldAlign := s.Alignof(f.Type())

		offset = align(offset, fieldAlign)
		offsets[i] = offset
		offset += fieldSize

		if fieldAlign > maxAlign {
			maxAlign = fieldAlign
		}
	}

	size := align(offset, maxAlign)
	st.SetLayout(size, maxAlign, offsets)
}

// basicSize returns the size of a basic type in bytes.
func (s *Sizes) basicSize(kind BasicKind) int64 {
	switch kind {
	case Bool:
		return sizeBool
	case I32:
		return sizeI32
	case I64:
		return sizeI64
	case I128:
		return sizeI128
	case F32:
		return sizeF32
	case F64:
		return sizeF64
	case Char:
		return sizeChar
	case String:
		return sizeSlice
	default:
		return 0 // untyped/void/any have no concrete size
	}
}

// basicAlign returns the alignment of a basic type in bytes.
func (s *Sizes) basicAlign(kind BasicKind) int64 {
	switch kind {
	case Bool:
		return alignBool
	case I32:
		return alignI32
	case I64:
		return alignI64
	case I128:
		return alignI128
	case F32:
		return alignF32
	case F64:
		return alignF64
	case Char:
		return alignChar
	case String:
		return alignPtr
	default:
		return 1
	}
}

// align returns x rounded up to a multiple of a.
func align(x, a int64) int64 {
	return (x + a - 1) &^ (a - 1)
}
