package types

// Identical reports whether x and y are identical types. Named types
// (struct/enum) are identical only when they share the same declaring
// symbol (spec 4.3.4: "Object types match by resolved symbol identity").
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x, y)
}

func identical(x, y Type) bool {
	xn, xNamed := x.(*Named)
	yn, yNamed := y.(*Named)
	if xNamed && yNamed {
		return xn.obj == yn.obj
	}
	if xNamed != yNamed {
		return false
	}

	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.len == y.len && Identical(x.elem, y.elem)
		}
	case *Struct:
		if y, ok := y.(*Struct); ok {
			return identicalStructs(x, y)
		}
	case *Enum:
		if y, ok := y.(*Enum); ok {
			return identicalEnums(x, y)
		}
	case *Pointer:
		if y, ok := y.(*Pointer); ok {
			return Identical(x.base, y.base)
		}
	case *Ref:
		if y, ok := y.(*Ref); ok {
			return Identical(x.base, y.base)
		}
	case *Nullable:
		if y, ok := y.(*Nullable); ok {
			return Identical(x.base, y.base)
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalFuncs(x, y)
		}
	}
	return false
}

func identicalStructs(x, y *Struct) bool {
	if len(x.fields) != len(y.fields) {
		return false
	}
	for i := range x.fields {
		if x.fields[i].Name() != y.fields[i].Name() {
			return false
		}
		if !Identical(x.fields[i].Type(), y.fields[i].Type()) {
			return false
		}
	}
	return true
}

func identicalEnums(x, y *Enum) bool {
	if len(x.variants) != len(y.variants) {
		return false
	}
	for i := range x.variants {
		if x.variants[i].Name() != y.variants[i].Name() {
			return false
		}
	}
	return true
}

func identicalFuncs(x, y *Func) bool {
	if len(x.params) != len(y.params) {
		return false
	}
	for i := range x.params {
		if !Identical(x.params[i].Type(), y.params[i].Type()) {
			return false
		}
	}
	if (x.result == nil) != (y.result == nil) {
		return false
	}
	if x.result != nil && !Identical(x.result, y.result) {
		return false
	}
	return x.variadic == y.variadic
}

// IsNullable reports whether T is a Nullable wrapper.
func IsNullable(T Type) bool {
	_, ok := T.(*Nullable)
	return ok
}

// NonNullable strips a Nullable wrapper, returning T unchanged if it
// isn't nullable.
func NonNullable(T Type) Type {
	if n, ok := T.(*Nullable); ok {
		return n.base
	}
	return T
}

// IsNil reports whether T is the untyped `none` type.
func IsNil(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.kind == UntypedNil
}

// isUntyped reports whether T is an untyped literal type (UnkInt,
// UnkFloat, or untyped nil).
func isUntyped(T Type) bool {
	b, ok := T.(*Basic)
	return ok && b.info&IsUntyped != 0
}

// IsUntypedType is the exported form of isUntyped.
func IsUntypedType(T Type) bool { return isUntyped(T) }

// isInteger reports whether T is any integer kind, typed or untyped.
func isInteger(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.info&IsInteger != 0
}

// isFloat reports whether T is any float kind, typed or untyped.
func isFloat(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.info&IsFloat != 0
}

// isNumeric reports whether T is an integer or float kind.
func isNumeric(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.info&IsNumeric != 0
}

// IsNumericType exports isNumeric.
func IsNumericType(T Type) bool { return isNumeric(T) }

// IsIntegerType exports isInteger.
func IsIntegerType(T Type) bool { return isInteger(T) }

// IsFloatType exports isFloat.
func IsFloatType(T Type) bool { return isFloat(T) }

// isStringType reports whether T is the string type.
func isStringType(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	return ok && b.info&IsString != 0
}

// IsPointer reports whether T is a pointer type (*T).
func IsPointer(T Type) bool {
	_, ok := T.Underlying().(*Pointer)
	return ok
}

// IsRef reports whether T is a reference type (ref T).
func IsRef(T Type) bool {
	_, ok := T.Underlying().(*Ref)
	return ok
}

// IsPointerOrRef reports whether T is a pointer or reference type.
func IsPointerOrRef(T Type) bool {
	return IsPointer(T) || IsRef(T)
}

// IntWidth returns the index of kind within IntWidths (0 = narrowest),
// or -1 if kind is not an integer kind.
func IntWidth(kind BasicKind) int {
	for i, k := range IntWidths {
		if k == kind {
			return i
		}
	}
	return -1
}

// FloatWidth returns the index of kind within FloatWidths, or -1.
func FloatWidth(kind BasicKind) int {
	for i, k := range FloatWidths {
		if k == kind {
			return i
		}
	}
	return -1
}

// DefaultType returns the default concrete type for an untyped literal
// type (UnkInt -> I64, UnkFloat -> F64). Typed types are returned
// unchanged.
func DefaultType(T Type) Type {
	b, ok := T.(*Basic)
	if !ok {
		return T
	}
	switch b.kind {
	case UnkInt:
		return Typ[I64]
	case UnkFloat:
		return Typ[F64]
	default:
		return T
	}
}

// Comparable reports whether values of type T can be compared with == or !=.
func Comparable(T Type) bool {
	switch t := T.Underlying().(type) {
	case *Basic:
		return t.kind != Invalid && t.kind != Void
	case *Pointer, *Ref:
		return true
	case *Array:
		return Comparable(t.elem)
	case *Struct:
		for _, f := range t.fields {
			if !Comparable(f.Type()) {
				return false
			}
		}
		return true
	case *Enum:
		return true
	default:
		return false
	}
}

// Ordered reports whether values of type T can be ordered with <, <=, >, >=.
func Ordered(T Type) bool {
	b, ok := T.Underlying().(*Basic)
	if !ok {
		return false
	}
	return b.info&(IsNumeric|IsString|IsChar) != 0
}
