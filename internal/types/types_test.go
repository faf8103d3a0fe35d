package types

import "testing"

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		kind BasicKind
		name string
		info BasicInfo
	}{
		{Bool, "bool", IsBoolean},
		{I32, "i32", IsInteger | IsNumeric},
		{I64, "i64", IsInteger | IsNumeric},
		{I128, "i128", IsInteger | IsNumeric},
		{F32, "f32", IsFloat | IsNumeric},
		{F64, "f64", IsFloat | IsNumeric},
		{Char, "char", IsChar},
		{String, "str", IsString},
		{Void, "void", 0},
		{Any, "any", 0},
		{UnkInt, "untyped int", IsInteger | IsNumeric | IsUntyped},
		{UnkFloat, "untyped float", IsFloat | IsNumeric | IsUntyped},
		{UntypedNil, "untyped nil", IsUntyped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := Typ[tt.kind]
			if typ == nil {
				t.Fatalf("Typ[%d] is nil", tt.kind)
			}
			if typ.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", typ.Kind(), tt.kind)
			}
			if typ.Info() != tt.info {
				t.Errorf("Info() = %v, want %v", typ.Info(), tt.info)
			}
			if typ.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", typ.Name(), tt.name)
			}
			if typ.Underlying() != typ {
				t.Errorf("Underlying() != self")
			}
		})
	}
}

func TestArrayType(t *testing.T) {
	elem := Typ[I64]
	arr := NewArray(10, elem)

	if arr.Len() != 10 {
		t.Errorf("Len() = %d, want 10", arr.Len())
	}
	if arr.Elem() != elem {
		t.Errorf("Elem() != expected element type")
	}
	if arr.String() != "[10]i64" {
		t.Errorf("String() = %q, want %q", arr.String(), "[10]i64")
	}
}

func TestPointerAndRefType(t *testing.T) {
	base := Typ[I64]
	ptr := NewPointer(base)
	ref := NewRef(base)

	if ptr.Elem() != base || ptr.String() != "*i64" {
		t.Errorf("pointer type wrong: %s", ptr)
	}
	if ref.Elem() != base || ref.String() != "ref i64" {
		t.Errorf("ref type wrong: %s", ref)
	}
	if Identical(ptr, ref) {
		t.Error("pointer and ref must never be identical")
	}
}

func TestNullableType(t *testing.T) {
	n := NewNullable(Typ[String])
	if !IsNullable(n) {
		t.Error("expected nullable")
	}
	if NonNullable(n) != Typ[String] {
		t.Error("NonNullable should strip the wrapper")
	}
	if n.String() != "str?" {
		t.Errorf("String() = %q, want %q", n.String(), "str?")
	}
	// wrapping twice is idempotent
	if NewNullable(n) != n {
		t.Error("NewNullable(Nullable) should return the same wrapper")
	}
}

func TestStructType(t *testing.T) {
	fields := []*Field{
		NewField("x", Typ[I64]),
		NewField("y", Typ[F64]),
	}
	st := NewStruct(fields)

	if st.NumFields() != 2 {
		t.Errorf("NumFields() = %d, want 2", st.NumFields())
	}
	if st.FieldByName("y").Type() != Typ[F64] {
		t.Error("FieldByName(y) wrong type")
	}
	expected := "struct{x i64; y f64}"
	if st.String() != expected {
		t.Errorf("String() = %q, want %q", st.String(), expected)
	}
}

func TestEnumType(t *testing.T) {
	e := NewEnum([]*Field{NewField("Red", nil), NewField("Blue", nil)})
	if e.NumVariants() != 2 {
		t.Errorf("NumVariants() = %d, want 2", e.NumVariants())
	}
	if e.VariantByName("Blue") == nil {
		t.Error("expected Blue variant")
	}
}

func TestFuncType(t *testing.T) {
	params := []*Field{NewField("a", Typ[I64]), NewField("b", Typ[F64])}
	fn := NewFunc(params, Typ[Bool], false)

	if fn.NumParams() != 2 {
		t.Errorf("NumParams() = %d, want 2", fn.NumParams())
	}
	if fn.Result() != Typ[Bool] {
		t.Error("Result() wrong")
	}
	expected := "func(a i64, b f64) -> bool"
	if fn.String() != expected {
		t.Errorf("String() = %q, want %q", fn.String(), expected)
	}
}

func TestFuncTypeVoidVariadic(t *testing.T) {
	fn := NewFunc([]*Field{NewField("args", Typ[Any])}, nil, true)
	if fn.Result() != nil {
		t.Error("Result() should be nil for void function")
	}
	if !fn.Variadic() {
		t.Error("expected variadic")
	}
	expected := "func(args any...)"
	if fn.String() != expected {
		t.Errorf("String() = %q, want %q", fn.String(), expected)
	}
}

func TestNamedType(t *testing.T) {
	sym := NewSymbol(SymStruct, "Point", NoPos)
	st := NewStruct([]*Field{NewField("x", Typ[I64]), NewField("y", Typ[I64])})
	named := NewNamed(sym, st)

	if named.Obj() != sym {
		t.Error("Obj() != expected symbol")
	}
	if named.Underlying() != st {
		t.Error("Underlying() != struct")
	}
	if named.String() != "Point" {
		t.Errorf("String() = %q, want %q", named.String(), "Point")
	}
	if sym.Type != named {
		t.Error("NewNamed should bind the symbol's Type back to itself")
	}
}

func TestIdenticalNamed(t *testing.T) {
	sym1 := NewSymbol(SymStruct, "T", NoPos)
	sym2 := NewSymbol(SymStruct, "T", NoPos)

	n1 := NewNamed(sym1, Typ[I64])
	n2 := NewNamed(sym1, Typ[I64])
	n3 := NewNamed(sym2, Typ[I64])

	if !Identical(n1, n2) {
		t.Error("same declaring symbol should be identical")
	}
	if Identical(n1, n3) {
		t.Error("different declaring symbol, same name, must not be identical")
	}
}

func TestNestedTypes(t *testing.T) {
	// [5]*ref i64
	ref := NewRef(Typ[I64])
	ptr := NewPointer(ref)
	arr := NewArray(5, ptr)

	expected := "[5]*ref i64"
	if arr.String() != expected {
		t.Errorf("String() = %q, want %q", arr.String(), expected)
	}
}
