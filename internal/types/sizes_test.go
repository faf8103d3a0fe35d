package types

import "testing"

func TestSizeof(t *testing.T) {
	sizes := DefaultSizes

	tests := []struct {
		typ  Type
		want int64
	}{
		{Typ[Bool], 1},
		{Typ[I32], 4},
		{Typ[I64], 8},
		{Typ[I128], 16},
		{Typ[F32], 4},
		{Typ[F64], 8},
		{Typ[String], 16},
		{NewPointer(Typ[I64]), 8},
		{NewRef(Typ[I64]), 8},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got := sizes.Sizeof(tt.typ)
			if got != tt.want {
				t.Errorf("Sizeof(%s) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestAlignof(t *testing.T) {
	sizes := DefaultSizes

	if got := sizes.Alignof(Typ[I128]); got != 16 {
		t.Errorf("Alignof(i128) = %d, want 16", got)
	}
	if got := sizes.Alignof(NewPointer(Typ[I64])); got != 8 {
		t.Errorf("Alignof(*i64) = %d, want 8", got)
	}
}

func TestArraySize(t *testing.T) {
	sizes := DefaultSizes
	arr := NewArray(10, Typ[I64])
	if got := sizes.Sizeof(arr); got != 80 {
		t.Errorf("Sizeof(%s) = %d, want 80", arr, got)
	}
}

func TestStructLayout(t *testing.T) {
	sizes := DefaultSizes

	// struct { a i64; b bool; c i64 }
	// offset 0: a (8 bytes); offset 8: b (1 byte) + 7 padding; offset 16: c
	fields := []*Field{
		NewField("a", Typ[I64]),
		NewField("b", Typ[Bool]),
		NewField("c", Typ[I64]),
	}
	st := NewStruct(fields)
	sizes.ComputeLayout(st)

	if st.Offset(0) != 0 || st.Offset(1) != 8 || st.Offset(2) != 16 {
		t.Errorf("offsets = %d,%d,%d", st.Offset(0), st.Offset(1), st.Offset(2))
	}
	if st.Size() != 24 || st.Align() != 8 {
		t.Errorf("Size/Align = %d/%d, want 24/8", st.Size(), st.Align())
	}
}

func TestStructLayoutCompact(t *testing.T) {
	sizes := DefaultSizes
	fields := []*Field{NewField("a", Typ[Bool]), NewField("b", Typ[Bool]), NewField("c", Typ[Bool])}
	st := NewStruct(fields)
	sizes.ComputeLayout(st)

	if st.Size() != 3 || st.Align() != 1 {
		t.Errorf("Size/Align = %d/%d, want 3/1", st.Size(), st.Align())
	}
}

func TestStructLayoutEmpty(t *testing.T) {
	sizes := DefaultSizes
	st := NewStruct(nil)
	sizes.ComputeLayout(st)
	if st.Size() != 0 || st.Align() != 1 {
		t.Errorf("Size/Align = %d/%d, want 0/1", st.Size(), st.Align())
	}
}

func TestNestedStructLayout(t *testing.T) {
	sizes := DefaultSizes

	inner := NewStruct([]*Field{NewField("x", Typ[I64]), NewField("y", Typ[I64])})
	sizes.ComputeLayout(inner)

	outer := NewStruct([]*Field{NewField("a", Typ[Bool]), NewField("inner", inner)})
	sizes.ComputeLayout(outer)

	if outer.Offset(0) != 0 || outer.Offset(1) != 8 {
		t.Errorf("offsets = %d,%d", outer.Offset(0), outer.Offset(1))
	}
	if outer.Size() != 24 {
		t.Errorf("Size() = %d, want 24", outer.Size())
	}
}

func TestLayoutIdempotent(t *testing.T) {
	sizes := DefaultSizes
	st := NewStruct([]*Field{NewField("a", Typ[I32])})
	sizes.ComputeLayout(st)
	before := st.Size()
	sizes.ComputeLayout(st) // should be a no-op
	if st.Size() != before {
		t.Error("ComputeLayout must be idempotent")
	}
}
