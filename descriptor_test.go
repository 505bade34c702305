package typerand_test

import (
	"fmt"
	"testing"

	typerand "github.com/conformkit/typerand"
)

// compoundOf lays members out back to back, computing offsets the way the
// generator does.
func compoundOf(t *testing.T, types ...typerand.Descriptor) *typerand.CompoundType {
	t.Helper()
	members := make([]typerand.Member, len(types))
	var offset uint64
	for i, d := range types {
		members[i] = typerand.Member{Name: memberName(i), Offset: offset, Type: d}
		offset += d.Size()
	}
	c, err := typerand.NewCompound(members)
	if err != nil {
		t.Fatalf("NewCompound failed: %v", err)
	}
	return c
}

func memberName(i int) string {
	return fmt.Sprintf("compound_member%d", i)
}

func TestDescriptorSizes(t *testing.T) {
	i16 := typerand.PredefinedIntegers[2].Clone() // 16-bit signed BE
	if got := i16.Size(); got != 2 {
		t.Fatalf("16-bit integer size = %d, want 2", got)
	}
	f64 := typerand.PredefinedFloats[3].Clone() // 64-bit LE
	if got := f64.Size(); got != 8 {
		t.Fatalf("64-bit float size = %d, want 8", got)
	}
	if got := typerand.FixedString(10).Size(); got != 10 {
		t.Fatalf("fixed string size = %d, want 10", got)
	}
	if got := typerand.VariableString().Size(); got != 8 {
		t.Fatalf("variable string size = %d, want handle size 8", got)
	}
	if got := typerand.ObjectReference().Size(); got != 8 {
		t.Fatalf("object reference size = %d, want handle size 8", got)
	}

	e, err := typerand.NewEnum([]typerand.EnumMember{{Name: "enum_val0", Value: 3}})
	if err != nil {
		t.Fatalf("NewEnum failed: %v", err)
	}
	if got := e.Size(); got != 4 {
		t.Fatalf("enum size = %d, want native int32 size 4", got)
	}

	a, err := typerand.NewArray(i16.Clone(), []uint64{2, 3})
	if err != nil {
		t.Fatalf("NewArray failed: %v", err)
	}
	if got := a.Size(); got != 12 {
		t.Fatalf("2x3 array of int16 size = %d, want 12", got)
	}

	c := compoundOf(t, i16, f64, typerand.FixedString(5))
	if got := c.Size(); got != 2+8+5 {
		t.Fatalf("compound size = %d, want 15", got)
	}
	if c.Members[1].Offset != 2 || c.Members[2].Offset != 10 {
		t.Fatalf("compound offsets = %d,%d, want 2,10", c.Members[1].Offset, c.Members[2].Offset)
	}
}

func TestNewCompoundRejectsBrokenOffsets(t *testing.T) {
	i32 := typerand.PredefinedIntegers[4].Clone()
	_, err := typerand.NewCompound([]typerand.Member{
		{Name: "compound_member0", Offset: 0, Type: i32},
		{Name: "compound_member1", Offset: 3, Type: i32.Clone()}, // want 4
	})
	if !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for broken offsets, got %v", err)
	}

	if _, err := typerand.NewCompound(nil); !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for empty compound, got %v", err)
	}

	_, err = typerand.NewCompound([]typerand.Member{{Name: "", Offset: 0, Type: i32}})
	if !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for unnamed member, got %v", err)
	}
}

func TestNewEnumRejectsBadMembers(t *testing.T) {
	if _, err := typerand.NewEnum(nil); !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for empty enum, got %v", err)
	}
	_, err := typerand.NewEnum([]typerand.EnumMember{
		{Name: "enum_val0", Value: 1},
		{Name: "enum_val0", Value: 2},
	})
	if !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for duplicate names, got %v", err)
	}
}

func TestNewArrayRejectsBadShape(t *testing.T) {
	i8 := typerand.PredefinedIntegers[0].Clone()
	if _, err := typerand.NewArray(nil, []uint64{2}); !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for nil element, got %v", err)
	}
	if _, err := typerand.NewArray(i8, nil); !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for rank 0, got %v", err)
	}
	if _, err := typerand.NewArray(i8, []uint64{2, 0}); !typerand.IsInvalidArgument(err) {
		t.Fatalf("want invalid_argument for zero extent, got %v", err)
	}
}

func TestReleaseIsIdempotentAndTransitive(t *testing.T) {
	inner, err := typerand.NewArray(typerand.PredefinedFloats[0].Clone(), []uint64{4})
	if err != nil {
		t.Fatalf("NewArray failed: %v", err)
	}
	c := compoundOf(t, inner, typerand.VariableString())

	c.Release()
	if c.Members != nil {
		t.Fatal("release did not drop compound members")
	}
	if inner.Elem != nil {
		t.Fatal("release did not propagate to owned array element")
	}
	c.Release() // second release is a no-op

	// Nil handles are no-ops, not faults.
	var nc *typerand.CompoundType
	nc.Release()
	var na *typerand.ArrayType
	na.Release()
	var ns *typerand.Shape
	ns.Release()
}

func TestPredefinedCatalogClonesAreIndependent(t *testing.T) {
	seen := make(map[typerand.IntegerType]struct{})
	for _, v := range typerand.PredefinedIntegers {
		if _, dup := seen[v]; dup {
			t.Fatalf("duplicate predefined integer variant %+v", v)
		}
		seen[v] = struct{}{}
	}
	if len(seen) != 16 {
		t.Fatalf("predefined integer catalog has %d variants, want 16", len(seen))
	}

	clone := typerand.PredefinedIntegers[0].Clone()
	clone.Width = 64
	if typerand.PredefinedIntegers[0].Width != 8 {
		t.Fatal("mutating a clone changed the catalog entry")
	}
}

func TestStructuralEqual(t *testing.T) {
	a := compoundOf(t, typerand.PredefinedIntegers[5].Clone(), typerand.FixedString(3))
	b := compoundOf(t, typerand.PredefinedIntegers[5].Clone(), typerand.FixedString(3))
	if !a.Equal(b) {
		t.Fatal("structurally identical compounds compare unequal")
	}

	c := compoundOf(t, typerand.PredefinedIntegers[5].Clone(), typerand.FixedString(4))
	if a.Equal(c) {
		t.Fatal("compounds with different string lengths compare equal")
	}
	if a.Equal(typerand.VariableString()) {
		t.Fatal("compound compares equal to a string type")
	}
	if !typerand.ObjectReference().Equal(typerand.ObjectReference()) {
		t.Fatal("object references compare unequal")
	}
}
