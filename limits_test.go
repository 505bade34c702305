package typerand_test

import (
	"testing"

	typerand "github.com/conformkit/typerand"
)

func TestDefaultLimits(t *testing.T) {
	l := typerand.DefaultLimits()
	if l.MaxTypeSize != 65536 {
		t.Fatalf("MaxTypeSize = %d, want 65536", l.MaxTypeSize)
	}
	if l.MaxRecursionDepth != 3 {
		t.Fatalf("MaxRecursionDepth = %d, want 3", l.MaxRecursionDepth)
	}
	if l.MaxCompoundMembers != 4 {
		t.Fatalf("MaxCompoundMembers = %d, want 4", l.MaxCompoundMembers)
	}
	if l.MaxArrayDims != 4 {
		t.Fatalf("MaxArrayDims = %d, want 4", l.MaxArrayDims)
	}
	if l.MaxEnumNameLen != 256 {
		t.Fatalf("MaxEnumNameLen = %d, want 256", l.MaxEnumNameLen)
	}
	if l.MaxEnumMembers != 16 {
		t.Fatalf("MaxEnumMembers = %d, want 16", l.MaxEnumMembers)
	}
	if l.MaxStringSize != 1024 {
		t.Fatalf("MaxStringSize = %d, want 1024", l.MaxStringSize)
	}
	if l.MaxDimSize != 16 {
		t.Fatalf("MaxDimSize = %d, want 16", l.MaxDimSize)
	}
}

func TestLimitsFromYAML(t *testing.T) {
	l, err := typerand.LimitsFromYAML([]byte("max_dim_size: 4\nmax_enum_members: 8\n"))
	if err != nil {
		t.Fatalf("LimitsFromYAML failed: %v", err)
	}
	if l.MaxDimSize != 4 || l.MaxEnumMembers != 8 {
		t.Fatalf("profile values not applied: %+v", l)
	}
	// Omitted fields keep their defaults.
	if l.MaxStringSize != 1024 || l.MaxRecursionDepth != 3 {
		t.Fatalf("omitted fields lost their defaults: %+v", l)
	}
}

func TestLimitsFromYAMLRejectsGarbage(t *testing.T) {
	if _, err := typerand.LimitsFromYAML([]byte("max_dim_size: [")); err == nil {
		t.Fatal("want error for malformed profile")
	}
}
