package typerand

import "gopkg.in/yaml.v3"

// Limits carries the generation ceilings. The zero value of any field means
// "use the default"; see DefaultLimits for the published constants.
type Limits struct {
	// MaxTypeSize is the declared ceiling on the byte footprint of a
	// generated type. It is published for harness bookkeeping but not yet
	// enforced during generation.
	// TODO: enforce MaxTypeSize once variable-length member footprints can
	// be bounded up front.
	MaxTypeSize uint64 `yaml:"max_type_size"`

	// MaxRecursionDepth bounds nested compound/array generation across the
	// whole call tree. Past it, recursive kinds re-roll into flat ones.
	MaxRecursionDepth int `yaml:"max_recursion_depth"`

	// MaxCompoundMembers caps the member count of a generated compound.
	MaxCompoundMembers int `yaml:"max_compound_members"`

	// MaxArrayDims caps the rank of a generated array type.
	MaxArrayDims int `yaml:"max_array_dims"`

	// MaxEnumNameLen caps the byte length of a generated enum member name.
	MaxEnumNameLen int `yaml:"max_enum_name_len"`

	// MaxEnumMembers caps the member count of a generated enum.
	MaxEnumMembers int `yaml:"max_enum_members"`

	// MaxStringSize bounds fixed string lengths: generated lengths lie in
	// [0, MaxStringSize).
	MaxStringSize int `yaml:"max_string_size"`

	// MaxDimSize bounds every generated extent, for array types and layout
	// shapes alike: extents lie in [1, MaxDimSize].
	MaxDimSize int `yaml:"max_dim_size"`
}

// DefaultLimits returns the published generation ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxTypeSize:        65536,
		MaxRecursionDepth:  3,
		MaxCompoundMembers: 4,
		MaxArrayDims:       4,
		MaxEnumNameLen:     256,
		MaxEnumMembers:     16,
		MaxStringSize:      1024,
		MaxDimSize:         16,
	}
}

// withDefaults fills unset (zero or negative) fields from DefaultLimits.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxTypeSize == 0 {
		l.MaxTypeSize = d.MaxTypeSize
	}
	if l.MaxRecursionDepth <= 0 {
		l.MaxRecursionDepth = d.MaxRecursionDepth
	}
	if l.MaxCompoundMembers <= 0 {
		l.MaxCompoundMembers = d.MaxCompoundMembers
	}
	if l.MaxArrayDims <= 0 {
		l.MaxArrayDims = d.MaxArrayDims
	}
	if l.MaxEnumNameLen <= 0 {
		l.MaxEnumNameLen = d.MaxEnumNameLen
	}
	if l.MaxEnumMembers <= 0 {
		l.MaxEnumMembers = d.MaxEnumMembers
	}
	if l.MaxStringSize <= 0 {
		l.MaxStringSize = d.MaxStringSize
	}
	if l.MaxDimSize <= 0 {
		l.MaxDimSize = d.MaxDimSize
	}
	return l
}

// LimitsFromYAML decodes a ceilings profile. Omitted fields keep their
// defaults, so a profile only needs to name what it changes.
func LimitsFromYAML(data []byte) (Limits, error) {
	l := DefaultLimits()
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Limits{}, Issues{{Path: "/", Code: CodeParseError, Message: "invalid limits profile", Cause: err}}
	}
	return l.withDefaults(), nil
}
