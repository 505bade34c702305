package wire

// Package wire defines the kind-tagged JSON image used by the fixture codec.
// This package is internal and not part of the public API; it carries no
// behavior so the codec owns all conversion and validation.

// Type is the JSON image of a type descriptor. Kind selects which of the
// remaining fields are meaningful.
type Type struct {
	Kind string `json:"kind"`

	// integer / float
	Width  int    `json:"width,omitempty"`
	Signed bool   `json:"signed,omitempty"`
	Order  string `json:"order,omitempty"` // "BE" | "LE"

	// string
	Variable bool   `json:"variable,omitempty"`
	Length   uint64 `json:"length,omitempty"`

	// reference
	Region bool `json:"region,omitempty"`

	// compound
	Members []Member `json:"members,omitempty"`

	// enum
	EnumMembers []EnumMember `json:"enum_members,omitempty"`

	// array
	Dims []uint64 `json:"dims,omitempty"`
	Elem *Type    `json:"elem,omitempty"`
}

// Member maps a compound member to its name, offset and nested type.
type Member struct {
	Name   string `json:"name"`
	Offset uint64 `json:"offset"`
	Type   Type   `json:"type"`
}

// EnumMember maps an enum constant to its name and value.
type EnumMember struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

// Shape is the JSON image of a layout shape. MaxExtents entries equal to
// ^uint64(0) denote an unlimited declared maximum.
type Shape struct {
	Extents    []uint64 `json:"extents"`
	MaxExtents []uint64 `json:"max_extents,omitempty"`
}
