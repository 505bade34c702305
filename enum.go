package typerand

import "fmt"

// enumBaseSize is the footprint of the fixed native signed 32-bit backing
// integer of every enum type.
const enumBaseSize = 4

// EnumMember is one named constant of an enum type. Values may repeat; names
// may not.
type EnumMember struct {
	Name  string
	Value int32
}

// EnumType is an enumeration backed by a native signed 32-bit integer.
type EnumType struct {
	Members []EnumMember
}

// NewEnum builds an enum from members with pairwise distinct, non-empty
// names. It returns invalid_argument Issues otherwise.
func NewEnum(members []EnumMember) (*EnumType, error) {
	if len(members) == 0 {
		return nil, invalidArgumentf("/", "enum needs at least one member")
	}
	seen := make(map[string]struct{}, len(members))
	for i, m := range members {
		path := fmt.Sprintf("/member/%d", i)
		if m.Name == "" {
			return nil, invalidArgumentf(path, "member name is empty")
		}
		if _, dup := seen[m.Name]; dup {
			return nil, invalidArgumentf(path, "duplicate member name %q", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return &EnumType{Members: members}, nil
}

func (t *EnumType) Kind() TypeKind { return KindEnum }
func (t *EnumType) Size() uint64 {
	if t == nil {
		return 0
	}
	return enumBaseSize
}

func (t *EnumType) Release() {
	if t == nil {
		return
	}
	t.Members = nil
}

func (t *EnumType) Equal(other Descriptor) bool {
	o, ok := other.(*EnumType)
	if !ok || t == nil || o == nil {
		return false
	}
	if len(t.Members) != len(o.Members) {
		return false
	}
	for i, m := range t.Members {
		if m != o.Members[i] {
			return false
		}
	}
	return true
}
