package typerand

import "fmt"

// Member is one named, typed field of a compound type. Offset is the byte
// position of the member inside the compound's flat layout.
type Member struct {
	Name   string
	Offset uint64
	Type   Descriptor
}

// CompoundType is an ordered record of named members laid out back to back.
// It owns its member descriptors.
type CompoundType struct {
	Members []Member
}

// NewCompound builds a compound from members whose offsets must already form
// the running sum of the preceding member sizes. It returns invalid_argument
// Issues otherwise; on success the compound takes ownership of the member
// descriptors.
func NewCompound(members []Member) (*CompoundType, error) {
	if len(members) == 0 {
		return nil, invalidArgumentf("/", "compound needs at least one member")
	}
	var offset uint64
	for i, m := range members {
		path := fmt.Sprintf("/member/%d", i)
		if m.Name == "" {
			return nil, invalidArgumentf(path, "member name is empty")
		}
		if m.Type == nil {
			return nil, invalidArgumentf(path, "member type is nil")
		}
		if m.Offset != offset {
			return nil, invalidArgumentf(path, "offset %d breaks the running sum (want %d)", m.Offset, offset)
		}
		offset += m.Type.Size()
	}
	return &CompoundType{Members: members}, nil
}

func (t *CompoundType) Kind() TypeKind { return KindCompound }

// Size is the sum of all member sizes.
func (t *CompoundType) Size() uint64 {
	if t == nil {
		return 0
	}
	var total uint64
	for _, m := range t.Members {
		total += m.Type.Size()
	}
	return total
}

func (t *CompoundType) Release() {
	if t == nil {
		return
	}
	for _, m := range t.Members {
		m.Type.Release()
	}
	t.Members = nil
}

func (t *CompoundType) Equal(other Descriptor) bool {
	o, ok := other.(*CompoundType)
	if !ok || t == nil || o == nil {
		return false
	}
	if len(t.Members) != len(o.Members) {
		return false
	}
	for i, m := range t.Members {
		om := o.Members[i]
		if m.Name != om.Name || m.Offset != om.Offset || !m.Type.Equal(om.Type) {
			return false
		}
	}
	return true
}
