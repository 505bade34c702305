package typerand

import "fmt"

// ArrayType is a fixed-shape array of a single element type. It owns its
// element descriptor.
type ArrayType struct {
	Elem Descriptor
	Dims []uint64
}

// NewArray builds an array type over elem with the given extents. Rank must
// be at least one and every extent positive; it returns invalid_argument
// Issues otherwise. On success the array takes ownership of elem.
func NewArray(elem Descriptor, dims []uint64) (*ArrayType, error) {
	if elem == nil {
		return nil, invalidArgumentf("/element", "element type is nil")
	}
	if len(dims) == 0 {
		return nil, invalidArgumentf("/", "array needs at least one dimension")
	}
	for i, d := range dims {
		if d == 0 {
			return nil, invalidArgumentf(fmt.Sprintf("/dim/%d", i), "extent must be positive")
		}
	}
	return &ArrayType{Elem: elem, Dims: dims}, nil
}

func (t *ArrayType) Kind() TypeKind { return KindArray }

// Size is the element size times the product of all extents.
func (t *ArrayType) Size() uint64 {
	if t == nil || t.Elem == nil {
		return 0
	}
	total := t.Elem.Size()
	for _, d := range t.Dims {
		total *= d
	}
	return total
}

func (t *ArrayType) Release() {
	if t == nil {
		return
	}
	if t.Elem != nil {
		t.Elem.Release()
		t.Elem = nil
	}
	t.Dims = nil
}

func (t *ArrayType) Equal(other Descriptor) bool {
	o, ok := other.(*ArrayType)
	if !ok || t == nil || o == nil {
		return false
	}
	if len(t.Dims) != len(o.Dims) {
		return false
	}
	for i, d := range t.Dims {
		if d != o.Dims[i] {
			return false
		}
	}
	if t.Elem == nil || o.Elem == nil {
		return t.Elem == nil && o.Elem == nil
	}
	return t.Elem.Equal(o.Elem)
}
