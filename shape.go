package typerand

import "fmt"

// UnlimitedExtent marks a declared maximum extent with no upper bound.
const UnlimitedExtent = ^uint64(0)

// Shape describes a data object's layout: its rank and per-dimension current
// extents, plus optional declared maximum extents. Declared maxima bound how
// far the object may later grow; they are carried verbatim and do not
// constrain the current extents.
type Shape struct {
	extents    []uint64
	maxExtents []uint64 // nil when the layout declares no maxima
}

// NewShape builds a shape from current extents and optional declared maxima.
// Every current extent must be positive; maxExtents, when non-nil, must have
// one entry per dimension, each either positive or UnlimitedExtent. An empty
// maxExtents slice is normalized to nil: a rank-0 layout with declared
// maxima is indistinguishable from one without.
func NewShape(extents, maxExtents []uint64) (*Shape, error) {
	for i, e := range extents {
		if e == 0 {
			return nil, invalidArgumentf(fmt.Sprintf("/dim/%d", i), "extent must be positive")
		}
	}
	if maxExtents != nil {
		if len(maxExtents) != len(extents) {
			return nil, invalidArgumentf("/", "max extents count %d does not match rank %d", len(maxExtents), len(extents))
		}
		for i, m := range maxExtents {
			if m == 0 {
				return nil, invalidArgumentf(fmt.Sprintf("/max/%d", i), "declared maximum must be positive or UnlimitedExtent")
			}
		}
	}
	s := &Shape{extents: append([]uint64(nil), extents...)}
	if len(maxExtents) != 0 {
		s.maxExtents = append([]uint64(nil), maxExtents...)
	}
	return s, nil
}

// Rank reports the number of dimensions.
func (s *Shape) Rank() int {
	if s == nil {
		return 0
	}
	return len(s.extents)
}

// Extents returns a copy of the current per-dimension extents.
func (s *Shape) Extents() []uint64 {
	if s == nil {
		return nil
	}
	return append([]uint64(nil), s.extents...)
}

// MaxExtents returns a copy of the declared maximum extents, or nil when the
// layout declares none.
func (s *Shape) MaxExtents() []uint64 {
	if s == nil || s.maxExtents == nil {
		return nil
	}
	return append([]uint64(nil), s.maxExtents...)
}

// Release frees the shape. Releasing an already-released or nil shape is a
// no-op.
func (s *Shape) Release() {
	if s == nil {
		return
	}
	s.extents = nil
	s.maxExtents = nil
}

// Equal reports structural equality with another shape.
func (s *Shape) Equal(o *Shape) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.extents) != len(o.extents) || len(s.maxExtents) != len(o.maxExtents) {
		return false
	}
	for i, e := range s.extents {
		if e != o.extents[i] {
			return false
		}
	}
	for i, m := range s.maxExtents {
		if m != o.maxExtents[i] {
			return false
		}
	}
	return true
}

// Shape generates a random layout of the given rank: each current extent is
// drawn uniformly in [1, MaxDimSize]. maxExtents, when non-nil, supplies the
// declared per-dimension maxima for the layout (UnlimitedExtent for an
// unbounded dimension) and must carry exactly rank entries; it is
// independent of the drawn current extents. The caller owns the returned
// shape.
func (g *Generator) Shape(rank int, maxExtents []uint64) (*Shape, error) {
	if rank < 0 {
		return nil, invalidArgumentf("/", "rank must be non-negative, got %d", rank)
	}
	if maxExtents != nil && len(maxExtents) != rank {
		return nil, invalidArgumentf("/", "max extents count %d does not match rank %d", len(maxExtents), rank)
	}
	extents := make([]uint64, rank)
	for i := range extents {
		extents[i] = uint64(g.src.Intn(g.lim.MaxDimSize) + 1)
	}
	return NewShape(extents, maxExtents)
}
