package typerand

import (
	"fmt"
	"math"
)

// GenOpt bundles Generator construction options.
type GenOpt struct {
	Limits Limits // Generation ceilings; zero fields fall back to DefaultLimits.
	Source Source // Overrides the default seeded source.
}

// Generator produces random type descriptors and layout shapes. It holds the
// random source and the ceilings, nothing else; recursion state is threaded
// through calls, so one Generator per goroutine is the only sharing rule.
type Generator struct {
	src Source
	lim Limits
}

// New returns a Generator seeded with seed. The last GenOpt wins.
func New(seed int64, opts ...GenOpt) *Generator {
	g := &Generator{src: NewSource(seed), lim: DefaultLimits()}
	if len(opts) > 0 {
		opt := opts[len(opts)-1]
		g.lim = opt.Limits.withDefaults()
		if opt.Source != nil {
			g.src = opt.Source
		}
	}
	return g
}

// Limits reports the ceilings this generator honors.
func (g *Generator) Limits() Limits { return g.lim }

// Type generates a random, structurally valid type descriptor. parent names
// the enclosing kind when generating a nested type; top-level callers pass
// KindNone. Kinds the engine under test cannot store (time, bitfield,
// opaque, variable-length, region references) are never emitted, and an
// Array parent additionally excludes array, enum, compound and reference
// element kinds. The caller owns the returned descriptor and releases it.
func (g *Generator) Type(parent TypeKind) (Descriptor, error) {
	return g.generateType(parent, 1)
}

func (g *Generator) drawKind() TypeKind { return TypeKind(g.src.Intn(int(numKinds))) }

// generateType is the recursive core. depth counts call frames from the
// entry call (depth 1); compound and array generation consult it so the
// whole call tree stays within MaxRecursionDepth.
func (g *Generator) generateType(parent TypeKind, depth int) (Descriptor, error) {
	// Rejection-retry dispatch: draw a kind uniformly, and whenever the draw
	// lands on an unsupported or contextually excluded kind, draw again.
	// Terminates with probability 1 since supported kinds keep non-zero mass
	// on every draw.
	kind := g.drawKind()
	for {
		switch kind {
		case KindInteger:
			return PredefinedIntegers[g.src.Intn(len(PredefinedIntegers))].Clone(), nil

		case KindFloat:
			return PredefinedFloats[g.src.Intn(len(PredefinedFloats))].Clone(), nil

		case KindString:
			if g.src.Intn(2) == 0 {
				return FixedString(uint64(g.src.Intn(g.lim.MaxStringSize))), nil
			}
			return VariableString(), nil

		case KindCompound:
			// Arrays of compounds are unsupported, and past the depth
			// ceiling recursive kinds must give way to flat ones.
			if parent == KindArray || depth > g.lim.MaxRecursionDepth {
				kind = g.drawKind()
				continue
			}
			return g.generateCompound(depth)

		case KindReference:
			if parent == KindArray {
				// Arrays of references are unsupported.
				kind = g.drawKind()
				continue
			}
			if g.src.Intn(2) != 0 {
				// Region references are unsupported.
				kind = g.drawKind()
				continue
			}
			return ObjectReference(), nil

		case KindEnum:
			if parent == KindArray {
				// Arrays of enums are unsupported.
				kind = g.drawKind()
				continue
			}
			return g.generateEnum()

		case KindArray:
			// No array-of-array, and the depth ceiling applies here too.
			if parent == KindArray || depth > g.lim.MaxRecursionDepth {
				kind = g.drawKind()
				continue
			}
			return g.generateArray(depth)

		default:
			// Time, Bitfield, Opaque, VarLen: unsupported for generation.
			kind = g.drawKind()
			continue
		}
	}
}

func (g *Generator) generateCompound(depth int) (Descriptor, error) {
	count := g.src.Intn(g.lim.MaxCompoundMembers) + 1

	built := &ownedSet{}
	defer built.releaseAbandoned()

	members := make([]Member, 0, count)
	var offset uint64
	for i := 0; i < count; i++ {
		mt, err := g.generateType(KindNone, depth+1)
		if err != nil {
			return nil, prefixIssues(fmt.Sprintf("/member/%d", i), err)
		}
		built.add(mt)
		members = append(members, Member{
			Name:   fmt.Sprintf("compound_member%d", i),
			Offset: offset,
			Type:   mt,
		})
		offset += mt.Size()
	}

	ct, err := NewCompound(members)
	if err != nil {
		return nil, generationFailed("/", err)
	}
	built.commit()
	return ct, nil
}

func (g *Generator) generateEnum() (Descriptor, error) {
	count := g.src.Intn(g.lim.MaxEnumMembers) + 1
	members := make([]EnumMember, count)
	for i := range members {
		name := fmt.Sprintf("enum_val%d", i)
		if len(name) > g.lim.MaxEnumNameLen {
			name = name[:g.lim.MaxEnumNameLen]
		}
		members[i] = EnumMember{Name: name, Value: int32(g.src.Intn(math.MaxInt32))}
	}
	et, err := NewEnum(members)
	if err != nil {
		return nil, generationFailed("/", err)
	}
	return et, nil
}

func (g *Generator) generateArray(depth int) (Descriptor, error) {
	rank := g.src.Intn(g.lim.MaxArrayDims) + 1
	dims := make([]uint64, rank)
	for i := range dims {
		dims[i] = uint64(g.src.Intn(g.lim.MaxDimSize) + 1)
	}

	elem, err := g.generateType(KindArray, depth+1)
	if err != nil {
		return nil, prefixIssues("/element", err)
	}

	at, err := NewArray(elem, dims)
	if err != nil {
		elem.Release()
		return nil, generationFailed("/", err)
	}
	return at, nil
}

// ownedSet collects descriptors built during one construction step and
// releases them unless the step commits them to a parent, so no partial
// construction can leak on an error exit.
type ownedSet struct {
	ds        []Descriptor
	committed bool
}

func (o *ownedSet) add(d Descriptor) { o.ds = append(o.ds, d) }
func (o *ownedSet) commit()          { o.committed = true }

func (o *ownedSet) releaseAbandoned() {
	if o.committed {
		return
	}
	for _, d := range o.ds {
		d.Release()
	}
}
