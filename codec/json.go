// Package codec captures generated descriptors and shapes as JSON fixtures
// and replays them, so a harness can persist the random type behind a failing
// scenario and reproduce it without the original seed.
package codec

import (
	"fmt"

	j "github.com/goccy/go-json"

	typerand "github.com/conformkit/typerand"
	"github.com/conformkit/typerand/internal/wire"
)

// EncodeType renders a type descriptor as a JSON fixture.
func EncodeType(d typerand.Descriptor) ([]byte, error) {
	w, err := typeToWire(d, "/")
	if err != nil {
		return nil, err
	}
	b, merr := j.Marshal(w)
	if merr != nil {
		return nil, typerand.Issues{{Path: "/", Code: typerand.CodeParseError, Message: "marshal failed", Cause: merr}}
	}
	return b, nil
}

// DecodeType rebuilds a type descriptor from a JSON fixture, re-validating
// every structural invariant on the way in. The caller owns the result.
func DecodeType(data []byte) (typerand.Descriptor, error) {
	var w wire.Type
	if err := j.Unmarshal(data, &w); err != nil {
		return nil, typerand.Issues{{Path: "/", Code: typerand.CodeParseError, Message: "invalid fixture", Cause: err}}
	}
	return typeFromWire(&w, "/")
}

// EncodeShape renders a layout shape as a JSON fixture.
func EncodeShape(s *typerand.Shape) ([]byte, error) {
	if s == nil {
		return nil, typerand.Issues{{Path: "/", Code: typerand.CodeInvalidArgument, Message: "nil shape"}}
	}
	w := wire.Shape{Extents: s.Extents(), MaxExtents: s.MaxExtents()}
	if w.Extents == nil {
		w.Extents = []uint64{}
	}
	b, err := j.Marshal(w)
	if err != nil {
		return nil, typerand.Issues{{Path: "/", Code: typerand.CodeParseError, Message: "marshal failed", Cause: err}}
	}
	return b, nil
}

// DecodeShape rebuilds a layout shape from a JSON fixture.
func DecodeShape(data []byte) (*typerand.Shape, error) {
	var w wire.Shape
	if err := j.Unmarshal(data, &w); err != nil {
		return nil, typerand.Issues{{Path: "/", Code: typerand.CodeParseError, Message: "invalid fixture", Cause: err}}
	}
	return typerand.NewShape(w.Extents, w.MaxExtents)
}

func typeToWire(d typerand.Descriptor, path string) (*wire.Type, error) {
	switch t := d.(type) {
	case *typerand.IntegerType:
		return &wire.Type{Kind: t.Kind().String(), Width: t.Width, Signed: t.Signed, Order: t.Order.String()}, nil
	case *typerand.FloatType:
		return &wire.Type{Kind: t.Kind().String(), Width: t.Width, Order: t.Order.String()}, nil
	case *typerand.StringType:
		return &wire.Type{Kind: t.Kind().String(), Variable: t.VariableLength, Length: t.Length}, nil
	case *typerand.ReferenceType:
		return &wire.Type{Kind: t.Kind().String(), Region: t.Region}, nil
	case *typerand.CompoundType:
		w := &wire.Type{Kind: t.Kind().String(), Members: make([]wire.Member, len(t.Members))}
		for i, m := range t.Members {
			mw, err := typeToWire(m.Type, childPath(path, fmt.Sprintf("member/%d", i)))
			if err != nil {
				return nil, err
			}
			w.Members[i] = wire.Member{Name: m.Name, Offset: m.Offset, Type: *mw}
		}
		return w, nil
	case *typerand.EnumType:
		w := &wire.Type{Kind: t.Kind().String(), EnumMembers: make([]wire.EnumMember, len(t.Members))}
		for i, m := range t.Members {
			w.EnumMembers[i] = wire.EnumMember{Name: m.Name, Value: m.Value}
		}
		return w, nil
	case *typerand.ArrayType:
		ew, err := typeToWire(t.Elem, childPath(path, "element"))
		if err != nil {
			return nil, err
		}
		return &wire.Type{Kind: t.Kind().String(), Dims: t.Dims, Elem: ew}, nil
	default:
		return nil, typerand.Issues{{
			Path: path, Code: typerand.CodeInvalidArgument,
			Message: fmt.Sprintf("unsupported descriptor %T", d),
		}}
	}
}

func typeFromWire(w *wire.Type, path string) (typerand.Descriptor, error) {
	switch w.Kind {
	case typerand.KindInteger.String():
		order, err := orderFromWire(w.Order, path)
		if err != nil {
			return nil, err
		}
		return &typerand.IntegerType{Width: w.Width, Signed: w.Signed, Order: order}, nil
	case typerand.KindFloat.String():
		order, err := orderFromWire(w.Order, path)
		if err != nil {
			return nil, err
		}
		return &typerand.FloatType{Width: w.Width, Order: order}, nil
	case typerand.KindString.String():
		if w.Variable {
			return typerand.VariableString(), nil
		}
		return typerand.FixedString(w.Length), nil
	case typerand.KindReference.String():
		return &typerand.ReferenceType{Region: w.Region}, nil
	case typerand.KindCompound.String():
		members := make([]typerand.Member, len(w.Members))
		for i, mw := range w.Members {
			mt, err := typeFromWire(&mw.Type, childPath(path, fmt.Sprintf("member/%d", i)))
			if err != nil {
				return nil, err
			}
			members[i] = typerand.Member{Name: mw.Name, Offset: mw.Offset, Type: mt}
		}
		return typerand.NewCompound(members)
	case typerand.KindEnum.String():
		members := make([]typerand.EnumMember, len(w.EnumMembers))
		for i, mw := range w.EnumMembers {
			members[i] = typerand.EnumMember{Name: mw.Name, Value: mw.Value}
		}
		return typerand.NewEnum(members)
	case typerand.KindArray.String():
		if w.Elem == nil {
			return nil, typerand.Issues{{Path: childPath(path, "element"), Code: typerand.CodeParseError, Message: "array fixture missing element type"}}
		}
		elem, err := typeFromWire(w.Elem, childPath(path, "element"))
		if err != nil {
			return nil, err
		}
		return typerand.NewArray(elem, w.Dims)
	default:
		return nil, typerand.Issues{{
			Path: path, Code: typerand.CodeParseError,
			Message: fmt.Sprintf("unknown kind %q", w.Kind),
		}}
	}
}

func orderFromWire(s, path string) (typerand.ByteOrder, error) {
	switch s {
	case "BE":
		return typerand.OrderBigEndian, nil
	case "LE":
		return typerand.OrderLittleEndian, nil
	default:
		return 0, typerand.Issues{{
			Path: path, Code: typerand.CodeParseError,
			Message: fmt.Sprintf("unknown byte order %q", s),
		}}
	}
}

func childPath(parent, seg string) string {
	if parent == "/" {
		return "/" + seg
	}
	return parent + "/" + seg
}
