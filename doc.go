package typerand

// Package typerand provides:
//
// - Randomized, structurally valid type descriptors over a recursive type
//   algebra (integers, floats, strings, compounds, enums, references, arrays)
// - Randomized layout shapes (rank + per-dimension extents)
// - A stable error model via Issues (path, code, message)
// - JSON fixture capture/replay of generated descriptors through codec/
//
// The package exists to stress a pluggable storage backend's datatype support
// from a conformance harness: the harness seeds a Generator once, then asks it
// for arbitrarily shaped descriptors and layouts, feeding them to the backend
// under test.
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place codecs under codec/.
// - Prefer black-box testing against public APIs.
// - A Generator is single-goroutine; give each worker its own seeded Generator.
//
// Typical usage:
//
//  g := typerand.New(seed)
//  dt, err := g.Type(typerand.KindNone)
//  sp, err := g.Shape(3, nil)
//  defer dt.Release()
//  defer sp.Release()
//
//  fixture, err := codec.EncodeType(dt)
