package typerand_test

import (
	"testing"

	typerand "github.com/conformkit/typerand"
)

func BenchmarkType(b *testing.B) {
	g := typerand.New(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d, err := g.Type(typerand.KindNone)
		if err != nil {
			b.Fatal(err)
		}
		d.Release()
	}
}

func BenchmarkShape(b *testing.B) {
	g := typerand.New(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := g.Shape(4, nil)
		if err != nil {
			b.Fatal(err)
		}
		s.Release()
	}
}
