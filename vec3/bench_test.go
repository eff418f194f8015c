package vec3

import "testing"

func BenchmarkDot(b *testing.B) {
	x := New(1.5, 2.5, 3.5)
	y := New(0.5, 0.25, 0.125)

	b.ReportAllocs()
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += x.Dot(y)
	}
	_ = sink
}

func BenchmarkCross(b *testing.B) {
	x := New(1.0, 2.0, 3.0)
	y := New(4.0, 5.0, 6.0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = x.Cross(y)
	}
}

func BenchmarkAt(b *testing.B) {
	v := New(1.0, 2.0, 3.0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.At(i % 3)
	}
}
