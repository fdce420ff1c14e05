package bench

import (
	"testing"

	"zk-convolution/algebra"
)

func benchmarkCRTMul(b *testing.B, crt *algebra.CRT, f *algebra.Field) {
	a := crt.ToCRT(f.OfScalar(112121))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a = crt.Mulf(a, a)
	}
	_ = a
}

func BenchmarkCRTMul256(b *testing.B) {
	f := algebra.MustField("4179340454199820289")
	benchmarkCRTMul(b, algebra.NewCRT256(f), f)
}

func BenchmarkCRTMul384(b *testing.B) {
	f := algebra.MustField("4179340454199820289")
	benchmarkCRTMul(b, algebra.NewCRT384(f), f)
}

func BenchmarkCRTMul521(b *testing.B) {
	f := algebra.MustField("4179340454199820289")
	benchmarkCRTMul(b, algebra.NewCRT521(f), f)
}

func benchmarkToField(b *testing.B, crt *algebra.CRT, f *algebra.Field) {
	x := crt.ToCRT(algebra.NewRNG(f, 1).Next())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = crt.ToField(x)
	}
}

func BenchmarkToField256(b *testing.B) {
	f := algebra.NewFp256()
	benchmarkToField(b, algebra.NewCRT256(f), f)
}

func BenchmarkToField384(b *testing.B) {
	f := algebra.NewFp384()
	benchmarkToField(b, algebra.NewCRT384(f), f)
}

func BenchmarkToField521(b *testing.B) {
	f := algebra.NewFp521()
	benchmarkToField(b, algebra.NewCRT521(f), f)
}
