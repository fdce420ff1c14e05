package bench

import (
	"testing"

	"zk-convolution/algebra"
)

func benchmarkCRTConvolution(b *testing.B, f *algebra.Field) {
	const N = 800
	const M = 32768
	rng := algebra.NewRNG(f, 2)

	x := make([]algebra.Elt, N)
	y := make([]algebra.Elt, M)
	z := make([]algebra.Elt, M)
	for i := range x {
		x[i] = rng.Next()
	}
	for i := range y {
		y[i] = rng.Next()
	}

	conv := algebra.NewCRTConvolution(N, M, f, y)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		conv.Convolve(x, z)
	}
}

func BenchmarkCRTConvolution256(b *testing.B) { benchmarkCRTConvolution(b, algebra.NewFp256()) }
func BenchmarkCRTConvolution384(b *testing.B) { benchmarkCRTConvolution(b, algebra.NewFp384()) }
func BenchmarkCRTConvolution521(b *testing.B) { benchmarkCRTConvolution(b, algebra.NewFp521()) }

func BenchmarkNussbaumerNegacyclic1024(b *testing.B) {
	f := algebra.MustField("2305843009213693951")
	ext := algebra.NewFp2(f)
	rng := algebra.NewRNG(f, 3)

	const n = 1024
	x := make([]algebra.Elt2, n)
	y := make([]algebra.Elt2, n)
	z := make([]algebra.Elt2, n)
	for i := range x {
		x[i] = rng.NextExt()
		y[i] = rng.NextExt()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algebra.Negacyclic(n, z, x, y, ext)
	}
}

func BenchmarkRFFT4096(b *testing.B) {
	f := algebra.NewFp256()
	ext := algebra.NewFp2(f)
	omega, err := ext.OfString(
		"112649224146410281873500457609690258373018840430489408729223714171582664680802",
		"84087994358540907695740461427818660560182168997182378749313018254450460212908")
	if err != nil {
		b.Fatal(err)
	}
	const order = uint64(1) << 31

	const n = 4096
	rng := algebra.NewRNG(f, 4)
	a := make([]algebra.Elt, n)
	for i := range a {
		a[i] = rng.Next()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algebra.R2hc(a, omega, order, ext)
		algebra.Hc2r(a, omega, order, ext)
	}
}
