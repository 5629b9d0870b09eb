package fnv

import (
	stdfnv "hash/fnv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

var benchSizes = []struct {
	name string
	n    int
}{
	{name: "16B", n: 16},
	{name: "1KB", n: 1 << 10},
	{name: "16KB", n: 16 << 10},
}

var (
	benchSink32  uint32
	benchSink64  uint64
	benchSink128 U128
)

func benchInput(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 131)
	}

	return data
}

func BenchmarkFnv1a32(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := benchInput(size.n)
			b.SetBytes(int64(size.n))
			b.ReportAllocs()

			for range b.N {
				benchSink32 = Sum32a(data)
			}
		})
	}
}

func BenchmarkFnv1a64(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := benchInput(size.n)
			b.SetBytes(int64(size.n))
			b.ReportAllocs()

			for range b.N {
				benchSink64 = Sum64a(data)
			}
		})
	}
}

func BenchmarkFnv1a128(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := benchInput(size.n)
			b.SetBytes(int64(size.n))
			b.ReportAllocs()

			for range b.N {
				benchSink128 = Sum128a(data)
			}
		})
	}
}

func BenchmarkStdlibFnv1a64(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := benchInput(size.n)
			b.SetBytes(int64(size.n))
			b.ReportAllocs()

			for range b.N {
				h := stdfnv.New64a()
				_, _ = h.Write(data)
				benchSink64 = h.Sum64()
			}
		})
	}
}

func BenchmarkXxhash64(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := benchInput(size.n)
			b.SetBytes(int64(size.n))
			b.ReportAllocs()

			for range b.N {
				benchSink64 = xxhash.Sum64(data)
			}
		})
	}
}

func BenchmarkMurmur3_64(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			data := benchInput(size.n)
			b.SetBytes(int64(size.n))
			b.ReportAllocs()

			for range b.N {
				benchSink64 = murmur3.Sum64(data)
			}
		})
	}
}

// Many readers per hasher type, each with its own state, the way hash
// tables actually use FNV.
func BenchmarkFnv1a64Parallel(b *testing.B) {
	data := benchInput(64)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h := NewFnv1a[U64]()
			_, _ = h.Write(data)
			benchSink64 = uint64(h.Sum())
		}
	})
}
