package fnv

import "hash"

// Hash128 is the 128-bit analogue of hash.Hash32 and hash.Hash64: a
// hash.Hash that also exposes the digest as its native U128 value.
type Hash128 interface {
	hash.Hash
	Sum128() U128
}

var (
	_ hash.Hash32 = hash32{}
	_ hash.Hash64 = hash64{}
	_ Hash128     = hash128{}
)

// stdHash adapts a generic Hasher to hash.Hash. The wrapped hashers carry
// no state besides the running word, so Reset just builds a fresh one from
// the constructor it was born with; for the keyed constructors that means
// Reset returns to the key, not to the canonical offset basis.
type stdHash[W Word[W]] struct {
	inner Hasher[W]
	reset func() Hasher[W]
	size  int
}

func newStdHash[W Word[W]](reset func() Hasher[W]) *stdHash[W] {
	var zero W

	return &stdHash[W]{
		inner: reset(),
		reset: reset,
		size:  len(zero.AppendBytes(nil)),
	}
}

func (d *stdHash[W]) Write(p []byte) (int, error) { return d.inner.Write(p) }

// Sum appends the current digest to b in big-endian byte order.
func (d *stdHash[W]) Sum(b []byte) []byte { return d.inner.Sum().AppendBytes(b) }

func (d *stdHash[W]) Reset() { d.inner = d.reset() }

func (d *stdHash[W]) Size() int { return d.size }

func (d *stdHash[W]) BlockSize() int { return 1 }

type hash32 struct{ *stdHash[U32] }

func (d hash32) Sum32() uint32 { return uint32(d.inner.Sum()) }

type hash64 struct{ *stdHash[U64] }

func (d hash64) Sum64() uint64 { return uint64(d.inner.Sum()) }

type hash128 struct{ *stdHash[U128] }

func (d hash128) Sum128() U128 { return d.inner.Sum() }

// New32 returns a hash.Hash32 computing 32-bit FNV-1.
func New32() hash.Hash32 {
	return hash32{newStdHash(func() Hasher[U32] { return NewFnv1[U32]() })}
}

// New32a returns a hash.Hash32 computing 32-bit FNV-1a.
func New32a() hash.Hash32 {
	return hash32{newStdHash(func() Hasher[U32] { return NewFnv1a[U32]() })}
}

// New64 returns a hash.Hash64 computing 64-bit FNV-1.
func New64() hash.Hash64 {
	return hash64{newStdHash(func() Hasher[U64] { return NewFnv1[U64]() })}
}

// New64a returns a hash.Hash64 computing 64-bit FNV-1a.
func New64a() hash.Hash64 {
	return hash64{newStdHash(func() Hasher[U64] { return NewFnv1a[U64]() })}
}

// New128 returns a Hash128 computing 128-bit FNV-1.
func New128() Hash128 {
	return hash128{newStdHash(func() Hasher[U128] { return NewFnv1[U128]() })}
}

// New128a returns a Hash128 computing 128-bit FNV-1a.
func New128a() Hash128 {
	return hash128{newStdHash(func() Hasher[U128] { return NewFnv1a[U128]() })}
}

// New32WithKey is New32 seeded with key instead of the offset basis.
// A zero key reproduces historic FNV-0.
func New32WithKey(key uint32) hash.Hash32 {
	return hash32{newStdHash(func() Hasher[U32] { return NewFnv1WithKey(U32(key)) })}
}

// New32aWithKey is New32a seeded with key instead of the offset basis.
func New32aWithKey(key uint32) hash.Hash32 {
	return hash32{newStdHash(func() Hasher[U32] { return NewFnv1aWithKey(U32(key)) })}
}

// New64WithKey is New64 seeded with key instead of the offset basis.
// A zero key reproduces historic FNV-0.
func New64WithKey(key uint64) hash.Hash64 {
	return hash64{newStdHash(func() Hasher[U64] { return NewFnv1WithKey(U64(key)) })}
}

// New64aWithKey is New64a seeded with key instead of the offset basis.
func New64aWithKey(key uint64) hash.Hash64 {
	return hash64{newStdHash(func() Hasher[U64] { return NewFnv1aWithKey(U64(key)) })}
}

// New128WithKey is New128 seeded with key instead of the offset basis.
// A zero key reproduces historic FNV-0.
func New128WithKey(key U128) Hash128 {
	return hash128{newStdHash(func() Hasher[U128] { return NewFnv1WithKey(key) })}
}

// New128aWithKey is New128a seeded with key instead of the offset basis.
func New128aWithKey(key U128) Hash128 {
	return hash128{newStdHash(func() Hasher[U128] { return NewFnv1aWithKey(key) })}
}
