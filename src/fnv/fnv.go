// Package fnv implements the Fowler-Noll-Vo non-cryptographic hash family:
// the historic FNV-0 plus the published FNV-1 and FNV-1a variants, each at
// 32, 64 and 128 bits.
//
// All three variants share one recurrence over the input bytes; they differ
// only in the starting value and in whether the XOR of the data byte happens
// before or after the multiply by the width's prime:
//
//	FNV-0:  hash starts at 0,            hash = (hash * prime) ^ b
//	FNV-1:  hash starts at offset basis, hash = (hash * prime) ^ b
//	FNV-1a: hash starts at offset basis, hash = (hash ^ b) * prime
//
// Arithmetic wraps modulo 2^width. The generic hashers expose the digest as
// its native unsigned value; the New32/New64/New128 constructors wrap them
// into the standard hash.Hash interfaces for drop-in use.
//
// None of the variants is cryptographic. Use them for hash tables, sharding
// and change detection, not for integrity or authentication.
package fnv

// OffsetBasisInput is the signature string from which the FNV offset basis
// constants are derived: hashing it with FNV-0 at a given width yields that
// width's offset basis. The constants are hard-coded; this input exists so
// the derivation stays checkable.
const OffsetBasisInput = "chongo <Landon Curt Noll> /\\../\\"

// Hasher is the streaming interface shared by the FNV variants at width W.
// Write never fails and always consumes the whole slice; the error return
// only mirrors io.Writer so hashers compose with the rest of the io
// machinery. Sum reports the current digest without consuming it, so
// interleaved Write/Sum calls are fine.
type Hasher[W Word[W]] interface {
	Write(p []byte) (int, error)
	Sum() W
}

var (
	_ Hasher[U32]  = (*Fnv0[U32])(nil)
	_ Hasher[U64]  = (*Fnv1[U64])(nil)
	_ Hasher[U128] = (*Fnv1a[U128])(nil)
)

// Fnv0 is the historic zero-basis variant. It survives for two reasons:
// deriving the offset basis constants from OffsetBasisInput, and reading
// digests produced by pre-FNV-1 deployments. New code wants Fnv1a.
type Fnv0[W Word[W]] struct {
	hash W
}

// NewFnv0 returns an FNV-0 hasher starting from zero. Unlike FNV-1 and
// FNV-1a, FNV-0 has no published starting constant; zero is convention, and
// any other start needs NewFnv0WithKey.
func NewFnv0[W Word[W]]() *Fnv0[W] {
	return &Fnv0[W]{}
}

// NewFnv0WithKey returns an FNV-0 hasher starting from key instead of zero.
func NewFnv0WithKey[W Word[W]](key W) *Fnv0[W] {
	return &Fnv0[W]{hash: key}
}

func (f *Fnv0[W]) Write(p []byte) (int, error) {
	hash := f.hash
	prime := hash.Prime()

	for _, b := range p {
		hash = hash.Mul(prime).Xor(hash.FromByte(b))
	}
	f.hash = hash

	return len(p), nil
}

// Sum returns the digest of everything written so far.
func (f *Fnv0[W]) Sum() W { return f.hash }

// Fnv1 multiplies before XORing, starting from the offset basis.
type Fnv1[W Word[W]] struct {
	hash W
}

// NewFnv1 returns an FNV-1 hasher starting from the width's offset basis.
func NewFnv1[W Word[W]]() *Fnv1[W] {
	var zero W

	return &Fnv1[W]{hash: zero.OffsetBasis()}
}

// NewFnv1WithKey returns an FNV-1 hasher starting from key instead of the
// offset basis.
func NewFnv1WithKey[W Word[W]](key W) *Fnv1[W] {
	return &Fnv1[W]{hash: key}
}

func (f *Fnv1[W]) Write(p []byte) (int, error) {
	hash := f.hash
	prime := hash.Prime()

	for _, b := range p {
		hash = hash.Mul(prime).Xor(hash.FromByte(b))
	}
	f.hash = hash

	return len(p), nil
}

// Sum returns the digest of everything written so far.
func (f *Fnv1[W]) Sum() W { return f.hash }

// Fnv1a XORs before multiplying, starting from the offset basis. It
// diffuses low-order bits better than FNV-1 on short keys and is the
// variant to reach for by default.
type Fnv1a[W Word[W]] struct {
	hash W
}

// NewFnv1a returns an FNV-1a hasher starting from the width's offset basis.
func NewFnv1a[W Word[W]]() *Fnv1a[W] {
	var zero W

	return &Fnv1a[W]{hash: zero.OffsetBasis()}
}

// NewFnv1aWithKey returns an FNV-1a hasher starting from key instead of the
// offset basis.
func NewFnv1aWithKey[W Word[W]](key W) *Fnv1a[W] {
	return &Fnv1a[W]{hash: key}
}

func (f *Fnv1a[W]) Write(p []byte) (int, error) {
	hash := f.hash
	prime := hash.Prime()

	for _, b := range p {
		hash = hash.Xor(hash.FromByte(b)).Mul(prime)
	}
	f.hash = hash

	return len(p), nil
}

// Sum returns the digest of everything written so far.
func (f *Fnv1a[W]) Sum() W { return f.hash }

// Sum32 returns the FNV-1 digest of data.
func Sum32(data []byte) uint32 {
	h := NewFnv1[U32]()
	_, _ = h.Write(data)

	return uint32(h.Sum())
}

// Sum32a returns the FNV-1a digest of data.
func Sum32a(data []byte) uint32 {
	h := NewFnv1a[U32]()
	_, _ = h.Write(data)

	return uint32(h.Sum())
}

// Sum64 returns the FNV-1 digest of data.
func Sum64(data []byte) uint64 {
	h := NewFnv1[U64]()
	_, _ = h.Write(data)

	return uint64(h.Sum())
}

// Sum64a returns the FNV-1a digest of data.
func Sum64a(data []byte) uint64 {
	h := NewFnv1a[U64]()
	_, _ = h.Write(data)

	return uint64(h.Sum())
}

// Sum128 returns the FNV-1 digest of data.
func Sum128(data []byte) U128 {
	h := NewFnv1[U128]()
	_, _ = h.Write(data)

	return h.Sum()
}

// Sum128a returns the FNV-1a digest of data.
func Sum128a(data []byte) U128 {
	h := NewFnv1a[U128]()
	_, _ = h.Write(data)

	return h.Sum()
}
