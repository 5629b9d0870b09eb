package digest

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/Blackdeer1524/fnvhash/src/fnv"
	"github.com/Blackdeer1524/fnvhash/src/pkg/assert"
)

// Algorithm names a hash variant and width, e.g. "fnv1a-64". FNV-0 is not
// offered: it exists to derive constants, not to checksum files.
type Algorithm string

const (
	AlgorithmFnv1_32   Algorithm = "fnv1-32"
	AlgorithmFnv1a_32  Algorithm = "fnv1a-32"
	AlgorithmFnv1_64   Algorithm = "fnv1-64"
	AlgorithmFnv1a_64  Algorithm = "fnv1a-64"
	AlgorithmFnv1_128  Algorithm = "fnv1-128"
	AlgorithmFnv1a_128 Algorithm = "fnv1a-128"

	DefaultAlgorithm = AlgorithmFnv1a_64
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrBadKey           = errors.New("bad key")
)

type algorithmEntry struct {
	size    int
	fresh   func() hash.Hash
	withKey func(key []byte) hash.Hash
}

var registry = map[Algorithm]algorithmEntry{
	AlgorithmFnv1_32: {
		size:  4,
		fresh: func() hash.Hash { return fnv.New32() },
		withKey: func(key []byte) hash.Hash {
			return fnv.New32WithKey(binary.BigEndian.Uint32(key))
		},
	},
	AlgorithmFnv1a_32: {
		size:  4,
		fresh: func() hash.Hash { return fnv.New32a() },
		withKey: func(key []byte) hash.Hash {
			return fnv.New32aWithKey(binary.BigEndian.Uint32(key))
		},
	},
	AlgorithmFnv1_64: {
		size:  8,
		fresh: func() hash.Hash { return fnv.New64() },
		withKey: func(key []byte) hash.Hash {
			return fnv.New64WithKey(binary.BigEndian.Uint64(key))
		},
	},
	AlgorithmFnv1a_64: {
		size:  8,
		fresh: func() hash.Hash { return fnv.New64a() },
		withKey: func(key []byte) hash.Hash {
			return fnv.New64aWithKey(binary.BigEndian.Uint64(key))
		},
	},
	AlgorithmFnv1_128: {
		size:  16,
		fresh: func() hash.Hash { return fnv.New128() },
		withKey: func(key []byte) hash.Hash {
			return fnv.New128WithKey(u128Key(key))
		},
	},
	AlgorithmFnv1a_128: {
		size:  16,
		fresh: func() hash.Hash { return fnv.New128a() },
		withKey: func(key []byte) hash.Hash {
			return fnv.New128aWithKey(u128Key(key))
		},
	},
}

func u128Key(key []byte) fnv.U128 {
	return fnv.U128{
		Hi: binary.BigEndian.Uint64(key[:8]),
		Lo: binary.BigEndian.Uint64(key[8:]),
	}
}

// Algorithms lists the registered names, narrowest first, for usage text.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmFnv1_32, AlgorithmFnv1a_32,
		AlgorithmFnv1_64, AlgorithmFnv1a_64,
		AlgorithmFnv1_128, AlgorithmFnv1a_128,
	}
}

// ParseAlgorithm validates a user-supplied algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(name)
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}

// Size returns the digest size in bytes.
func (a Algorithm) Size() int {
	return a.entry().size
}

// New returns a fresh hasher for the algorithm.
func (a Algorithm) New() hash.Hash {
	return a.entry().fresh()
}

// NewWithKey returns a hasher seeded from hexKey, which must hold exactly
// one digest worth of hex digits.
func (a Algorithm) NewWithKey(hexKey string) (hash.Hash, error) {
	e := a.entry()

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}

	if len(key) != e.size {
		return nil, fmt.Errorf(
			"%w: got %d hex digits, want %d",
			ErrBadKey, len(hexKey), 2*e.size,
		)
	}

	return e.withKey(key), nil
}

// withSize maps the algorithm to the same variant at the width whose digest
// is size bytes long. Check uses it to follow a manifest written at a
// different width than the configured one.
func (a Algorithm) withSize(size int) (Algorithm, error) {
	variant, _, ok := strings.Cut(string(a), "-")
	assert.Assert(ok, "malformed algorithm name %q", a)

	resized := Algorithm(fmt.Sprintf("%s-%d", variant, size*8))
	if _, ok := registry[resized]; !ok {
		return "", fmt.Errorf("%w: no %s variant with %d-byte digests", ErrUnknownAlgorithm, variant, size)
	}

	return resized, nil
}

func (a Algorithm) entry() algorithmEntry {
	e, ok := registry[a]
	assert.Assert(ok, "unregistered algorithm %q", a)

	return e
}
