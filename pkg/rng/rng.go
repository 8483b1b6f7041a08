// pkg/rng/rng.go
package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// SeedSize is the number of entropy bytes a generator needs
const SeedSize = 32

// ErrEntropy is returned when seed bytes cannot be read
var ErrEntropy = errors.New("entropy source unavailable")

// Seed is the full state used to start a generator
type Seed [SeedSize]byte

// New returns a ChaCha8 generator started from seed. Two generators built
// from the same seed produce the same sequence.
func New(seed Seed) *rand.Rand {
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeed reads SeedSize bytes from r. Hosts pass crypto/rand.Reader.
func NewSeed(r io.Reader) (Seed, error) {
	var seed Seed
	if r == nil {
		return seed, fmt.Errorf("reading seed: %w", ErrEntropy)
	}
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return seed, fmt.Errorf("reading seed: %w: %v", ErrEntropy, err)
	}
	return seed, nil
}

// SeedFromUint64 spreads a small number over a full seed, for replays and tests
func SeedFromUint64(n uint64) Seed {
	var seed Seed
	// splitmix64 fills each word so nearby n give unrelated seeds
	x := n
	for i := 0; i < SeedSize; i += 8 {
		x += 0x9e3779b97f4a7c15
		z := x
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		binary.LittleEndian.PutUint64(seed[i:], z)
	}
	return seed
}
