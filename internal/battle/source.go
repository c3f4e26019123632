package battle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the entropy capability a battle draws from. Implementations
// report failures through the error return; a failed draw aborts the battle.
type Source interface {
	// IntN returns an int in [0, n). n is always > 0.
	IntN(n int) (int, error)
	// Float64 returns a float in [0, 1).
	Float64() (float64, error)
}

// SeededSource is a deterministic Source. It is not safe for concurrent use;
// give every battle its own instance.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns a PCG-backed source. A zero seed is replaced by 1
// so an unset seed still yields a reproducible stream.
func NewSeededSource(seed int64) *SeededSource {
	if seed == 0 {
		seed = 1
	}
	s := uint64(seed)
	return &SeededSource{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

func (s *SeededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: IntN called with n=%d", ErrEntropy, n)
	}
	return s.rng.IntN(n), nil
}

func (s *SeededSource) Float64() (float64, error) {
	return s.rng.Float64(), nil
}

// NewCryptoSeed draws a seed from crypto/rand for matches requested without
// one. The seed is returned to the caller so the match can be replayed.
func NewCryptoSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
