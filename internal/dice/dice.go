// Package dice provides dice rolling behind a small interface so the engine's
// only sources of nondeterminism (rolls and the starting-color draw) can be
// replaced with a scripted sequence for deterministic replay.
package dice

import (
	"math/rand"
	"time"
)

// Roller produces uniform rolls in [1, sides].
type Roller interface {
	Roll(sides int) int
}

// Config for the default roller.
type Config struct {
	// Optional seed for reproducible games. Zero means seed from the clock.
	Seed int64
}

type randRoller struct {
	random *rand.Rand
}

// New creates a roller backed by math/rand.
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	return &randRoller{random: rand.New(rand.NewSource(seed))}
}

// Roll generates a roll with the specified number of sides.
func (r *randRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6
	}
	return r.random.Intn(sides) + 1
}

// Sequence replays a fixed list of rolls, wrapping around when exhausted.
// Useful in tests; the scripted values are returned regardless of sides.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a scripted roller. It panics if no values are given.
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		panic("dice: empty sequence")
	}
	return &Sequence{values: values}
}

// Roll returns the next scripted value.
func (s *Sequence) Roll(sides int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
