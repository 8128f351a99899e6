// Package rng provides the seeded pseudo-random source used by the engine.
//
// An RNG is fully described by its Seed and the number of draws taken from
// it. State captures exactly that pair, and FromState rebuilds an equivalent
// generator by replaying the draws, so a game can be restored from a seed and
// an action log without any other hidden state.
package rng

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"
)

// Seed is either an integer or a string. Integer seeds are used directly,
// string seeds are hashed.
type Seed struct {
	text    string
	number  int64
	numeric bool
}

// NumberSeed creates an integer seed
func NumberSeed(n int64) Seed {
	return Seed{number: n, numeric: true}
}

// StringSeed creates a string seed
func StringSeed(s string) Seed {
	return Seed{text: s}
}

// ParseSeed treats input that parses as a base-10 integer as a number seed
// and anything else as a string seed.
func ParseSeed(s string) Seed {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumberSeed(n)
	}
	return StringSeed(s)
}

// IsNumeric reports whether the seed is an integer seed
func (s Seed) IsNumeric() bool {
	return s.numeric
}

// String returns the seed as text
func (s Seed) String() string {
	if s.numeric {
		return strconv.FormatInt(s.number, 10)
	}
	return s.text
}

// MarshalJSON encodes number seeds as JSON numbers and string seeds as strings
func (s Seed) MarshalJSON() ([]byte, error) {
	if s.numeric {
		return json.Marshal(s.number)
	}
	return json.Marshal(s.text)
}

// UnmarshalJSON accepts either a JSON number or a JSON string
func (s *Seed) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*s = NumberSeed(n)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("seed must be a number or a string: %w", err)
	}
	*s = StringSeed(text)
	return nil
}

// initialState maps a seed onto the non-zero 32-bit generator state
func (s Seed) initialState() uint32 {
	var state uint32
	if s.numeric {
		state = uint32(s.number)
	} else {
		var h int32
		for _, unit := range utf16.Encode([]rune(s.text)) {
			h = (h << 5) - h + int32(unit)
		}
		state = uint32(h)
	}
	if state == 0 {
		state = 1
	}
	return state
}

// State is the only serializable form of an RNG
type State struct {
	Seed      Seed `json:"seed"`
	CallCount int  `json:"callCount"`
}

// RNG is a xorshift32 generator. It is not safe for concurrent use; each
// in-flight game owns its own instance.
type RNG struct {
	seed  Seed
	state uint32
	calls int
}

// New creates a generator positioned at the start of the seed's sequence
func New(seed Seed) *RNG {
	return &RNG{
		seed:  seed,
		state: seed.initialState(),
	}
}

// FromState rebuilds a generator by replaying CallCount draws on a fresh instance
func FromState(s State) *RNG {
	r := New(s.Seed)
	for i := 0; i < s.CallCount; i++ {
		r.Next()
	}
	return r
}

// Next returns a float in [0, 1)
func (r *RNG) Next() float64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	r.calls++
	return float64(x) / 4294967296.0
}

// NextInt returns an integer in [min, max], inclusive on both ends
func (r *RNG) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(math.Floor(r.Next()*float64(max-min+1)))
}

// Chance draws once and reports whether the draw fell below p
func (r *RNG) Chance(p float64) bool {
	return r.Next() < p
}

// Seed returns the seed the generator was created with
func (r *RNG) Seed() Seed {
	return r.seed
}

// CallCount returns how many draws have been taken
func (r *RNG) CallCount() int {
	return r.calls
}

// State returns the serializable position of the generator
func (r *RNG) State() State {
	return State{Seed: r.seed, CallCount: r.calls}
}

// Shuffle returns a Fisher-Yates permutation of items. The input slice is
// left untouched and exactly len(items)-1 draws are consumed.
func Shuffle[T any](r *RNG, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.NextInt(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
