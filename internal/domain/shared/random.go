package shared

import (
	"math"
	"math/rand/v2"
	"time"
)

// RandomSource abstracts randomness so spawn and fracture rolls can be scripted in tests
type RandomSource interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewRandomSource creates a PCG-backed source. A zero seed derives one from the wall clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomRange returns a value in [min, max)
func RandomRange(rng RandomSource, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// GeneratePolygon builds an irregular outline of evenly spaced points around the origin.
// Each point sits at radius ± irregularity.
func GeneratePolygon(rng RandomSource, radius float64, sides int, irregularity float64) []Vector2 {
	points := make([]Vector2, 0, sides)
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		angle := float64(i) * step
		r := radius + RandomRange(rng, -irregularity, irregularity)
		points = append(points, FromAngle(angle, r))
	}
	return points
}

// ScriptedRandom replays a fixed sequence of draws. It is used by tests and
// deterministic replays; once exhausted it keeps returning the last value.
type ScriptedRandom struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

// Float64 returns the next scripted float (0.5 when none were scripted)
func (s *ScriptedRandom) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.5
	}
	v := s.Floats[min(s.fi, len(s.Floats)-1)]
	s.fi++
	return v
}

// IntN returns the next scripted int, clamped into [0, n)
func (s *ScriptedRandom) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	v := s.Ints[min(s.ii, len(s.Ints)-1)]
	s.ii++
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
