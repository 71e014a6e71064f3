package shared_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

func TestVector2_Arithmetic(t *testing.T) {
	a := shared.Vec(3, 4)
	b := shared.Vec(1, -2)

	assert.Equal(t, shared.Vec(4, 2), a.Add(b))
	assert.Equal(t, shared.Vec(2, 6), a.Sub(b))
	assert.Equal(t, shared.Vec(6, 8), a.Scale(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, 5.0, shared.Vec(0, 0).Distance(a))
}

func TestVector2_NormalizeZeroIsZero(t *testing.T) {
	assert.Equal(t, shared.Vec(0, 0), shared.Vec(0, 0).Normalize())
	n := shared.Vec(0, 10).Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"inside", 1, 1},
		{"just past pi", math.Pi + 0.5, -math.Pi + 0.5},
		{"negative wrap", -math.Pi - 0.5, math.Pi - 0.5},
		{"several turns", 4*math.Pi + 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, shared.WrapAngle(tt.in), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, shared.Vec(0, 10), shared.Vec(-5, 15).Clamp(0, 10))
	assert.Equal(t, 2.0, shared.ClampFloat(3, 0.5, 2))
}

func TestRollMineral_Ladder(t *testing.T) {
	assert.Equal(t, shared.MineralFerroNickel, shared.RollMineral(0.60))
	assert.Equal(t, shared.MineralSilicon, shared.RollMineral(0.61))
	assert.Equal(t, shared.MineralCobalt, shared.RollMineral(0.9))
	assert.Equal(t, shared.MineralAetherium, shared.RollMineral(0.96))
	assert.Equal(t, shared.MineralQuantum, shared.RollMineral(0.995))
}

func TestGeneratePolygon_EvenlySpaced(t *testing.T) {
	rng := shared.NewRandomSource(7)
	points := shared.GeneratePolygon(rng, 50, 8, 15)

	assert.Len(t, points, 8)
	for i, p := range points {
		assert.InDelta(t, 50, p.Length(), 15)
		assert.InDelta(t, 0, shared.WrapAngle(p.Angle()-float64(i)*math.Pi/4), 1e-9)
	}
}
