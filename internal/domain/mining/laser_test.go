package mining_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/mining"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

func asteroidAt(x, y, radius, hp float64) *world.Entity {
	return &world.Entity{
		Kind: world.KindAsteroid,
		Body: world.Body{Pos: shared.Vec(x, y), Radius: radius},
		Asteroid: &world.AsteroidData{
			Tier:    world.TierLarge,
			HP:      hp,
			MaxHP:   hp,
			Mineral: shared.MineralCobalt,
		},
	}
}

func TestCastLaser_HitsNearSurface(t *testing.T) {
	// Arrange
	target := asteroidAt(100, 0, 20, 300)

	// Act
	hit, ok := mining.CastLaser(shared.Vec(0, 0), shared.Vec(1, 0), mining.LaserRange, []*world.Entity{target})

	// Assert
	require.True(t, ok)
	assert.Same(t, target, hit.Target)
	assert.InDelta(t, 80.0, hit.Distance, 1e-9)
	assert.InDelta(t, 80.0, hit.Point.X, 1e-9)
	assert.InDelta(t, 0.0, hit.Point.Y, 1e-9)
}

func TestCastLaser_FirstHitOnly(t *testing.T) {
	// Arrange
	far := asteroidAt(200, 0, 20, 300)
	near := asteroidAt(100, 5, 20, 300)

	// Act
	hit, ok := mining.CastLaser(shared.Vec(0, 0), shared.Vec(1, 0), mining.LaserRange, []*world.Entity{far, near})

	// Assert
	require.True(t, ok)
	assert.Same(t, near, hit.Target)
}

func TestCastLaser_Misses(t *testing.T) {
	tests := []struct {
		name string
		ast  *world.Entity
	}{
		{"behind the ship", asteroidAt(-100, 0, 20, 300)},
		{"off the beam", asteroidAt(100, 30, 20, 300)},
		{"beyond range", asteroidAt(400, 0, 20, 300)},
		{"entry past range", asteroidAt(265, 15, 20, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := mining.CastLaser(shared.Vec(0, 0), shared.Vec(1, 0), mining.LaserRange, []*world.Entity{tt.ast})
			assert.False(t, ok)
		})
	}
}

func TestCastLaser_IgnoresShipInsideAsteroid(t *testing.T) {
	// Entry point is behind the origin, so the hit distance is not positive
	ast := asteroidAt(5, 0, 20, 300)

	_, ok := mining.CastLaser(shared.Vec(0, 0), shared.Vec(1, 0), mining.LaserRange, []*world.Entity{ast})

	assert.False(t, ok)
}

func TestDamage_DestroysOnce(t *testing.T) {
	// Arrange
	ast := asteroidAt(0, 0, 12, 2)

	// Act & Assert
	assert.False(t, mining.Damage(ast, 1))
	assert.Equal(t, 1.0, ast.Asteroid.HP)
	assert.True(t, mining.Damage(ast, 1))
	assert.True(t, ast.Deleted)
	assert.False(t, mining.Damage(ast, 1), "a destroyed asteroid never fractures twice")
}
