package mining_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spaceminer-go/internal/domain/mining"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

func lootAt(x, y float64, mineral shared.Mineral) *world.Entity {
	return &world.Entity{
		Kind: world.KindLoot,
		Body: world.Body{Pos: shared.Vec(x, y), Radius: world.LootRadius},
		Loot: &world.LootData{Mineral: mineral, Value: 1},
	}
}

func TestApplyTractor_PullsOnlyInRange(t *testing.T) {
	// Arrange
	near := lootAt(100, 0, shared.MineralSilicon)
	far := lootAt(300, 0, shared.MineralSilicon)
	far.Loot.Attracted = true

	// Act
	pulled := mining.ApplyTractor([]*world.Entity{near, far}, shared.Vec(0, 0), 200)

	// Assert
	assert.Equal(t, 1, pulled)
	assert.InDelta(t, -mining.TractorForce, near.Body.Vel.X, 1e-12)
	assert.True(t, near.Loot.Attracted)
	assert.Zero(t, far.Body.Vel)
	assert.False(t, far.Loot.Attracted)
}

func TestApplyTractor_Accumulates(t *testing.T) {
	l := lootAt(0, 50, shared.MineralCobalt)

	mining.ApplyTractor([]*world.Entity{l}, shared.Vec(0, 0), 200)
	mining.ApplyTractor([]*world.Entity{l}, shared.Vec(0, 0), 200)

	assert.InDelta(t, -2*mining.TractorForce, l.Body.Vel.Y, 1e-12)
}

func TestReleaseTractor(t *testing.T) {
	l := lootAt(0, 50, shared.MineralCobalt)
	l.Loot.Attracted = true

	mining.ReleaseTractor([]*world.Entity{l})

	assert.False(t, l.Loot.Attracted)
}

func TestCollectLoot_MergesIntoRawStack(t *testing.T) {
	// Arrange
	cargo, _ := shared.NewCargo(12)
	cargo.Add(shared.MineralSilicon, false, 2)
	ship := world.Body{Pos: shared.Vec(0, 0), Radius: 15}
	touching := lootAt(20, 0, shared.MineralSilicon)
	away := lootAt(22, 0, shared.MineralSilicon)

	// Act
	got := mining.CollectLoot([]*world.Entity{touching, away}, ship, cargo)

	// Assert
	assert.Equal(t, []shared.Mineral{shared.MineralSilicon}, got)
	assert.True(t, touching.Deleted)
	assert.False(t, away.Deleted)
	require.Len(t, cargo.Items, 1)
	assert.Equal(t, 3, cargo.Quantity(shared.MineralSilicon, false))
}

func TestCollectLoot_FullHoldRefuses(t *testing.T) {
	// Arrange
	cargo, _ := shared.NewCargo(2)
	cargo.Add(shared.MineralCobalt, true, 2)
	ship := world.Body{Pos: shared.Vec(0, 0), Radius: 15}
	l := lootAt(0, 0, shared.MineralQuantum)

	// Act
	got := mining.CollectLoot([]*world.Entity{l}, ship, cargo)

	// Assert
	assert.Empty(t, got)
	assert.False(t, l.Deleted)
	assert.Equal(t, 2, cargo.Units())
}
