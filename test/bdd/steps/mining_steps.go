package steps

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/domain/mining"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
	"github.com/cucumber/godog"
)

type miningContext struct {
	rng       *shared.ScriptedRandom
	store     *world.Store
	asteroids map[string]*world.Entity
	target    *world.Entity
	hit       mining.Hit
	hitOK     bool
	destroyed bool
	fracture  mining.Fracture
	cargo     *shared.Cargo
	loot      []*world.Entity
	collected []shared.Mineral
}

func (mc *miningContext) reset() {
	mc.rng = &shared.ScriptedRandom{}
	mc.store = world.NewStore(10000, mc.rng)
	mc.asteroids = make(map[string]*world.Entity)
	mc.target = nil
	mc.hit = mining.Hit{}
	mc.hitOK = false
	mc.destroyed = false
	mc.fracture = mining.Fracture{}
	mc.cargo = nil
	mc.loot = nil
	mc.collected = nil
}

func (mc *miningContext) placeAsteroid(name string, tier int, mineral string, x, y float64) (*world.Entity, error) {
	t, err := world.ParseTier(tier)
	if err != nil {
		return nil, err
	}
	m, err := shared.ParseMineral(mineral)
	if err != nil {
		return nil, err
	}
	ast := mc.store.Add(&world.Entity{
		ID:   world.NewEntityID("ast"),
		Kind: world.KindAsteroid,
		Body: world.Body{Pos: shared.Vec(x, y), Radius: t.Radius()},
		Asteroid: &world.AsteroidData{
			Tier:    t,
			HP:      t.MaxHP(),
			MaxHP:   t.MaxHP(),
			Mineral: m,
		},
	})
	mc.asteroids[name] = ast
	mc.target = ast
	return ast, nil
}

// Given steps

func (mc *miningContext) anAsteroidAt(name string, tier int, mineral string, x, y float64) error {
	_, err := mc.placeAsteroid(name, tier, mineral, x, y)
	return err
}

func (mc *miningContext) fractureRolls(extraChildren int, lootDraw float64) error {
	mc.rng.Ints = []int{extraChildren}
	mc.rng.Floats = []float64{lootDraw}
	return nil
}

func (mc *miningContext) aHoldWithCapacity(capacity, used int) error {
	cargo, err := shared.NewCargo(capacity)
	if err != nil {
		return err
	}
	if used > 0 {
		cargo.Add(shared.MineralFerroNickel, false, used)
	}
	mc.cargo = cargo
	return nil
}

func (mc *miningContext) lootDriftingAt(count int, mineral string, x, y float64) error {
	m, err := shared.ParseMineral(mineral)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		mc.loot = append(mc.loot, mc.store.SpawnLoot(shared.Vec(x, y), m))
	}
	return nil
}

// When steps

func (mc *miningContext) iFireTheLaser(x, y, dx, dy, reach float64) error {
	dir := shared.Vec(dx, dy).Normalize()
	mc.hit, mc.hitOK = mining.CastLaser(shared.Vec(x, y), dir, reach, mc.store.Asteroids())
	return nil
}

func (mc *miningContext) theAsteroidTakesDamage(amount float64) error {
	if mc.target == nil {
		return fmt.Errorf("no asteroid placed")
	}
	mc.destroyed = mining.Damage(mc.target, amount)
	return nil
}

func (mc *miningContext) theAsteroidBreaksApart() error {
	if mc.target == nil {
		return fmt.Errorf("no asteroid placed")
	}
	mc.fracture = mining.BreakApart(mc.store, mc.target, mc.rng)
	return nil
}

func (mc *miningContext) theShipSweepsUpLootAt(x, y float64) error {
	if mc.cargo == nil {
		return fmt.Errorf("no hold configured")
	}
	ship := world.Body{Pos: shared.Vec(x, y), Radius: 15}
	mc.collected = mining.CollectLoot(mc.loot, ship, mc.cargo)
	return nil
}

// Then steps

func (mc *miningContext) theLaserShouldHit(name string, distance float64) error {
	if !mc.hitOK {
		return fmt.Errorf("expected laser to hit %s, but it missed", name)
	}
	want, ok := mc.asteroids[name]
	if !ok {
		return fmt.Errorf("unknown asteroid %q", name)
	}
	if mc.hit.Target != want {
		return fmt.Errorf("expected laser to hit %s, hit %s", name, mc.hit.Target.ID)
	}
	if diff := mc.hit.Distance - distance; diff > 1e-6 || diff < -1e-6 {
		return fmt.Errorf("expected hit distance %.2f, got %.2f", distance, mc.hit.Distance)
	}
	return nil
}

func (mc *miningContext) theLaserShouldMiss() error {
	if mc.hitOK {
		return fmt.Errorf("expected laser to miss, hit %s at %.2f", mc.hit.Target.ID, mc.hit.Distance)
	}
	return nil
}

func (mc *miningContext) theAsteroidShouldBeDestroyed() error {
	if !mc.destroyed || !mc.target.Deleted {
		return fmt.Errorf("expected asteroid to be destroyed, hp %.1f", mc.target.Asteroid.HP)
	}
	return nil
}

func (mc *miningContext) theAsteroidShouldHaveHP(hp float64) error {
	if mc.destroyed {
		return fmt.Errorf("expected asteroid to survive")
	}
	if mc.target.Asteroid.HP != hp {
		return fmt.Errorf("expected hp %.1f, got %.1f", hp, mc.target.Asteroid.HP)
	}
	return nil
}

func (mc *miningContext) theFractureShouldSpawnChildren(count, tier int) error {
	if len(mc.fracture.Children) != count {
		return fmt.Errorf("expected %d children, got %d", count, len(mc.fracture.Children))
	}
	for _, c := range mc.fracture.Children {
		if int(c.Asteroid.Tier) != tier {
			return fmt.Errorf("expected child tier %d, got %d", tier, c.Asteroid.Tier)
		}
		if d := c.Body.Pos.Distance(mc.target.Body.Pos); d > mining.ChildScatter*1.5 {
			return fmt.Errorf("child spawned %.1f away from parent", d)
		}
	}
	return nil
}

func (mc *miningContext) theFractureShouldDropLoot(count int, mineral string) error {
	if len(mc.fracture.Loot) != count {
		return fmt.Errorf("expected %d loot, got %d", count, len(mc.fracture.Loot))
	}
	for _, l := range mc.fracture.Loot {
		if string(l.Loot.Mineral) != mineral {
			return fmt.Errorf("expected loot of %s, got %s", mineral, l.Loot.Mineral)
		}
	}
	return nil
}

func (mc *miningContext) theExplosionShouldBe(size string) error {
	if got := mc.fracture.ExplosionSize(); got != size {
		return fmt.Errorf("expected %s explosion, got %s", size, got)
	}
	return nil
}

func (mc *miningContext) theShipShouldCollect(count int) error {
	if len(mc.collected) != count {
		return fmt.Errorf("expected %d pickups, got %d", count, len(mc.collected))
	}
	return nil
}

func (mc *miningContext) theHoldShouldContainUnits(units int) error {
	if got := mc.cargo.Units(); got != units {
		return fmt.Errorf("expected %d units in hold, got %d", units, got)
	}
	return nil
}

func (mc *miningContext) lootShouldRemainInSpace(count int) error {
	left := 0
	for _, l := range mc.loot {
		if !l.Deleted {
			left++
		}
	}
	if left != count {
		return fmt.Errorf("expected %d loot left in space, got %d", count, left)
	}
	return nil
}

func InitializeMiningScenario(ctx *godog.ScenarioContext) {
	mc := &miningContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^asteroid "([^"]*)" of tier (\d+) bearing "([^"]*)" at \((-?[\d.]+), (-?[\d.]+)\)$`, mc.anAsteroidAt)
	ctx.Step(`^the fracture rolls (\d+) extra children and a loot draw of ([\d.]+)$`, mc.fractureRolls)
	ctx.Step(`^a hold with capacity (\d+) holding (\d+) units$`, mc.aHoldWithCapacity)
	ctx.Step(`^(\d+) loot of "([^"]*)" drifting at \((-?[\d.]+), (-?[\d.]+)\)$`, mc.lootDriftingAt)

	// When steps
	ctx.Step(`^I fire the laser from \((-?[\d.]+), (-?[\d.]+)\) towards \((-?[\d.]+), (-?[\d.]+)\) with reach ([\d.]+)$`, mc.iFireTheLaser)
	ctx.Step(`^the asteroid takes ([\d.]+) damage$`, mc.theAsteroidTakesDamage)
	ctx.Step(`^the asteroid breaks apart$`, mc.theAsteroidBreaksApart)
	ctx.Step(`^the ship sweeps up loot at \((-?[\d.]+), (-?[\d.]+)\)$`, mc.theShipSweepsUpLootAt)

	// Then steps
	ctx.Step(`^the laser should hit "([^"]*)" at distance ([\d.]+)$`, mc.theLaserShouldHit)
	ctx.Step(`^the laser should miss$`, mc.theLaserShouldMiss)
	ctx.Step(`^the asteroid should be destroyed$`, mc.theAsteroidShouldBeDestroyed)
	ctx.Step(`^the asteroid should have ([\d.]+) hp left$`, mc.theAsteroidShouldHaveHP)
	ctx.Step(`^the fracture should spawn (\d+) children of tier (\d+)$`, mc.theFractureShouldSpawnChildren)
	ctx.Step(`^the fracture should drop (\d+) loot of "([^"]*)"$`, mc.theFractureShouldDropLoot)
	ctx.Step(`^the explosion should be (\w+)$`, mc.theExplosionShouldBe)
	ctx.Step(`^the ship should collect (\d+) loot$`, mc.theShipShouldCollect)
	ctx.Step(`^the hold should contain (\d+) units$`, mc.theHoldShouldContainUnits)
	ctx.Step(`^(\d+) loot should remain in space$`, mc.lootShouldRemainInSpace)
}
