// Package autopilot flies the ship without a human: it mines until the hold
// is full, refines at the nearest refinery, sells refined goods where they pay
// best and reinvests in upgrades. Economy actions go through the mediator like
// any other client's.
package autopilot

import (
	"context"
	"log/slog"
	"math"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
	ecocmd "github.com/andrescamacho/spaceminer-go/internal/application/economy/commands"
	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/mining"
	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

const (
	// ScanRange bounds the asteroid search around the ship
	ScanRange = 4000.0
	// FireCone is the largest heading error at which the laser fires
	FireCone = 0.05
	// ApproachDistance is the surface distance the pilot closes to before it
	// stops thrusting at an asteroid
	ApproachDistance = mining.LaserRange * 0.6
	// CoastDistance is where the pilot cuts thrust on a station approach
	CoastDistance = 450.0
	// CreditReserve is kept back from upgrades to pay refining fees
	CreditReserve = 300
)

// Engine is the slice of the simulation the pilot reads and steers
type Engine interface {
	Status() engine.Status
	NearestAsteroid(maxRange float64) (world.Entity, bool)
	SetIntents(in engine.Intents)
}

// Pilot is an engine.Controller
type Pilot struct {
	mediator mediator.Mediator
	logger   *slog.Logger

	phase  Phase
	target string // station name while hauling or trading
}

// New creates a pilot that sends economy commands through m
func New(m mediator.Mediator, logger *slog.Logger) *Pilot {
	if logger == nil {
		logger = common.DiscardLogger()
	}
	return &Pilot{
		mediator: m,
		logger:   logger.With("component", "autopilot"),
		phase:    PhaseProspecting,
	}
}

// Phase returns the current phase
func (p *Pilot) Phase() Phase {
	return p.phase
}

// Steer implements engine.Controller
func (p *Pilot) Steer(ctx context.Context, e *engine.Engine) {
	p.Fly(ctx, e)
}

// Fly decides this frame's intents and runs any docked business
func (p *Pilot) Fly(ctx context.Context, e Engine) {
	status := e.Status()
	ship := status.Player

	switch p.phase {
	case PhaseProspecting:
		if ship.Cargo.IsFull() {
			if station := nearest(status.Stations, ship.Body.Pos, world.StationRefinery); station != nil {
				p.transition(PhaseHauling, station.Name)
				break
			}
		}
		e.SetIntents(p.prospect(e, ship))
		return

	case PhaseHauling:
		if docked(status, p.target) {
			e.SetIntents(engine.Intents{LookAngle: ship.Body.Rotation})
			p.refine(ctx, ship)
			refreshed := e.Status().Player
			if station := bestMarket(status.Stations, refreshed); station != nil {
				p.transition(PhaseTrading, station.Name)
			} else {
				p.transition(PhaseProspecting, "")
			}
			return
		}

	case PhaseTrading:
		if docked(status, p.target) {
			e.SetIntents(engine.Intents{LookAngle: ship.Body.Rotation})
			p.trade(ctx, status.NearbyStation, ship)
			p.upgrade(ctx, e.Status().Player)
			p.transition(PhaseProspecting, "")
			return
		}
	}

	if station := find(status.Stations, p.target); station != nil {
		e.SetIntents(approach(ship, station.Pos, CoastDistance))
	}
}

func (p *Pilot) prospect(e Engine, ship *player.Ship) engine.Intents {
	ast, ok := e.NearestAsteroid(ScanRange)
	if !ok {
		// Nothing in range: cruise straight ahead until something is
		return engine.Intents{Thrust: true, LookAngle: ship.Body.Rotation, Tractor: true}
	}

	offset := ast.Body.Pos.Sub(ship.Body.Pos)
	heading := offset.Angle()
	surface := offset.Length() - ast.Body.Radius
	aligned := math.Abs(shared.WrapAngle(heading-ship.Body.Rotation)) < FireCone

	return engine.Intents{
		Thrust:    surface > ApproachDistance,
		LookAngle: heading,
		Fire:      aligned && surface < mining.LaserRange,
		Tractor:   true,
	}
}

// refine deposits every raw stack, queues jobs and takes home whatever refined
// goods are ready and fit
func (p *Pilot) refine(ctx context.Context, ship *player.Ship) {
	credits := ship.Credits
	free := ship.Cargo.AvailableCapacity()
	for _, item := range stacks(ship.Cargo, false) {
		if !p.send(ctx, &ecocmd.DepositOreCommand{Mineral: item.Mineral.String(), Quantity: item.Quantity}) {
			continue
		}
		free += item.Quantity
		tier := refinery.JobTierStandard
		if credits >= refinery.JobTierPriority.Cost()+CreditReserve {
			tier = refinery.JobTierPriority
		}
		if credits < tier.Cost() {
			continue
		}
		if p.send(ctx, &ecocmd.StartRefiningJobCommand{Mineral: item.Mineral.String(), Quantity: item.Quantity, Tier: string(tier)}) {
			credits -= tier.Cost()
		}
	}

	for _, m := range shared.AllMinerals() {
		qty := min(ship.Account.RefinedBalance(m), free)
		if qty <= 0 {
			continue
		}
		if p.send(ctx, &ecocmd.WithdrawRefinedCommand{Mineral: m.String(), Quantity: qty}) {
			free -= qty
		}
	}
}

func (p *Pilot) trade(ctx context.Context, station *engine.StationView, ship *player.Ship) {
	for _, item := range stacks(ship.Cargo, true) {
		price := economy.RefinedUnitPrice(item.Mineral, station.Specializes(item.Mineral))
		p.send(ctx, &ecocmd.SellRefinedMineralCommand{Mineral: item.Mineral.String(), Quantity: item.Quantity, UnitPrice: price})
	}
}

// upgrade buys the cheapest next level the budget allows, cargo winning ties
func (p *Pilot) upgrade(ctx context.Context, ship *player.Ship) {
	var pick *economy.UpgradeSpec
	best := math.MaxInt
	for _, spec := range economy.Catalog() {
		cost := economy.Quote(spec.Kind, ship.UpgradeLevels[string(spec.Kind)])
		if cost < best {
			s := spec
			pick, best = &s, cost
		}
	}
	if pick == nil || ship.Credits-best < CreditReserve {
		return
	}
	p.send(ctx, &ecocmd.BuyUpgradeCommand{Kind: string(pick.Kind), Cost: best})
}

func (p *Pilot) send(ctx context.Context, req mediator.Request) bool {
	resp, err := p.mediator.Send(ctx, req)
	if err != nil {
		p.logger.Warn("command failed", "error", err)
		return false
	}
	r, ok := resp.(*ecocmd.EconomyResponse)
	return ok && r.Accepted
}

func (p *Pilot) transition(next Phase, target string) {
	if !p.phase.CanTransitionTo(next) {
		p.logger.Error("illegal phase change", "error", &PhaseError{From: p.phase, To: next})
		return
	}
	p.logger.Info("phase changed", "from", p.phase, "to", next, "target", target)
	p.phase = next
	p.target = target
}

// approach turns toward dest and thrusts until within coast of it
func approach(ship *player.Ship, dest shared.Vector2, coast float64) engine.Intents {
	offset := dest.Sub(ship.Body.Pos)
	return engine.Intents{
		Thrust:    offset.Length() > coast,
		LookAngle: offset.Angle(),
	}
}

func docked(status engine.Status, name string) bool {
	return status.NearbyStation != nil && status.NearbyStation.Name == name
}

func find(stations []engine.StationView, name string) *engine.StationView {
	for i := range stations {
		if stations[i].Name == name {
			return &stations[i]
		}
	}
	return nil
}

func nearest(stations []engine.StationView, pos shared.Vector2, kind world.StationType) *engine.StationView {
	var best *engine.StationView
	bestDist := math.Inf(1)
	for i := range stations {
		if stations[i].Type != kind {
			continue
		}
		if d := stations[i].Pos.Distance(pos); d < bestDist {
			best, bestDist = &stations[i], d
		}
	}
	return best
}

// bestMarket picks the trade station paying most for the refined hold, or nil
// when there is nothing refined to sell
func bestMarket(stations []engine.StationView, ship *player.Ship) *engine.StationView {
	goods := stacks(ship.Cargo, true)
	if len(goods) == 0 {
		return nil
	}
	var best *engine.StationView
	bestValue := -1
	for i := range stations {
		if stations[i].Type != world.StationTrade {
			continue
		}
		value := 0
		for _, item := range goods {
			value += item.Quantity * economy.RefinedUnitPrice(item.Mineral, stations[i].Specializes(item.Mineral))
		}
		if value > bestValue {
			best, bestValue = &stations[i], value
		}
	}
	return best
}

// stacks copies the hold's raw or refined stacks in mineral order
func stacks(cargo *shared.Cargo, refined bool) []shared.CargoItem {
	var out []shared.CargoItem
	for _, m := range shared.AllMinerals() {
		if item := cargo.Find(m, refined); item != nil {
			out = append(out, *item)
		}
	}
	return out
}
