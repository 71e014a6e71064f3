package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/engine"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// StatusSource exposes the engine's light status view
type StatusSource interface {
	Status() engine.Status
}

// GetMarketQuotesQuery prices refined goods at a station and the next level of
// every upgrade for the current ship. An empty Station uses the docked one.
type GetMarketQuotesQuery struct {
	Station string
}

// MineralQuote is the refined unit price of one mineral at a station
type MineralQuote struct {
	Mineral     string
	UnitPrice   int
	Specialized bool
}

// UpgradeQuote is the price of the next level of one upgrade
type UpgradeQuote struct {
	Kind         string
	Name         string
	Description  string
	CurrentLevel int
	Cost         int
	Affordable   bool
}

// GetMarketQuotesResponse lists mineral and upgrade quotes
type GetMarketQuotesResponse struct {
	Station  string
	Credits  int
	Minerals []MineralQuote
	Upgrades []UpgradeQuote
}

// GetMarketQuotesHandler handles the GetMarketQuotes query
type GetMarketQuotesHandler struct {
	source StatusSource
}

// NewGetMarketQuotesHandler creates a new GetMarketQuotesHandler
func NewGetMarketQuotesHandler(source StatusSource) *GetMarketQuotesHandler {
	return &GetMarketQuotesHandler{source: source}
}

// Handle executes the GetMarketQuotes query
func (h *GetMarketQuotesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetMarketQuotesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetMarketQuotesQuery")
	}

	status := h.source.Status()
	station, err := pickStation(status, query.Station)
	if err != nil {
		return nil, err
	}

	resp := &GetMarketQuotesResponse{Credits: status.Player.Credits}
	if station != nil {
		resp.Station = station.Name
	}

	for _, m := range shared.AllMinerals() {
		specialized := station != nil && station.Specializes(m)
		resp.Minerals = append(resp.Minerals, MineralQuote{
			Mineral:     m.String(),
			UnitPrice:   economy.RefinedUnitPrice(m, specialized),
			Specialized: specialized,
		})
	}

	for _, spec := range economy.Catalog() {
		level := status.Player.UpgradeLevels[string(spec.Kind)]
		cost := economy.Quote(spec.Kind, level)
		resp.Upgrades = append(resp.Upgrades, UpgradeQuote{
			Kind:         string(spec.Kind),
			Name:         spec.Name,
			Description:  spec.Description,
			CurrentLevel: level,
			Cost:         cost,
			Affordable:   status.Player.Credits >= cost,
		})
	}

	return resp, nil
}

func pickStation(status engine.Status, name string) (*engine.StationView, error) {
	if name == "" {
		return status.NearbyStation, nil
	}
	for i := range status.Stations {
		if status.Stations[i].Name == name {
			return &status.Stations[i], nil
		}
	}
	return nil, fmt.Errorf("unknown station %q", name)
}
