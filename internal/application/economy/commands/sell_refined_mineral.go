package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

// SellRefinedMineralCommand sells refined goods from the hold. The unit price
// is quoted by the caller, normally from the station being docked at.
type SellRefinedMineralCommand struct {
	Mineral   string `validate:"required,mineral"`
	Quantity  int    `validate:"gt=0"`
	UnitPrice int    `validate:"gte=0"`
}

// SellRefinedMineralHandler handles the SellRefinedMineral command
type SellRefinedMineralHandler struct {
	economy Economy
}

// NewSellRefinedMineralHandler creates a new SellRefinedMineralHandler
func NewSellRefinedMineralHandler(economy Economy) *SellRefinedMineralHandler {
	return &SellRefinedMineralHandler{economy: economy}
}

// Handle executes the SellRefinedMineral command
func (h *SellRefinedMineralHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SellRefinedMineralCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SellRefinedMineralCommand")
	}
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid sale: %w", err)
	}

	accepted := h.economy.SellRefinedMineral(mineralOf(cmd.Mineral), cmd.Quantity, cmd.UnitPrice)
	return &EconomyResponse{Accepted: accepted}, nil
}
