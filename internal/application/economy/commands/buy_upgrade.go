package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/economy"
)

// BuyUpgradeCommand buys one level of a ship upgrade at the quoted cost
type BuyUpgradeCommand struct {
	Kind string `validate:"required,upgrade"`
	Cost int    `validate:"gte=0"`
}

// BuyUpgradeHandler handles the BuyUpgrade command
type BuyUpgradeHandler struct {
	economy Economy
}

// NewBuyUpgradeHandler creates a new BuyUpgradeHandler
func NewBuyUpgradeHandler(economy Economy) *BuyUpgradeHandler {
	return &BuyUpgradeHandler{economy: economy}
}

// Handle executes the BuyUpgrade command
func (h *BuyUpgradeHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*BuyUpgradeCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *BuyUpgradeCommand")
	}
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid upgrade: %w", err)
	}

	return &EconomyResponse{
		Accepted: h.economy.BuyUpgrade(economy.UpgradeKind(cmd.Kind), cmd.Cost),
	}, nil
}
