package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

// DepositOreCommand moves raw ore from the hold into the refinery account
type DepositOreCommand struct {
	Mineral  string `validate:"required,mineral"`
	Quantity int    `validate:"gt=0"`
}

// DepositOreHandler handles the DepositOre command
type DepositOreHandler struct {
	economy Economy
}

// NewDepositOreHandler creates a new DepositOreHandler
func NewDepositOreHandler(economy Economy) *DepositOreHandler {
	return &DepositOreHandler{economy: economy}
}

// Handle executes the DepositOre command
func (h *DepositOreHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*DepositOreCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DepositOreCommand")
	}
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid deposit: %w", err)
	}

	return &EconomyResponse{
		Accepted: h.economy.DepositOre(mineralOf(cmd.Mineral), cmd.Quantity),
	}, nil
}
