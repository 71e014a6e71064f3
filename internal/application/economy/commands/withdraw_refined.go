package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

// WithdrawRefinedCommand moves refined goods from the refinery into the hold
type WithdrawRefinedCommand struct {
	Mineral  string `validate:"required,mineral"`
	Quantity int    `validate:"gt=0"`
}

// WithdrawRefinedHandler handles the WithdrawRefined command
type WithdrawRefinedHandler struct {
	economy Economy
}

// NewWithdrawRefinedHandler creates a new WithdrawRefinedHandler
func NewWithdrawRefinedHandler(economy Economy) *WithdrawRefinedHandler {
	return &WithdrawRefinedHandler{economy: economy}
}

// Handle executes the WithdrawRefined command
func (h *WithdrawRefinedHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*WithdrawRefinedCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *WithdrawRefinedCommand")
	}
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid withdrawal: %w", err)
	}

	return &EconomyResponse{
		Accepted: h.economy.WithdrawRefined(mineralOf(cmd.Mineral), cmd.Quantity),
	}, nil
}
