package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	"github.com/andrescamacho/spaceminer-go/internal/domain/refinery"
)

// StartRefiningJobCommand queues a refining job, paying the tier's fee
type StartRefiningJobCommand struct {
	Mineral  string `validate:"required,mineral"`
	Quantity int    `validate:"gt=0"`
	Tier     string `validate:"required,jobtier"`
}

// StartRefiningJobHandler handles the StartRefiningJob command
type StartRefiningJobHandler struct {
	economy Economy
}

// NewStartRefiningJobHandler creates a new StartRefiningJobHandler
func NewStartRefiningJobHandler(economy Economy) *StartRefiningJobHandler {
	return &StartRefiningJobHandler{economy: economy}
}

// Handle executes the StartRefiningJob command
func (h *StartRefiningJobHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*StartRefiningJobCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartRefiningJobCommand")
	}
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid refining job: %w", err)
	}

	accepted := h.economy.StartRefiningJob(mineralOf(cmd.Mineral), cmd.Quantity, refinery.JobTier(cmd.Tier))
	return &EconomyResponse{Accepted: accepted}, nil
}
