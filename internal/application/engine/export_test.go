package engine

import (
	"github.com/andrescamacho/spaceminer-go/internal/domain/player"
	"github.com/andrescamacho/spaceminer-go/internal/domain/world"
)

// Store exposes the world store to tests
func (e *Engine) Store() *world.Store { return e.store }

// Ship exposes the live player ship to tests
func (e *Engine) Ship() *player.Ship { return e.ship }
