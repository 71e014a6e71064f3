package ledger

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
	"github.com/andrescamacho/spaceminer-go/internal/application/ledger/commands"
	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
	domain "github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
)

// DefaultJournalBuffer is how many entries may wait for the writer
const DefaultJournalBuffer = 256

// JournalWriter moves journal entries off the simulation thread. Record never
// blocks: when the buffer is full the entry is dropped and counted.
type JournalWriter struct {
	mediator mediator.Mediator
	entries  chan domain.Entry
	dropped  atomic.Int64
	logger   *slog.Logger
}

// NewJournalWriter creates a writer that records entries through m
func NewJournalWriter(m mediator.Mediator, buffer int, logger *slog.Logger) *JournalWriter {
	if buffer <= 0 {
		buffer = DefaultJournalBuffer
	}
	if logger == nil {
		logger = common.DiscardLogger()
	}
	return &JournalWriter{
		mediator: m,
		entries:  make(chan domain.Entry, buffer),
		logger:   logger,
	}
}

// Record queues an entry for persistence
func (w *JournalWriter) Record(entry domain.Entry) {
	select {
	case w.entries <- entry:
	default:
		n := w.dropped.Add(1)
		w.logger.Warn("journal buffer full, entry dropped",
			"type", entry.Type,
			"amount", entry.Amount,
			"dropped_total", n)
	}
}

// Dropped reports how many entries were lost to a full buffer
func (w *JournalWriter) Dropped() int64 {
	return w.dropped.Load()
}

// Run persists entries until ctx is cancelled, then drains what is queued.
// Writes never see the cancellation: an entry taken off the queue is always
// persisted, whichever select case wins once ctx is done.
func (w *JournalWriter) Run(ctx context.Context) error {
	writeCtx := context.WithoutCancel(ctx)
	for {
		select {
		case entry := <-w.entries:
			w.write(writeCtx, entry)
		case <-ctx.Done():
			w.drain(writeCtx)
			return nil
		}
	}
}

func (w *JournalWriter) drain(ctx context.Context) {
	for {
		select {
		case entry := <-w.entries:
			w.write(ctx, entry)
		default:
			return
		}
	}
}

func (w *JournalWriter) write(ctx context.Context, entry domain.Entry) {
	if _, err := w.mediator.Send(ctx, commands.FromEntry(entry)); err != nil {
		w.logger.Error("failed to record transaction",
			"type", entry.Type,
			"amount", entry.Amount,
			"error", err)
	}
}
