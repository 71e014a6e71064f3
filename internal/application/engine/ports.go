package engine

import (
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/domain/ledger"
)

// Journal receives a ledger entry for every credit movement. Record must not
// block the simulation; implementations buffer and persist asynchronously.
type Journal interface {
	Record(entry ledger.Entry)
}

// MetricsRecorder receives simulation and economy measurements
type MetricsRecorder interface {
	RecordTick(duration time.Duration, entities int)
	RecordFracture(tier int, mineral string)
	RecordPickup(mineral string)
	RecordRequest(operation string, accepted bool)
	RecordJobCompleted(mineral string, quantity int)
	RecordCredits(credits int)
}

type noopJournal struct{}

func (noopJournal) Record(ledger.Entry) {}

type noopMetrics struct{}

func (noopMetrics) RecordTick(time.Duration, int)  {}
func (noopMetrics) RecordFracture(int, string)     {}
func (noopMetrics) RecordPickup(string)            {}
func (noopMetrics) RecordRequest(string, bool)     {}
func (noopMetrics) RecordJobCompleted(string, int) {}
func (noopMetrics) RecordCredits(int)              {}
