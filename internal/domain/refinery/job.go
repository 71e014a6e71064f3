package refinery

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

// JobTier selects the price/speed trade-off of a refining job
type JobTier string

const (
	// JobTierStandard is the cheap, slow queue
	JobTierStandard JobTier = "standard"

	// JobTierPriority is the expensive, fast queue
	JobTierPriority JobTier = "priority"
)

var tierCosts = map[JobTier]int{
	JobTierStandard: 100,
	JobTierPriority: 250,
}

var tierDurations = map[JobTier]time.Duration{
	JobTierStandard: 300000 * time.Millisecond,
	JobTierPriority: 60000 * time.Millisecond,
}

// IsValid checks if the tier is known
func (t JobTier) IsValid() bool {
	_, ok := tierCosts[t]
	return ok
}

// Cost returns the credits charged up front for a job of this tier
func (t JobTier) Cost() int {
	return tierCosts[t]
}

// Duration returns how long a job of this tier takes
func (t JobTier) Duration() time.Duration {
	return tierDurations[t]
}

func (t JobTier) String() string {
	return string(t)
}

// ParseJobTier parses a string into a JobTier
func ParseJobTier(s string) (JobTier, error) {
	t := JobTier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid refining tier: %s", s)
	}
	return t, nil
}

// JobStatus is the refining job lifecycle state
type JobStatus string

const (
	// JobStatusPending means the job is still processing
	JobStatusPending JobStatus = "PENDING"

	// JobStatusReady means the duration elapsed. A ready job is credited and
	// removed from its account in the same step, so it is never observed in a list.
	JobStatusReady JobStatus = "READY"
)

// Job is one batch of raw ore being refined.
//
// Invariants:
// - Quantity > 0
// - Status only moves PENDING -> READY
// - StartedAt and Duration never change after creation
type Job struct {
	ID        string
	Mineral   shared.Mineral
	Quantity  int
	Tier      JobTier
	Cost      int
	StartedAt time.Time
	Duration  time.Duration
	Status    JobStatus
}

// NewJob creates a pending job started at now
func NewJob(mineral shared.Mineral, quantity int, tier JobTier, now time.Time) (*Job, error) {
	if !mineral.IsValid() {
		return nil, shared.NewValidationError("mineral", fmt.Sprintf("unknown mineral %q", mineral))
	}
	if quantity <= 0 {
		return nil, shared.NewValidationError("quantity", "must be positive")
	}
	if !tier.IsValid() {
		return nil, shared.NewValidationError("tier", fmt.Sprintf("unknown tier %q", tier))
	}
	return &Job{
		ID:        uuid.NewString(),
		Mineral:   mineral,
		Quantity:  quantity,
		Tier:      tier,
		Cost:      tier.Cost(),
		StartedAt: now,
		Duration:  tier.Duration(),
		Status:    JobStatusPending,
	}, nil
}

// ReadyAt returns the absolute completion time
func (j *Job) ReadyAt() time.Time {
	return j.StartedAt.Add(j.Duration)
}

// IsDue reports whether the job's duration has elapsed at now
func (j *Job) IsDue(now time.Time) bool {
	return !now.Before(j.ReadyAt())
}

// Remaining returns max(0, duration - (now - start))
func (j *Job) Remaining(now time.Time) time.Duration {
	return shared.RemainingUntil(now, j.ReadyAt())
}

// Progress returns the completed fraction in [0, 1]
func (j *Job) Progress(now time.Time) float64 {
	if j.Duration <= 0 {
		return 1
	}
	done := float64(now.Sub(j.StartedAt)) / float64(j.Duration)
	return shared.ClampFloat(done, 0, 1)
}

// MarkReady transitions PENDING to READY
func (j *Job) MarkReady() error {
	if j.Status != JobStatusPending {
		return fmt.Errorf("cannot mark ready from %s state", j.Status)
	}
	j.Status = JobStatusReady
	return nil
}

// IsPending returns true while the job is processing
func (j *Job) IsPending() bool {
	return j.Status == JobStatusPending
}
