package shared

import "time"

// Clock supplies wall-clock readings. Refining jobs compare absolute readings,
// so ticking the ledger at irregular intervals is safe.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// RealClock reads the system clock
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Sleep blocks for the given duration
func (r *RealClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// MockClock is a hand-driven clock for tests and replays
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock starting at the given time.
// A zero start is replaced by a fixed epoch so runs stay reproducible.
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &MockClock{CurrentTime: startTime}
}

// Now returns the mock's current time
func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// Sleep advances the mock clock without blocking
func (m *MockClock) Sleep(d time.Duration) {
	m.Advance(d)
}

// Advance moves the clock forward and returns the new reading
func (m *MockClock) Advance(d time.Duration) time.Time {
	m.CurrentTime = m.CurrentTime.Add(d)
	return m.CurrentTime
}

// SetTime jumps the clock to t
func (m *MockClock) SetTime(t time.Time) {
	m.CurrentTime = t
}

// RemainingUntil returns how long until deadline, floored at zero
func RemainingUntil(now, deadline time.Time) time.Duration {
	if d := deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}
