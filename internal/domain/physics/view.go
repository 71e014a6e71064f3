package physics

import (
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/domain/shared"
)

const (
	MinZoom = 0.5
	MaxZoom = 2.0
	// ZoomEase is the fraction of the gap to the target zoom closed each tick
	ZoomEase = 0.1
	// ShakeDuration is how long a screen shake lasts
	ShakeDuration = 400 * time.Millisecond
)

// Zoom eases the view scale toward a clamped target
type Zoom struct {
	Current float64
	Target  float64
}

// NewZoom starts at scale 1
func NewZoom() Zoom {
	return Zoom{Current: 1, Target: 1}
}

// Adjust shifts the target by delta, clamped into [MinZoom, MaxZoom]
func (z *Zoom) Adjust(delta float64) {
	z.Target = shared.ClampFloat(z.Target+delta, MinZoom, MaxZoom)
}

// Step moves the current zoom one tick toward the target
func (z *Zoom) Step() {
	z.Current += (z.Target - z.Current) * ZoomEase
}

// Shake is the screen-shake state. Unlike motion it decays with wall time.
type Shake struct {
	Strength float64
	Timer    time.Duration
}

// Trigger restarts the shake at strength
func (s *Shake) Trigger(strength float64) {
	s.Strength = strength
	s.Timer = ShakeDuration
}

// Decay counts the timer down by dt, stopping at zero
func (s *Shake) Decay(dt time.Duration) {
	if s.Timer <= 0 {
		return
	}
	s.Timer -= dt
	if s.Timer < 0 {
		s.Timer = 0
	}
}

// Magnitude is the current offset amplitude, fading linearly over the duration
func (s Shake) Magnitude() float64 {
	if s.Timer <= 0 {
		return 0
	}
	return s.Strength * float64(s.Timer) / float64(ShakeDuration)
}
