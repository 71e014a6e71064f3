// Package audio turns engine sound cues into something a headless run can
// observe: debug log lines and per-cue counters.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
)

// Cue names used in logs and counts
const (
	CueThrusterOn  = "thruster_on"
	CueThrusterOff = "thruster_off"
	CueLaserOn     = "laser_on"
	CueLaserOff    = "laser_off"
	CueTractorOn   = "tractor_on"
	CueTractorOff  = "tractor_off"
	CueExplosion   = "explosion"
	CueCollect     = "collect"
)

// LogCues implements ports.AudioCues by logging. Pickup pulses can fire every
// frame, so their log lines are sampled at most once per sample interval; counts are exact.
type LogCues struct {
	logger  *slog.Logger
	collect rate.Sometimes

	mu     sync.Mutex
	counts map[string]int
}

// DefaultCueSample is the pickup log interval used when none is configured
const DefaultCueSample = time.Second

// NewLogCues creates a cue sink writing to logger
func NewLogCues(logger *slog.Logger, sample time.Duration) *LogCues {
	if logger == nil {
		logger = common.DiscardLogger()
	}
	if sample <= 0 {
		sample = DefaultCueSample
	}
	return &LogCues{
		logger:  logger.With("component", "audio"),
		collect: rate.Sometimes{Interval: sample},
		counts:  make(map[string]int),
	}
}

func (c *LogCues) Thruster(on bool) { c.toggle(on, CueThrusterOn, CueThrusterOff) }
func (c *LogCues) Laser(on bool)    { c.toggle(on, CueLaserOn, CueLaserOff) }
func (c *LogCues) Tractor(on bool)  { c.toggle(on, CueTractorOn, CueTractorOff) }

func (c *LogCues) Explosion(size string) {
	c.count(CueExplosion + "_" + size)
	c.logger.Debug("cue", "sound", CueExplosion, "size", size)
}

func (c *LogCues) Collect() {
	n := c.count(CueCollect)
	c.collect.Do(func() {
		c.logger.Debug("cue", "sound", CueCollect, "total", n)
	})
}

// Counts returns a copy of how often each cue fired
func (c *LogCues) Counts() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

func (c *LogCues) toggle(on bool, onName, offName string) {
	name := offName
	if on {
		name = onName
	}
	c.count(name)
	c.logger.Debug("cue", "sound", name)
}

func (c *LogCues) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[name]++
	return c.counts[name]
}
