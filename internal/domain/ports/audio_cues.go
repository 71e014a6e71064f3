package ports

// AudioCues is the fire-and-forget sound surface the simulation drives.
//
// The interface lives in the domain layer so the engine never depends on a
// synthesizer; adapters implement it:
//
//	┌─────────────────────────┐
//	│  Engine (application)   │
//	└───────────┬─────────────┘
//	            │ calls on transitions
//	            ↓
//	┌─────────────────────────┐
//	│  AudioCues (this port)  │
//	└───────────┬─────────────┘
//	            ↑
//	            │ implements
//	┌─────────────────────────┐
//	│  adapters/audio         │
//	└─────────────────────────┘
//
// Implementations must not block and must not call back into the engine.
type AudioCues interface {
	// Thruster switches the engine hum
	Thruster(on bool)
	// Laser switches the mining beam tone
	Laser(on bool)
	// Tractor switches the tractor beam tone
	Tractor(on bool)
	// Explosion plays a fracture blast; size is "large", "medium" or "small"
	Explosion(size string)
	// Collect plays the pickup pulse
	Collect()
}

// NoopAudio discards every cue
type NoopAudio struct{}

func (NoopAudio) Thruster(bool)    {}
func (NoopAudio) Laser(bool)       {}
func (NoopAudio) Tractor(bool)     {}
func (NoopAudio) Explosion(string) {}
func (NoopAudio) Collect()         {}
