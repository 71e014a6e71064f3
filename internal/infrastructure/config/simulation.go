package config

// SimulationConfig holds world and frame-loop settings
type SimulationConfig struct {
	// Side length of the square world
	WorldSize float64 `mapstructure:"world_size" validate:"gte=2000"`

	// Random tier-1 spawn attempts made at world creation
	InitialAsteroids int `mapstructure:"initial_asteroids" validate:"min=0,max=100000"`

	// Viewport the camera centres on the ship
	ViewportWidth  float64 `mapstructure:"viewport_width" validate:"gt=0"`
	ViewportHeight float64 `mapstructure:"viewport_height" validate:"gt=0"`

	// Ticks per second for the headless runner
	FrameRate int `mapstructure:"frame_rate" validate:"min=1,max=1000"`

	// Random seed; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`

	// Stop after this many ticks; 0 runs until interrupted
	MaxTicks uint64 `mapstructure:"max_ticks"`

	// Let the scripted pilot fly the ship
	Autopilot bool `mapstructure:"autopilot"`

	// Persist credit movements to the database
	Journal bool `mapstructure:"journal"`
}
