package config

import "time"

// LoggingConfig selects where the simulation's structured log goes
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// stdout, stderr or file; the headless runner prints its summary on stdout,
	// so stderr keeps the two apart
	Output   string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	// Adds file:line to every record
	IncludeCaller bool `mapstructure:"include_caller"`

	// Minimum gap between logged ore pickups; 0 means one second
	CueSampleInterval time.Duration `mapstructure:"cue_sample_interval" validate:"gte=0"`
}

// ToFile reports whether records are appended to FilePath
func (c LoggingConfig) ToFile() bool {
	return c.Output == "file"
}
