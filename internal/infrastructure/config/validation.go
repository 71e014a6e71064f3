package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks a Config against its tags and the cross-field rules below.
// Errors name fields by their config key, e.g. "simulation.frame_rate".
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the simulation and database rules registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterStructValidation(validateSimulation, SimulationConfig{})
	v.RegisterStructValidation(validateDatabase, DatabaseConfig{})

	return &Validator{validate: v}
}

// The camera clamps to the world edges, so a viewport wider than the world has nowhere to sit
func validateSimulation(sl validator.StructLevel) {
	sim := sl.Current().Interface().(SimulationConfig)
	if sim.ViewportWidth > sim.WorldSize {
		sl.ReportError(sim.ViewportWidth, "viewport_width", "ViewportWidth", "ltefield_world", "")
	}
	if sim.ViewportHeight > sim.WorldSize {
		sl.ReportError(sim.ViewportHeight, "viewport_height", "ViewportHeight", "ltefield_world", "")
	}
}

func validateDatabase(sl validator.StructLevel) {
	db := sl.Current().Interface().(DatabaseConfig)
	if db.Type != "postgres" || db.URL != "" {
		return
	}
	if db.Host == "" {
		sl.ReportError(db.Host, "host", "Host", "required_without_url", "")
	}
	if db.Name == "" {
		sl.ReportError(db.Name, "name", "Name", "required_without_url", "")
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into one line per field
func (v *Validator) formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		// Namespace is "Config.simulation.frame_rate"; drop the root type
		_, key, _ := strings.Cut(e.Namespace(), ".")
		rule := e.Tag()
		if e.Param() != "" {
			rule += "=" + e.Param()
		}
		messages = append(messages, fmt.Sprintf("%s: failed %s (value: '%v')", key, rule, e.Value()))
	}
	return fmt.Errorf("invalid configuration:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
