package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Economy errors. Every refusal is one of these; none of them leave partial state behind.

type EconomyError struct {
	*DomainError
}

func NewEconomyError(message string) *EconomyError {
	return &EconomyError{DomainError: &DomainError{Message: message}}
}

type InsufficientCreditsError struct {
	*EconomyError
	Required  int
	Available int
}

func NewInsufficientCreditsError(required, available int) *InsufficientCreditsError {
	return &InsufficientCreditsError{
		EconomyError: NewEconomyError(fmt.Sprintf("insufficient credits: need %d, have %d", required, available)),
		Required:     required,
		Available:    available,
	}
}

// InsufficientCargoError means the ship's hold lacks the requested stack quantity
type InsufficientCargoError struct {
	*EconomyError
	Mineral   Mineral
	Refined   bool
	Required  int
	Available int
}

func NewInsufficientCargoError(mineral Mineral, refined bool, required, available int) *InsufficientCargoError {
	state := "raw"
	if refined {
		state = "refined"
	}
	return &InsufficientCargoError{
		EconomyError: NewEconomyError(fmt.Sprintf("insufficient %s %s in cargo: need %d, have %d", state, mineral, required, available)),
		Mineral:      mineral,
		Refined:      refined,
		Required:     required,
		Available:    available,
	}
}

// CargoCapacityError means the operation would overfill the hold
type CargoCapacityError struct {
	*EconomyError
	Requested int
	Free      int
}

func NewCargoCapacityError(requested, free int) *CargoCapacityError {
	return &CargoCapacityError{
		EconomyError: NewEconomyError(fmt.Sprintf("insufficient cargo space: need %d, free %d", requested, free)),
		Requested:    requested,
		Free:         free,
	}
}

// InsufficientBalanceError means a refinery ledger balance is too low
type InsufficientBalanceError struct {
	*EconomyError
	Mineral   Mineral
	Refined   bool
	Required  int
	Available int
}

func NewInsufficientBalanceError(mineral Mineral, refined bool, required, available int) *InsufficientBalanceError {
	state := "raw"
	if refined {
		state = "refined"
	}
	return &InsufficientBalanceError{
		EconomyError: NewEconomyError(fmt.Sprintf("insufficient %s %s in refinery: need %d, have %d", state, mineral, required, available)),
		Mineral:      mineral,
		Refined:      refined,
		Required:     required,
		Available:    available,
	}
}
