// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrInsufficientData = errors.New("insufficient data for calculation")
	ErrInvalidHorizon   = errors.New("invalid projection horizon")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrDataNotFound     = errors.New("data not found")
	ErrDatabaseError    = errors.New("database error")
	ErrInputValidation  = errors.New("input validation failed")
)

// ValidationError represents a validation error on an input record field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ScheduleError represents a contribution schedule that cannot be normalized
// to the projection period unit. It names the offending holding so the caller
// can surface it.
type ScheduleError struct {
	AssetID   string
	Frequency string
	Message   string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("schedule error [%s] frequency %q: %s", e.AssetID, e.Frequency, e.Message)
}

// NewScheduleError creates a new ScheduleError.
func NewScheduleError(assetID, frequency, message string) *ScheduleError {
	return &ScheduleError{
		AssetID:   assetID,
		Frequency: frequency,
		Message:   message,
	}
}

// ConfigError represents an invalid engine configuration value. Configuration
// errors are fatal at run start.
type ConfigError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfigInvalid
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, value interface{}, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// GoalError represents an error evaluating a goal.
type GoalError struct {
	GoalID  string
	Message string
	Err     error
}

func (e *GoalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("goal error [%s]: %s: %v", e.GoalID, e.Message, e.Err)
	}
	return fmt.Sprintf("goal error [%s]: %s", e.GoalID, e.Message)
}

func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError.
func NewGoalError(goalID, message string, err error) *GoalError {
	return &GoalError{
		GoalID:  goalID,
		Message: message,
		Err:     err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
