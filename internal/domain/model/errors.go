package model

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable is returned by every prediction when no artifact
// bundle has been loaded.
var ErrModelUnavailable = errors.New("model not loaded")

// ConfigurationError reports a missing or unusable artifact, schema or
// dataset layout. It is fatal at startup and before training begins.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewConfigurationError wraps err with a reason.
func NewConfigurationError(reason string, err error) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Err: err}
}

// ValidationError reports a request field that is absent or not numeric.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// DegenerateInputError reports an input that would turn a derived feature
// into an infinite or NaN value.
type DegenerateInputError struct {
	Field  string
	Reason string // defaults to "must be positive"
	Value  float64
}

func (e *DegenerateInputError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must be positive"
	}
	return fmt.Sprintf("%s %s, got %v", e.Field, reason, e.Value)
}

// UnknownClassError reports a classifier output with no catalog entry. It is
// recovered inside the inference engine and never reaches a caller.
type UnknownClassError struct {
	ClassID int
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("class %d has no catalog entry", e.ClassID)
}

// IsClientError reports whether err is caused by the caller's input.
func IsClientError(err error) bool {
	var ve *ValidationError
	var de *DegenerateInputError
	return errors.As(err, &ve) || errors.As(err, &de)
}
