package router

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPolicy  = errors.New("unknown policy")
	ErrInvalidContext = errors.New("invalid context")
)

type UnknownPolicyError struct {
	PolicyID string
}

func (e *UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown policy %q", e.PolicyID)
}

func (e *UnknownPolicyError) Unwrap() error { return ErrUnknownPolicy }

// InvalidContextError reports the first non-finite numeric value found in a
// reward or context field.
type InvalidContextError struct {
	Field string
	Value float64
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("non-finite value %v for %q", e.Value, e.Field)
}

func (e *InvalidContextError) Unwrap() error { return ErrInvalidContext }
