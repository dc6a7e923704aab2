package main

import (
	"errors"
	"fmt"
)

// ErrDegenerateState is returned when a vector or distribution carries no
// probability mass, so it cannot be rescaled.
var ErrDegenerateState = errors.New("degenerate state: zero probability mass")

// UnknownGateError reports a gate token that is not in the gate table.
// It is never fatal: the runner logs it and moves on.
type UnknownGateError struct {
	Token string
}

func (e *UnknownGateError) Error() string {
	return fmt.Sprintf("unknown gate '%s'", e.Token)
}

// DomainError wraps a numerical failure (zero-norm vector, zero-mass
// distribution) together with the operation that hit it.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DomainError) Unwrap() error { return e.Err }

// InputError reports a failure to read the gate sequence from the console.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "read gate sequence: " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }
