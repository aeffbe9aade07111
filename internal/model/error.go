package model

import "errors"

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidInput    = errors.New("invalid input")
)

// InvalidInputError reports a prompt answer that could not be parsed.
// Reason is shown to the user as is.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
