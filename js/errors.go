package js

import "errors"

var (
	// ErrInvalidArgument is returned when a required input is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidValue is returned when a supplied value does not satisfy the grammar of the
	// position it is used in, such as an identifier name starting with a digit.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidOperation is returned when a node can not be rendered or converted in its
	// current state.
	ErrInvalidOperation = errors.New("invalid operation")
)
