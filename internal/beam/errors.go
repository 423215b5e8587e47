package beam

import "errors"

// Domain errors for problem setup and solving.
var (
	// ErrUnknownEndCondition indicates an end-condition label outside the
	// six supported configurations.
	ErrUnknownEndCondition = errors.New("beam: unknown end condition")

	// ErrInvalidProblem indicates a problem definition that failed
	// validation at the configuration layer.
	ErrInvalidProblem = errors.New("beam: invalid problem definition")

	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("beam: invalid state (NaN or Inf detected)")
)
