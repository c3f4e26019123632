package service

import "errors"

var (
	ErrInvalidRoster    = errors.New("invalid roster")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrMatchNotFound    = errors.New("match not found")
	ErrInvalidMatchID   = errors.New("invalid match id")
	ErrSimulationFailed = errors.New("battle could not be simulated")
	ErrInvalidRuns      = errors.New("runs out of range")
)
