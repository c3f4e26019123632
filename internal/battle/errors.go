package battle

import "errors"

var (
	ErrEmptyRoster   = errors.New("roster has no combatants")
	ErrInvalidHealth = errors.New("combatant must start alive with positive health")
	ErrNoProgress    = errors.New("battle exceeded the turn limit without a winner")
	ErrEntropy       = errors.New("random source failed")
	// ErrAbandoned is reported when the consumer of Log stops iterating
	// before the battle is decided.
	ErrAbandoned   = errors.New("battle log abandoned before completion")
	ErrNotFinished = errors.New("battle has not finished")
)
