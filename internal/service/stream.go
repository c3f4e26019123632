package service

import (
	"fmt"

	"github.com/ericogr/tournament-arena/internal/battle"
	"github.com/ericogr/tournament-arena/internal/game"
)

// StreamMatch resolves a match lazily, handing every log line to emit as soon
// as it happens, and records the result once the battle is decided. If emit
// fails the battle is abandoned and nothing is recorded.
func StreamMatch(repo MatchRepo, req MatchRequest, settings Settings, emit func(line string) error) (*game.Match, error) {
	if req.Seed == 0 {
		seed, err := battle.NewCryptoSeed()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
		}
		req.Seed = seed
	}
	sideA, sideB, err := buildSides(repo, req, settings)
	if err != nil {
		return nil, err
	}
	start := append(startHealth(sideA), startHealth(sideB)...)

	b, err := battle.New(sideA, sideB, battle.NewSeededSource(req.Seed), battle.WithMaxTurns(settings.MaxTurns))
	if err != nil {
		return nil, classifyBattleError(req, err)
	}

	var emitErr error
	lines := make([]string, 0, 32)
	for line := range b.Log() {
		lines = append(lines, line)
		if emitErr = emit(line); emitErr != nil {
			break
		}
	}
	if emitErr != nil {
		return nil, fmt.Errorf("stream match: %w", emitErr)
	}
	res, err := b.Result()
	if err != nil {
		return nil, classifyBattleError(req, err)
	}

	m := newMatchRecord(req, sideA, sideB, start, res.Winner, res.Turns, lines)
	if err := record(repo, m); err != nil {
		return nil, err
	}
	return m, nil
}
