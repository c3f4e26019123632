package service

import (
	"errors"
	"fmt"

	"github.com/ericogr/tournament-arena/internal/battle"
	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/dedupe"
	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/keys"
	"github.com/ericogr/tournament-arena/internal/logging"
	"github.com/ericogr/tournament-arena/internal/storage"

	"github.com/google/uuid"
)

// MatchRepo is the storage a simulation needs.
type MatchRepo interface {
	UnitCatalog
	CreateMatch(m *game.Match) error
	UpdateStatsOnMatchEnd(m *game.Match) error
}

// SimulateMatch validates the rosters, resolves the battle and records the
// result. Requests carrying a seed are fully determined by their inputs, so
// identical ones running at the same time share a single simulation and
// record; the boolean reports whether the result was shared.
func SimulateMatch(repo MatchRepo, req MatchRequest, settings Settings) (*game.Match, bool, error) {
	if req.Seed == 0 {
		seed, err := battle.NewCryptoSeed()
		if err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
		}
		req.Seed = seed
		m, err := runAndRecord(repo, req, settings)
		return m, false, err
	}

	key := keys.MatchKey(req.Seed, req.Player1, req.Player2)
	v, err, shared := dedupe.MatchGroup.Do(key, func() (interface{}, error) {
		return runAndRecord(repo, req, settings)
	})
	if err != nil {
		return nil, shared, err
	}
	m := v.(*game.Match)
	if shared {
		logging.Info("match result shared", logging.Fields{
			constants.LogFieldMatchID: m.PublicID,
			constants.LogFieldSeed:    m.Seed,
			constants.LogFieldShared:  true,
		})
	}
	return m, shared, nil
}

// Simulate resolves a single match without recording it and returns the
// result together with the seed that was used.
func Simulate(catalog UnitCatalog, req MatchRequest, settings Settings) (*battle.Result, int64, error) {
	if req.Seed == 0 {
		seed, err := battle.NewCryptoSeed()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
		}
		req.Seed = seed
	}
	sideA, sideB, err := buildSides(catalog, req, settings)
	if err != nil {
		return nil, req.Seed, err
	}
	res, err := battle.Resolve(sideA, sideB, battle.NewSeededSource(req.Seed), battle.WithMaxTurns(settings.MaxTurns))
	if err != nil {
		return nil, req.Seed, classifyBattleError(req, err)
	}
	return res, req.Seed, nil
}

func runAndRecord(repo MatchRepo, req MatchRequest, settings Settings) (*game.Match, error) {
	sideA, sideB, err := buildSides(repo, req, settings)
	if err != nil {
		return nil, err
	}
	start := append(startHealth(sideA), startHealth(sideB)...)

	res, err := battle.Resolve(sideA, sideB, battle.NewSeededSource(req.Seed), battle.WithMaxTurns(settings.MaxTurns))
	if err != nil {
		return nil, classifyBattleError(req, err)
	}

	m := newMatchRecord(req, sideA, sideB, start, res.Winner, res.Turns, res.Log)
	if err := record(repo, m); err != nil {
		return nil, err
	}
	return m, nil
}

// classifyBattleError maps engine failures onto service errors.
func classifyBattleError(req MatchRequest, err error) error {
	if errors.Is(err, battle.ErrEmptyRoster) || errors.Is(err, battle.ErrInvalidHealth) {
		return fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	logging.Error("battle simulation failed", err, logging.Fields{
		constants.LogFieldPlayer1: req.Player1.Player,
		constants.LogFieldPlayer2: req.Player2.Player,
		constants.LogFieldSeed:    req.Seed,
	})
	return fmt.Errorf("%w: %w", ErrSimulationFailed, err)
}

func startHealth(side []*battle.Combatant) []int {
	out := make([]int, len(side))
	for i, c := range side {
		out[i] = c.Health
	}
	return out
}

// newMatchRecord builds the stored record from the final combatant state.
// start holds the starting health of sideA followed by sideB.
func newMatchRecord(req MatchRequest, sideA, sideB []*battle.Combatant, start []int, winner string, turns int, log []string) *game.Match {
	m := &game.Match{
		PublicID: uuid.NewString(),
		Player1:  sideA[0].Owner,
		Player2:  sideB[0].Owner,
		Winner:   winner,
		Turns:    turns,
		Seed:     req.Seed,
		Status:   game.StatusFinished,
		Entries:  make([]game.MatchEntry, 0, len(sideA)+len(sideB)),
	}
	if winner == "" {
		m.Status = game.StatusStalemate
	}
	m.SetLog(log)

	i := 0
	for sideNo, side := range [][]*battle.Combatant{sideA, sideB} {
		for slot, c := range side {
			m.Entries = append(m.Entries, game.MatchEntry{
				Side:        sideNo + 1,
				Slot:        slot,
				Name:        c.Name,
				Owner:       c.Owner,
				StartHealth: start[i],
				FinalHealth: c.Health,
				Attack:      c.Attack,
				Dead:        c.Dead,
			})
			i++
		}
	}
	return m
}

func record(repo MatchRepo, m *game.Match) error {
	if err := repo.CreateMatch(m); err != nil {
		logging.Error("failed to save match", err, logging.Fields{constants.LogFieldMatchID: m.PublicID})
		return err
	}
	if err := repo.UpdateStatsOnMatchEnd(m); err != nil {
		// the match itself is stored; stats can be recounted later
		logging.Error("failed to update player stats", err, logging.Fields{constants.LogFieldMatchID: m.PublicID})
	}
	logging.Info("match recorded", logging.Fields{
		constants.LogFieldMatchID: m.PublicID,
		constants.LogFieldPlayer1: m.Player1,
		constants.LogFieldPlayer2: m.Player2,
		constants.LogFieldWinner:  m.Winner,
		constants.LogFieldTurns:   m.Turns,
		constants.LogFieldSeed:    m.Seed,
	})
	return nil
}

// MatchReader is the storage needed to read matches back.
type MatchReader interface {
	GetMatchByPublicID(id string) (*game.Match, error)
}

// GetMatch loads a recorded match by its public ID.
func GetMatch(repo MatchReader, id string) (*game.Match, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidMatchID
	}
	m, err := repo.GetMatchByPublicID(id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && m == nil) {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
