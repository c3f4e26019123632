package service

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ericogr/tournament-arena/internal/battle"
	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/logging"

	"golang.org/x/sync/errgroup"
)

// MaxBatchRuns bounds a single batch request.
const MaxBatchRuns = 1000

// BatchRequest asks for the same pairing to be simulated Runs times. Run i
// uses seed RunSeed(Seed, i).
type BatchRequest struct {
	Player1 game.Roster `json:"player1" yaml:"player1"`
	Player2 game.Roster `json:"player2" yaml:"player2"`
	Seed    int64       `json:"seed,omitempty" yaml:"seed,omitempty"`
	Runs    int         `json:"runs" yaml:"runs"`
}

// BatchSummary aggregates the outcome of a batch. Failed runs (battles that
// hit the turn limit) are counted but excluded from the turn statistics.
type BatchSummary struct {
	Runs         int            `json:"runs"`
	Seed         int64          `json:"seed"`
	Wins         map[string]int `json:"wins"`
	Stalemates   int            `json:"stalemates"`
	Failures     int            `json:"failures"`
	AverageTurns float64        `json:"average_turns"`
	MinTurns     int            `json:"min_turns"`
	MaxTurns     int            `json:"max_turns"`
}

// RunSeed derives the seed of run i of a batch starting at base. Zero is
// skipped since a seeded source treats it as 1, which would replay run
// 1-base of a batch with a negative base.
func RunSeed(base int64, i int) int64 {
	s := base + int64(i)
	if base < 0 && s >= 0 {
		s++
	}
	return s
}

type runOutcome struct {
	winner string
	turns  int
	failed bool
}

// SimulateBatch runs the pairing Runs times on a bounded worker pool. Nothing
// is recorded. workers <= 0 uses GOMAXPROCS.
func SimulateBatch(catalog UnitCatalog, req BatchRequest, settings Settings, workers int) (*BatchSummary, error) {
	if req.Runs < 1 || req.Runs > MaxBatchRuns {
		return nil, fmt.Errorf("%w: %d (1..%d)", ErrInvalidRuns, req.Runs, MaxBatchRuns)
	}
	mr := MatchRequest{Player1: req.Player1, Player2: req.Player2}
	tmplA, tmplB, err := buildSides(catalog, mr, settings)
	if err != nil {
		return nil, err
	}
	if req.Seed == 0 {
		seed, err := battle.NewCryptoSeed()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSimulationFailed, err)
		}
		req.Seed = seed
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]runOutcome, req.Runs)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < req.Runs; i++ {
		g.Go(func() error {
			src := battle.NewSeededSource(RunSeed(req.Seed, i))
			res, err := battle.Resolve(cloneSide(tmplA), cloneSide(tmplB), src, battle.WithMaxTurns(settings.MaxTurns))
			if errors.Is(err, battle.ErrNoProgress) {
				outcomes[i] = runOutcome{failed: true}
				return nil
			}
			if err != nil {
				return fmt.Errorf("%w: run %d: %w", ErrSimulationFailed, i, err)
			}
			outcomes[i] = runOutcome{winner: res.Winner, turns: res.Turns}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := summarize(req, tmplA[0].Owner, tmplB[0].Owner, outcomes)
	logging.Info("batch simulated", logging.Fields{
		constants.LogFieldPlayer1: tmplA[0].Owner,
		constants.LogFieldPlayer2: tmplB[0].Owner,
		constants.LogFieldRuns:    sum.Runs,
		constants.LogFieldSeed:    sum.Seed,
		"failures":                sum.Failures,
	})
	return sum, nil
}

func summarize(req BatchRequest, player1, player2 string, outcomes []runOutcome) *BatchSummary {
	sum := &BatchSummary{
		Runs: len(outcomes),
		Seed: req.Seed,
		Wins: map[string]int{player1: 0, player2: 0},
	}
	counted, total := 0, 0
	for _, o := range outcomes {
		if o.failed {
			sum.Failures++
			continue
		}
		if o.winner == "" {
			sum.Stalemates++
		} else {
			sum.Wins[o.winner]++
		}
		if counted == 0 || o.turns < sum.MinTurns {
			sum.MinTurns = o.turns
		}
		if o.turns > sum.MaxTurns {
			sum.MaxTurns = o.turns
		}
		total += o.turns
		counted++
	}
	if counted > 0 {
		sum.AverageTurns = float64(total) / float64(counted)
	}
	return sum
}
