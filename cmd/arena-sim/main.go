// Command arena-sim resolves matches offline from a roster file, without a
// database or HTTP server.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ericogr/tournament-arena/internal/battle"
	"github.com/ericogr/tournament-arena/internal/config"
	"github.com/ericogr/tournament-arena/internal/logging"
	"github.com/ericogr/tournament-arena/internal/service"
	"github.com/ericogr/tournament-arena/internal/version"

	"gopkg.in/yaml.v3"
)

type options struct {
	configPath string
	rosterPath string
	seed       int64
	runs       int
	workers    int
	maxTurns   int
	outPath    string
	version    bool
}

// singleResult is what -out receives for a single run.
type singleResult struct {
	Player1 string   `json:"player1"`
	Player2 string   `json:"player2"`
	Seed    int64    `json:"seed"`
	Winner  string   `json:"winner"`
	Turns   int      `json:"turns"`
	Log     []string `json:"log"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logging.Fatal("arena-sim failed", err, nil)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("arena-sim", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "unit catalog (arena_config.yaml); optional when every unit has explicit stats")
	fs.StringVar(&opts.rosterPath, "roster", "", "YAML file with player1 and player2 rosters (required)")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for the first run; 0 picks one at random")
	fs.IntVar(&opts.runs, "n", 1, "number of runs")
	fs.IntVar(&opts.workers, "workers", 0, "parallel workers for batches (0 = GOMAXPROCS)")
	fs.IntVar(&opts.maxTurns, "max-turns", battle.DefaultMaxTurns, "turn limit per battle")
	fs.StringVar(&opts.outPath, "out", "", "also write the result as JSON to this file")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.rosterPath == "" && !opts.version {
		return nil, errors.New("-roster is required")
	}
	return opts, nil
}

func loadRequest(path string) (service.MatchRequest, error) {
	var req service.MatchRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read roster file: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse roster file: %w", err)
	}
	return req, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, "arena-sim", version.String())
		return nil
	}
	req, err := loadRequest(opts.rosterPath)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		req.Seed = opts.seed
	}

	var catalog service.UnitCatalog
	settings := service.Settings{MaxTurns: opts.maxTurns}
	if opts.configPath != "" {
		cfg, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		catalog = service.NewStaticCatalog(cfg.Units)
		settings.MaxRosterSize = cfg.MaxRosterSize
		if opts.maxTurns == battle.DefaultMaxTurns {
			settings.MaxTurns = cfg.MaxTurns
		}
	}

	var out interface{}
	if opts.runs == 1 {
		res, seed, err := service.Simulate(catalog, req, settings)
		if err != nil {
			return err
		}
		printResult(stdout, res)
		out = singleResult{
			Player1: req.Player1.Player,
			Player2: req.Player2.Player,
			Seed:    seed,
			Winner:  res.Winner,
			Turns:   res.Turns,
			Log:     res.Log,
		}
	} else {
		sum, err := service.SimulateBatch(catalog, service.BatchRequest{
			Player1: req.Player1,
			Player2: req.Player2,
			Seed:    req.Seed,
			Runs:    opts.runs,
		}, settings, opts.workers)
		if err != nil {
			return err
		}
		printSummary(stdout, req, sum)
		out = sum
	}

	if opts.outPath == "" {
		return nil
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(opts.outPath, data, 0o644)
}

func printResult(w io.Writer, res *battle.Result) {
	for _, line := range res.Log {
		fmt.Fprintln(w, line)
	}
	winner := res.Winner
	if winner == "" {
		winner = "none"
	}
	fmt.Fprintf(w, "\nTurns: %d\nWinner: %s\n", res.Turns, winner)
}

func printSummary(w io.Writer, req service.MatchRequest, sum *service.BatchSummary) {
	fmt.Fprintf(w, "Runs: %d (seeds %d..%d)\n", sum.Runs, sum.Seed, service.RunSeed(sum.Seed, sum.Runs-1))
	for _, p := range []string{req.Player1.Player, req.Player2.Player} {
		wins := sum.Wins[p]
		fmt.Fprintf(w, "%s: %d wins (%.1f%%)\n", p, wins, 100*float64(wins)/float64(sum.Runs))
	}
	fmt.Fprintf(w, "Stalemates: %d\nFailures: %d\n", sum.Stalemates, sum.Failures)
	fmt.Fprintf(w, "Turns: avg %.1f, min %d, max %d\n", sum.AverageTurns, sum.MinTurns, sum.MaxTurns)
}
