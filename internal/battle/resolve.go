package battle

import (
	"fmt"
	"iter"
)

// StalemateLine is the only log line of a battle in which nobody can deal
// damage.
const StalemateLine = "Everyone stared at each other, resulting in nobody winning."

// DefaultMaxTurns bounds a battle that keeps missing or rolling zero damage.
const DefaultMaxTurns = 100000

// Result is the outcome of a resolved battle. Winner is empty on stalemate.
type Result struct {
	Winner string   `json:"winner"`
	Turns  int      `json:"turns"`
	Log    []string `json:"log,omitempty"`
}

// Battle pairs two sides for a single resolution. Build one with New, drain
// Log once, then read Result.
type Battle struct {
	sideA    []*Combatant
	sideB    []*Combatant
	src      Source
	maxTurns int

	turns   int
	winner  string
	started bool
	done    bool
	err     error
}

// Option tweaks a battle before it starts.
type Option func(*Battle)

// WithMaxTurns caps the number of attack attempts. n <= 0 removes the cap.
func WithMaxTurns(n int) Option {
	return func(b *Battle) { b.maxTurns = n }
}

// New validates both rosters and prepares a battle. Nothing is rolled until
// the log is consumed.
func New(sideA, sideB []*Combatant, src Source, opts ...Option) (*Battle, error) {
	if err := validateSide("first", sideA); err != nil {
		return nil, err
	}
	if err := validateSide("second", sideB); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrEntropy)
	}
	b := &Battle{sideA: sideA, sideB: sideB, src: src, maxTurns: DefaultMaxTurns}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func validateSide(label string, side []*Combatant) error {
	if len(side) == 0 {
		return fmt.Errorf("%s side: %w", label, ErrEmptyRoster)
	}
	for i, c := range side {
		if c == nil {
			return fmt.Errorf("%s side, slot %d: %w", label, i, ErrInvalidHealth)
		}
		if c.Health <= 0 || c.Dead {
			return fmt.Errorf("%s side, %q: %w", label, c.Name, ErrInvalidHealth)
		}
	}
	return nil
}

// Log yields the battle's events in order as they happen. The sequence is
// single-pass: only the first iteration runs the battle, later ones yield
// nothing. Stopping early abandons the battle (see Err).
func (b *Battle) Log() iter.Seq[string] {
	return func(yield func(string) bool) {
		if b.started {
			return
		}
		b.started = true
		b.err = b.run(yield)
		b.done = true
	}
}

// Err reports why the battle failed, if it did.
func (b *Battle) Err() error { return b.err }

// Result returns the winner and turn count once the log has been drained.
func (b *Battle) Result() (*Result, error) {
	if !b.done {
		return nil, ErrNotFinished
	}
	if b.err != nil {
		return nil, b.err
	}
	return &Result{Winner: b.winner, Turns: b.turns}, nil
}

// Resolve runs a whole battle eagerly and returns its result with the full
// log attached.
func Resolve(sideA, sideB []*Combatant, src Source, opts ...Option) (*Result, error) {
	b, err := New(sideA, sideB, src, opts...)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, 32)
	for line := range b.Log() {
		lines = append(lines, line)
	}
	res, err := b.Result()
	if err != nil {
		return nil, err
	}
	res.Log = lines
	return res, nil
}

func (b *Battle) stalemate() bool {
	for _, side := range [][]*Combatant{b.sideA, b.sideB} {
		for _, c := range side {
			if c.Attack > 0 {
				return false
			}
		}
	}
	return true
}

// run drives rounds until one side is wiped out. Each round pairs the living
// combatants of both sides positionally; a miss by the first combatant of a
// pair ends that pair's exchange.
func (b *Battle) run(emit func(string) bool) error {
	if b.stalemate() {
		emit(StalemateLine)
		return nil
	}

	for !defeated(b.sideA) && !defeated(b.sideB) {
		aliveA := living(b.sideA)
		aliveB := living(b.sideB)
		pairs := min(len(aliveA), len(aliveB))

		for i := 0; i < pairs; i++ {
			a, c := aliveA[i], aliveB[i]

			if !a.Dead {
				line, missed, err := b.takeTurn(a, c, b.sideB)
				if err != nil {
					return err
				}
				if !emit(line) {
					return ErrAbandoned
				}
				if missed {
					continue
				}
				if defeated(b.sideB) {
					break
				}
			}

			if !c.Dead {
				line, missed, err := b.takeTurn(c, a, b.sideA)
				if err != nil {
					return err
				}
				if !emit(line) {
					return ErrAbandoned
				}
				if missed {
					continue
				}
				if defeated(b.sideA) {
					break
				}
			}
		}
	}

	b.finalize()
	return nil
}

// finalize records the winner. The first side is checked first, so if both
// sides are down the second side wins.
func (b *Battle) finalize() {
	switch {
	case defeated(b.sideA):
		b.winner = ownerOf(b.sideB)
	case defeated(b.sideB):
		b.winner = ownerOf(b.sideA)
	}
}
