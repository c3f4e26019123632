package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ericogr/tournament-arena/internal/battle"
	"github.com/ericogr/tournament-arena/internal/game"
)

// UnitCatalog resolves unit names to their configured stats.
type UnitCatalog interface {
	GetUnitsByNames(names []string) ([]game.Unit, error)
}

// StaticCatalog is an in-memory UnitCatalog built straight from config.
type StaticCatalog map[string]game.Unit

// NewStaticCatalog indexes units by lower-cased name.
func NewStaticCatalog(units []game.Unit) StaticCatalog {
	c := make(StaticCatalog, len(units))
	for _, u := range units {
		c[strings.ToLower(u.Name)] = u
	}
	return c
}

func (c StaticCatalog) GetUnitsByNames(names []string) ([]game.Unit, error) {
	out := make([]game.Unit, 0, len(names))
	for _, n := range names {
		if u, ok := c[strings.ToLower(strings.TrimSpace(n))]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// Settings carries the battle limits applied to every simulation.
type Settings struct {
	MaxTurns      int
	MaxRosterSize int
}

// MatchRequest is what the collaborator sends to have a match simulated.
// A zero Seed asks the service to pick one.
type MatchRequest struct {
	Player1 game.Roster `json:"player1" yaml:"player1"`
	Player2 game.Roster `json:"player2" yaml:"player2"`
	Seed    int64       `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// BuildSide turns a roster into fresh combatants owned by the roster's
// player. Units without explicit stats take them from the catalog.
func BuildSide(catalog UnitCatalog, r game.Roster, maxSize int) ([]*battle.Combatant, error) {
	player := strings.TrimSpace(r.Player)
	if player == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidRoster)
	}
	if hasControl(player) {
		return nil, fmt.Errorf("%w: player name %q contains control characters", ErrInvalidRoster, player)
	}
	if len(r.Units) == 0 {
		return nil, fmt.Errorf("%w: %s has no units", ErrInvalidRoster, player)
	}
	if maxSize > 0 && len(r.Units) > maxSize {
		return nil, fmt.Errorf("%w: %s brought %d units (max %d)", ErrInvalidRoster, player, len(r.Units), maxSize)
	}

	lookup := make([]string, 0, len(r.Units))
	for _, u := range r.Units {
		if strings.TrimSpace(u.Name) == "" {
			return nil, fmt.Errorf("%w: %s has a unit without a name", ErrInvalidRoster, player)
		}
		if hasControl(u.Name) {
			return nil, fmt.Errorf("%w: unit name %q contains control characters", ErrInvalidRoster, u.Name)
		}
		if u.Health == nil || u.Attack == nil {
			lookup = append(lookup, u.Name)
		}
	}
	known := map[string]game.Unit{}
	if len(lookup) > 0 {
		if catalog == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, lookup[0])
		}
		units, err := catalog.GetUnitsByNames(lookup)
		if err != nil {
			return nil, err
		}
		for _, u := range units {
			known[strings.ToLower(u.Name)] = u
		}
	}

	side := make([]*battle.Combatant, 0, len(r.Units))
	for _, u := range r.Units {
		name := strings.TrimSpace(u.Name)
		c := &battle.Combatant{Name: name, Owner: player}
		if u.Health == nil || u.Attack == nil {
			base, ok := known[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
			}
			c.Name = base.Name
			c.Health = base.Health
			c.Attack = base.Attack
		}
		if u.Health != nil {
			c.Health = *u.Health
		}
		if u.Attack != nil {
			c.Attack = *u.Attack
		}
		if c.Health <= 0 {
			return nil, fmt.Errorf("%w: %s's %s must have positive health", ErrInvalidRoster, player, c.Name)
		}
		side = append(side, c)
	}
	return side, nil
}

// hasControl reports whether s holds a control character. Names end up in
// log lines, which are stored one per line.
func hasControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// buildSides validates both rosters of a request.
func buildSides(catalog UnitCatalog, req MatchRequest, settings Settings) ([]*battle.Combatant, []*battle.Combatant, error) {
	if strings.EqualFold(strings.TrimSpace(req.Player1.Player), strings.TrimSpace(req.Player2.Player)) {
		return nil, nil, fmt.Errorf("%w: both sides belong to %q", ErrInvalidRoster, req.Player1.Player)
	}
	sideA, err := BuildSide(catalog, req.Player1, settings.MaxRosterSize)
	if err != nil {
		return nil, nil, err
	}
	sideB, err := BuildSide(catalog, req.Player2, settings.MaxRosterSize)
	if err != nil {
		return nil, nil, err
	}
	return sideA, sideB, nil
}

func cloneSide(side []*battle.Combatant) []*battle.Combatant {
	out := make([]*battle.Combatant, len(side))
	for i, c := range side {
		cc := *c
		out[i] = &cc
	}
	return out
}
