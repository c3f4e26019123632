package game

import (
	"strings"

	"gorm.io/gorm"
)

// Unit is a catalog entry a roster may reference by name. Only the name is
// persisted; stats come from the config file (arena_config.yaml) so the
// config stays the single source of truth.
type Unit struct {
	gorm.Model
	Name   string `json:"name" gorm:"uniqueIndex"`
	Health int    `json:"health" gorm:"-"`
	Attack int    `json:"attack" gorm:"-"`
}

// TableName overrides the default GORM table name so the catalog lives in
// `unit_catalog`.
func (Unit) TableName() string { return "unit_catalog" }

// RosterUnit is one unit as supplied by the collaborator. Health and Attack
// override the catalog stats when set; a unit that is not in the catalog must
// provide both.
type RosterUnit struct {
	Name   string `json:"name" yaml:"name"`
	Health *int   `json:"health,omitempty" yaml:"health,omitempty"`
	Attack *int   `json:"attack,omitempty" yaml:"attack,omitempty"`
}

// Roster is the ordered team one player brings to a match.
type Roster struct {
	Player string       `json:"name" yaml:"name"`
	Units  []RosterUnit `json:"units" yaml:"units"`
}

// Match is the stored record of one completed battle.
type Match struct {
	gorm.Model
	PublicID     string       `json:"id" gorm:"uniqueIndex;size:36"`
	Player1      string       `json:"player1" gorm:"size:64"`
	Player2      string       `json:"player2" gorm:"size:64"`
	Winner       string       `json:"winner" gorm:"size:64"`
	Turns        int          `json:"turns"`
	Seed         int64        `json:"seed"`
	Status       string       `json:"status"`
	Log          string       `json:"-" gorm:"type:text"`
	Entries      []MatchEntry `json:"entries"`
	StatsCounted bool         `json:"-"`
}

// Store matches in a dedicated table for clarity.
func (Match) TableName() string { return "match_records" }

// LogLines splits the stored log back into one entry per event.
func (m *Match) LogLines() []string {
	if m.Log == "" {
		return nil
	}
	return strings.Split(m.Log, "\n")
}

// SetLog stores the event log, one line per event.
func (m *Match) SetLog(lines []string) {
	m.Log = strings.Join(lines, "\n")
}

// Loser returns the player that did not win, or "" for a stalemate.
func (m *Match) Loser() string {
	switch m.Winner {
	case "":
		return ""
	case m.Player1:
		return m.Player2
	default:
		return m.Player1
	}
}

// MatchEntry is one combatant of a recorded match with its start and end
// state.
type MatchEntry struct {
	gorm.Model
	MatchID     uint   `json:"-" gorm:"index"`
	Side        int    `json:"side"`
	Slot        int    `json:"slot"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	StartHealth int    `json:"start_health"`
	FinalHealth int    `json:"final_health"`
	Attack      int    `json:"attack"`
	Dead        bool   `json:"dead"`
}

func (MatchEntry) TableName() string { return "match_entries" }

// PlayerRecord keeps aggregate results per player name.
type PlayerRecord struct {
	gorm.Model
	Name          string `json:"name" gorm:"uniqueIndex"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Stalemates    int    `json:"stalemates"`
}

func (PlayerRecord) TableName() string { return "player_records" }

const (
	StatusFinished  = "finished"
	StatusStalemate = "stalemate"
)
