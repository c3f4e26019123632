package storage

import (
	"errors"

	"github.com/ericogr/tournament-arena/internal/game"
)

// ErrNotFound is returned when a match record does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// GetUnits returns the catalog with stats taken from the config.
	GetUnits() ([]game.Unit, error)
	// GetUnitsByNames returns the catalog entries matching names
	// (case-insensitive). Unknown names are simply absent from the result.
	GetUnitsByNames(names []string) ([]game.Unit, error)

	CreateMatch(m *game.Match) error
	GetMatchByPublicID(id string) (*game.Match, error)
	// GetRecentMatches returns the latest matches without their entries.
	GetRecentMatches(limit int) ([]game.Match, error)
	// UpdateStatsOnMatchEnd adds the match to both players' records once;
	// matches with StatsCounted set are ignored.
	UpdateStatsOnMatchEnd(m *game.Match) error
	// Leaderboard
	GetTopPlayers(limit int) ([]game.PlayerRecord, error)
}
