package storage

import (
	"errors"
	"strings"

	"github.com/ericogr/tournament-arena/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase unit name -> config definition (stats).
	configByName map[string]game.Unit
}

func NewSQLiteRepository(db *gorm.DB, configUnits []game.Unit) Repository {
	m := make(map[string]game.Unit, len(configUnits))
	for _, u := range configUnits {
		m[strings.ToLower(u.Name)] = u
	}
	return &sqliteRepository{db: db, configByName: m}
}

// withConfigStats overrides stats from config (config is source of truth).
// Units that are no longer configured are dropped.
func (r *sqliteRepository) withConfigStats(units []game.Unit) []game.Unit {
	out := units[:0]
	for _, u := range units {
		conf, ok := r.configByName[strings.ToLower(u.Name)]
		if !ok {
			continue
		}
		u.Health = conf.Health
		u.Attack = conf.Attack
		out = append(out, u)
	}
	return out
}

func (r *sqliteRepository) GetUnits() ([]game.Unit, error) {
	var units []game.Unit
	if err := r.db.Order("name").Find(&units).Error; err != nil {
		return nil, err
	}
	return r.withConfigStats(units), nil
}

func (r *sqliteRepository) GetUnitsByNames(names []string) ([]game.Unit, error) {
	if len(names) == 0 {
		return nil, nil
	}
	lower := make([]string, len(names))
	for i, n := range names {
		lower[i] = strings.ToLower(strings.TrimSpace(n))
	}
	var units []game.Unit
	if err := r.db.Where("lower(name) IN ?", lower).Find(&units).Error; err != nil {
		return nil, err
	}
	return r.withConfigStats(units), nil
}

func (r *sqliteRepository) CreateMatch(m *game.Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) GetMatchByPublicID(id string) (*game.Match, error) {
	var m game.Match
	err := r.db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("side, slot")
	}).Where("public_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) GetRecentMatches(limit int) ([]game.Match, error) {
	if limit <= 0 {
		limit = 20
	}
	var matches []game.Match
	if err := r.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *sqliteRepository) UpdateStatsOnMatchEnd(m *game.Match) error {
	if m.StatsCounted {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Helper to upsert and add deltas
		upsert := func(name string, wins, losses, stalemates int) error {
			var pr game.PlayerRecord
			if err := tx.Where("name = ?", name).First(&pr).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				pr = game.PlayerRecord{Name: name}
			}
			pr.MatchesPlayed++
			pr.Wins += wins
			pr.Losses += losses
			pr.Stalemates += stalemates
			return tx.Save(&pr).Error
		}

		for _, name := range []string{m.Player1, m.Player2} {
			switch {
			case m.Winner == "":
				if err := upsert(name, 0, 0, 1); err != nil {
					return err
				}
			case m.Winner == name:
				if err := upsert(name, 1, 0, 0); err != nil {
					return err
				}
			default:
				if err := upsert(name, 0, 1, 0); err != nil {
					return err
				}
			}
		}

		m.StatsCounted = true
		if m.ID == 0 {
			return nil
		}
		return tx.Model(&game.Match{}).Where("id = ?", m.ID).Update("stats_counted", true).Error
	})
}

// GetTopPlayers returns top N players ordered by Wins desc, then MatchesPlayed asc
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []game.PlayerRecord
	if err := r.db.Model(&game.PlayerRecord{}).
		Order("wins DESC").
		Order("matches_played ASC").
		Order("name ASC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
