package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens (creating if needed) the SQLite database, migrates the schema
// and seeds the unit catalog from config.
func OpenDB(dataSourceName string, unitsFromConfig []game.Unit) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && !strings.HasPrefix(dataSourceName, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&game.Unit{}, &game.Match{}, &game.MatchEntry{}, &game.PlayerRecord{})
	if err != nil {
		return nil, err
	}
	if err := seedUnits(db, unitsFromConfig); err != nil {
		return nil, err
	}
	return db, nil
}

// seedUnits inserts catalog names that are not stored yet. Stats are never
// persisted; they are overlaid from config on read.
func seedUnits(db *gorm.DB, unitsFromConfig []game.Unit) error {
	var existing []game.Unit
	if err := db.Find(&existing).Error; err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, u := range existing {
		known[strings.ToLower(u.Name)] = struct{}{}
	}

	missing := make([]game.Unit, 0, len(unitsFromConfig))
	for _, u := range unitsFromConfig {
		if _, ok := known[strings.ToLower(u.Name)]; ok {
			continue
		}
		missing = append(missing, game.Unit{Name: u.Name})
	}
	if len(missing) == 0 {
		return nil
	}
	if err := db.Create(&missing).Error; err != nil {
		return err
	}
	for _, u := range missing {
		logging.Info("unit added to catalog", logging.Fields{constants.LogFieldName: u.Name})
	}
	return nil
}
