package main

import (
	"github.com/ericogr/tournament-arena/internal/config"
	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/logging"
	"github.com/ericogr/tournament-arena/internal/storage"
)

func loadConfigOrExit() *config.LoadedConfig {
	cfg, env, err := config.Load()
	if err != nil {
		fields := logging.Fields{}
		if env != nil {
			fields[constants.LogFieldPath] = env.ConfigPath
			fields["hint"] = "create an arena_config.yaml with a 'unit_list' array of units (name, health, attack) and optional keys: server.address, battle.max_turns, battle.max_roster_size"
		}
		logging.Fatal("Missing or invalid arena configuration", err, fields)
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, units []game.Unit) storage.Repository {
	db, err := storage.OpenDB(dbPath, units)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldPath: dbPath})
	}
	return storage.NewSQLiteRepository(db, units)
}
