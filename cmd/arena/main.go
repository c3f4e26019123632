package main

import (
	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/logging"
	"github.com/ericogr/tournament-arena/internal/version"
)

func main() {
	// Config path, DB path and overrides come from ARENA_* variables; see
	// config.Env for the defaults.
	cfg := loadConfigOrExit()
	repo := createRepositoryOrExit(cfg.DBPath, cfg.Units)
	router := newRouter(cfg, repo)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              version.String(),
		"units":                len(cfg.Units),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
