package main

import (
	"github.com/ericogr/tournament-arena/internal/api"
	"github.com/ericogr/tournament-arena/internal/config"
	"github.com/ericogr/tournament-arena/internal/service"
	"github.com/ericogr/tournament-arena/internal/storage"

	"github.com/gin-gonic/gin"
)

func newRouter(cfg *config.LoadedConfig, repo storage.Repository) *gin.Engine {
	settings := service.Settings{
		MaxTurns:      cfg.MaxTurns,
		MaxRosterSize: cfg.MaxRosterSize,
	}
	handler := api.NewMatchHandler(repo, settings, cfg.RecentLimit)

	router := gin.Default()
	api.RegisterRoutes(router, handler)
	return router
}
