package api

import (
	"net/http"

	"github.com/ericogr/tournament-arena/internal/service"
	"github.com/ericogr/tournament-arena/internal/storage"

	"github.com/gorilla/websocket"
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo        storage.Repository
	settings    service.Settings
	recentLimit int
	upgrader    websocket.Upgrader
}

// NewMatchHandler creates a MatchHandler backed by repo. recentLimit is the
// default page size of the match list.
func NewMatchHandler(repo storage.Repository, settings service.Settings, recentLimit int) *MatchHandler {
	if recentLimit <= 0 {
		recentLimit = 20
	}
	return &MatchHandler{
		repo:        repo,
		settings:    settings,
		recentLimit: recentLimit,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// the arena is called by trusted bots, not browsers
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}
