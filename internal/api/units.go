package api

import (
	"net/http"

	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/logging"

	"github.com/gin-gonic/gin"
)

// ListUnits returns the unit catalog with its configured stats.
func (h *MatchHandler) ListUnits(c *gin.Context) {
	units, err := h.repo.GetUnits()
	if err != nil {
		logging.Error("list units failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchUnits})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(units)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchUnits})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListLeaderboard returns the top players ordered by wins.
// Optional query param: ?limit=N
func (h *MatchHandler) ListLeaderboard(c *gin.Context) {
	limit := queryLimit(c, 10, maxListLimit)
	players, err := h.repo.GetTopPlayers(limit)
	if err != nil {
		logging.Error("leaderboard failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(players)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, out)
}
