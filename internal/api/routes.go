package api

import (
	"github.com/ericogr/tournament-arena/internal/constants"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every arena endpoint under /api.
func RegisterRoutes(router *gin.Engine, h *MatchHandler) {
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteUnits, h.ListUnits)
		apiRoutes.GET(constants.RouteLeaderboard, h.ListLeaderboard)
		apiRoutes.GET(constants.RouteVersion, Version)

		apiRoutes.GET(constants.RouteMatches, h.ListMatches)
		apiRoutes.POST(constants.RouteMatches, h.CreateMatch)
		apiRoutes.POST(constants.RouteMatchesBatch, h.SimulateBatch)
		apiRoutes.GET(constants.RouteMatchesStream, h.StreamMatch)
		apiRoutes.GET(constants.RouteMatchByID, h.GetMatch)
		apiRoutes.GET(constants.RouteMatchTranscript, h.GetTranscript)
	}
}
