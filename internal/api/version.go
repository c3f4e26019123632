package api

import (
	"net/http"

	"github.com/ericogr/tournament-arena/internal/version"

	"github.com/gin-gonic/gin"
)

// Version returns the build metadata injected at build time. The healthcheck
// binary probes this route.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Current())
}
