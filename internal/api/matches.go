package api

import (
	"errors"
	"net/http"

	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/game"
	"github.com/ericogr/tournament-arena/internal/logging"
	"github.com/ericogr/tournament-arena/internal/service"
	"github.com/ericogr/tournament-arena/internal/transcript"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 100

// matchView is the API shape of a match: the stored record plus its log as
// a list of lines.
type matchView struct {
	*game.Match
	Log    []string `json:"log,omitempty"`
	Shared bool     `json:"shared,omitempty"`
}

// serviceError maps service sentinels to an HTTP status and public message.
func serviceError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnknownUnit):
		return http.StatusBadRequest, constants.ErrUnknownUnit
	case errors.Is(err, service.ErrInvalidRoster):
		return http.StatusBadRequest, constants.ErrInvalidRoster
	case errors.Is(err, service.ErrInvalidRuns):
		return http.StatusBadRequest, constants.ErrInvalidRuns
	case errors.Is(err, service.ErrMatchNotFound):
		return http.StatusNotFound, constants.ErrMatchNotFound
	case errors.Is(err, service.ErrSimulationFailed):
		return http.StatusInternalServerError, constants.ErrBattleNotSimulated
	default:
		return http.StatusInternalServerError, constants.ErrFailedSaveMatch
	}
}

func writeServiceError(c *gin.Context, err error) {
	status, msg := serviceError(err)
	body := gin.H{constants.JSONKeyError: msg}
	if status == http.StatusBadRequest {
		body[constants.JSONKeyDetails] = err.Error()
	}
	c.JSON(status, body)
}

func (h *MatchHandler) writeMatch(c *gin.Context, status int, m *game.Match, withLog, shared bool) {
	view := matchView{Match: m, Shared: shared}
	if withLog {
		view.Log = m.LogLines()
	}
	out, err := MarshalIntoSnakeTimestamps(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeMatch})
		return
	}
	c.JSON(status, out)
}

// CreateMatch simulates one battle between the two submitted rosters and
// records it.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	m, shared, err := service.SimulateMatch(h.repo, req, h.settings)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeMatch(c, http.StatusCreated, m, true, shared)
}

// SimulateBatch runs the same pairing several times without recording and
// returns the aggregate.
func (h *MatchHandler) SimulateBatch(c *gin.Context) {
	var req service.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	summary, err := service.SimulateBatch(h.repo, req, h.settings, 0)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListMatches returns the most recent matches without their logs.
// Optional query param: ?limit=N
func (h *MatchHandler) ListMatches(c *gin.Context) {
	limit := queryLimit(c, h.recentLimit, maxListLimit)
	matches, err := h.repo.GetRecentMatches(limit)
	if err != nil {
		logging.Error("list matches failed", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(matches)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetMatch returns one match including its roster snapshot and log.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	m, err := service.GetMatch(h.repo, c.Param("matchID"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	h.writeMatch(c, http.StatusOK, m, true, false)
}

// GetTranscript serves the battle log as a downloadable text file.
func (h *MatchHandler) GetTranscript(c *gin.Context) {
	m, err := service.GetMatch(h.repo, c.Param("matchID"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	c.Header(constants.HeaderContentDisposition, `attachment; filename="`+transcript.Filename(m)+`"`)
	c.Data(http.StatusOK, constants.ContentTypeText, []byte(transcript.Render(m)))
}

func (h *MatchHandler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
	case errors.Is(err, service.ErrInvalidMatchID):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
	default:
		logging.Error("get match failed", err, logging.Fields{constants.LogFieldMatchID: c.Param("matchID")})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
	}
}
