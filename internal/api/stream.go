package api

import (
	"time"

	"github.com/ericogr/tournament-arena/internal/constants"
	"github.com/ericogr/tournament-arena/internal/logging"
	"github.com/ericogr/tournament-arena/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const streamWriteWait = 10 * time.Second

// Frame types sent on the match stream.
const (
	frameEvent  = "event"
	frameResult = "result"
	frameError  = "error"
)

// streamFrame is one websocket message. Events carry Line; the final result
// carries ID, Winner and Turns.
type streamFrame struct {
	Type   string `json:"type"`
	Line   string `json:"line,omitempty"`
	ID     string `json:"id,omitempty"`
	Winner string `json:"winner,omitempty"`
	Turns  int    `json:"turns,omitempty"`
	Error  string `json:"error,omitempty"`
}

func writeFrame(conn *websocket.Conn, f streamFrame) error {
	if err := conn.SetWriteDeadline(time.Now().Add(streamWriteWait)); err != nil {
		return err
	}
	return conn.WriteJSON(f)
}

// StreamMatch upgrades to a websocket, reads one match request and sends
// every log line as soon as the engine produces it. The match is recorded
// only when the client stays until the end.
func (h *MatchHandler) StreamMatch(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Warn("websocket upgrade failed", logging.Fields{"error": err.Error()})
		return
	}
	defer conn.Close()

	var req service.MatchRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = writeFrame(conn, streamFrame{Type: frameError, Error: constants.ErrInvalidRequest})
		return
	}

	m, err := service.StreamMatch(h.repo, req, h.settings, func(line string) error {
		return writeFrame(conn, streamFrame{Type: frameEvent, Line: line})
	})
	if err != nil {
		_, msg := serviceError(err)
		_ = writeFrame(conn, streamFrame{Type: frameError, Error: msg})
		return
	}

	if err := writeFrame(conn, streamFrame{Type: frameResult, ID: m.PublicID, Winner: m.Winner, Turns: m.Turns}); err != nil {
		return
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(streamWriteWait))
}
