package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dashmachine/dashmachine-api/internal/logger"
)

const (
	eventCheckConnection   = "check-connection"
	eventConfirmConnection = "confirm-connection"

	wsWriteWait = 10 * time.Second
)

// SocketEvent is the envelope of socket messages.
type SocketEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewHeartbeatHandler upgrades the connection and answers every
// check-connection event with confirm-connection.
// @Summary Socket heartbeat
// @Tags socket
// @Router /ws [get]
func NewHeartbeatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Warnw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		logger.Log.Infow("socket connected", "remote", r.RemoteAddr)

		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Log.Warnw("socket read failed", "error", err)
				}
				logger.Log.Infow("socket disconnected", "remote", r.RemoteAddr)
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}
			if !isCheckConnection(data) {
				continue
			}

			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(SocketEvent{Event: eventConfirmConnection}); err != nil {
				logger.Log.Warnw("socket write failed", "error", err)
				return
			}
		}
	}
}

// isCheckConnection accepts both a JSON envelope and the bare event name.
func isCheckConnection(data []byte) bool {
	var ev SocketEvent
	if err := json.Unmarshal(data, &ev); err == nil {
		return ev.Event == eventCheckConnection
	}
	return strings.TrimSpace(string(data)) == eventCheckConnection
}
