package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatHandler(t *testing.T) {
	srv := httptest.NewServer(NewHeartbeatHandler())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	tests := []struct {
		name    string
		message string
	}{
		{"bare event name", "check-connection"},
		{"json envelope", `{"event":"check-connection"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tt.message)))

			conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			var ev SocketEvent
			require.NoError(t, conn.ReadJSON(&ev))
			assert.Equal(t, "confirm-connection", ev.Event)
		})
	}
}

func TestIsCheckConnection(t *testing.T) {
	assert.True(t, isCheckConnection([]byte("check-connection")))
	assert.True(t, isCheckConnection([]byte(`{"event":"check-connection","data":{}}`)))
	assert.False(t, isCheckConnection([]byte(`{"event":"other"}`)))
	assert.False(t, isCheckConnection([]byte("hello")))
}
