package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"termtap/internal/capture"
)

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Allow all origins for local dev; the server typically binds to localhost.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// sessionWSHandler bridges a capture session over WebSocket for live viewing.
//
// Client protocol:
// - Send plain text messages as input to the session's shell.
// - Control messages are JSON: {"type":"resize","cols":<int>,"rows":<int>}
//   or {"type":"input","data":<string>}.
// - Server sends session output as text messages.
func sessionWSHandler(w http.ResponseWriter, r *http.Request, s *capture.Session) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("upgrade failed: %v", err), http.StatusBadRequest)
		return
	}
	defer conn.Close()

	out, cancel := s.Subscribe()
	defer cancel()

	// Writer: session output -> WS. Exits when cancel closes the channel or
	// the connection drops.
	go func() {
		for chunk := range out {
			if err := conn.WriteMessage(websocket.TextMessage, chunk); err != nil {
				_ = conn.Close()
				return
			}
		}
	}()

	type controlMsg struct {
		Type string `json:"type"`
		Cols int    `json:"cols"`
		Rows int    `json:"rows"`
		Data string `json:"data"`
	}

	// Reader: WS -> session input
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			// client closed
			return
		}
		switch mt {
		case websocket.TextMessage, websocket.BinaryMessage:
			// Try JSON first for control frames
			var cm controlMsg
			if json.Unmarshal(data, &cm) == nil && cm.Type != "" {
				if cm.Type == "resize" && cm.Cols > 0 && cm.Rows > 0 {
					_ = s.Resize(cm.Cols, cm.Rows)
					continue
				}
				if cm.Type == "input" && cm.Data != "" {
					_, _ = s.Write([]byte(cm.Data))
					continue
				}
			}
			// Treat as raw input
			if len(data) > 0 {
				_, _ = s.Write(data)
			}
		case websocket.CloseMessage:
			return
		}
	}
}
