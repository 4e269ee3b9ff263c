package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/blockhop/internal/engine"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API serves its own front end; same-machine browsers only.
		return true
	},
}

// StreamMessage is one frame sent to the client during a streamed run.
// Type is "step" for each execution step and "result" for the final frame.
type StreamMessage struct {
	Type     string       `json:"type"`
	Step     *engine.Step `json:"step,omitempty"`
	Success  bool         `json:"success,omitempty"`
	Position int          `json:"position,omitempty"`
	Reason   string       `json:"reason,omitempty"`
}

// handleStream upgrades to a WebSocket, reads one program message and
// streams the resulting trace step by step, ending with a result frame.
// The trace is computed up front; streaming only paces delivery for
// animation, it never changes the outcome.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	level, ok := s.catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "level not found")
		return
	}
	if !s.unlocked(id) {
		respondError(w, http.StatusForbidden, "level is locked")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	var req RunRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.writeStream(conn, StreamMessage{Type: "result", Reason: "invalid program message"})
		return
	}

	trace := engine.Run(level, req.Program)

	for i := range trace {
		if !s.writeStream(conn, StreamMessage{Type: "step", Step: &trace[i]}) {
			return
		}
	}

	result := StreamMessage{Type: "result", Position: level.Start}
	if last, ok := trace.Terminal(); ok {
		result.Success = last.Status == engine.StatusSuccess
		result.Position = last.Position
		result.Reason = last.Reason
	}

	if len(trace) > 0 {
		if _, err := s.store.RecordRun(id, len(req.Program), result.Success, result.Reason); err != nil {
			s.logger.Warn("recording run failed", "level", id, "error", err)
		}
		if result.Success {
			s.completeAndUnlockNext(id, len(req.Program))
		}
	}

	s.writeStream(conn, result)
}

// writeStream sends one frame with a write deadline. Returns false when the
// peer is gone.
func (s *Server) writeStream(conn *websocket.Conn, msg StreamMessage) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Debug("websocket write failed", "error", err)
		return false
	}
	return true
}
