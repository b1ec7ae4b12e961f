package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"levelgen.dev/internal/models"
	"levelgen.dev/internal/services"
)

// Stream message types
const (
	MessageStage = "stage"
	MessageDone  = "done"
	MessageError = "error"
)

// StreamHandler runs one generation per websocket connection and reports
// every completed stage
type StreamHandler struct {
	levelService *services.LevelService
	logger       *slog.Logger
	upgrader     websocket.Upgrader
}

// NewStreamHandler creates a new StreamHandler
func NewStreamHandler(ls *services.LevelService, logger *slog.Logger) *StreamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamHandler{
		levelService: ls,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Stream handles GET /api/levels/stream. The client sends one generate
// request; the server answers with stage messages and a final done or
// error message, then closes.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	var req models.GenerateRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.send(conn, models.StreamMessage{Type: MessageError, Error: "invalid generate request"})
		return
	}

	summary, err := h.levelService.GenerateWithStages(r.Context(), req, func(stage models.StageMessage) {
		h.send(conn, models.StreamMessage{Type: MessageStage, Stage: &stage})
	})
	if err != nil {
		h.logger.Warn("streamed generation failed", "seed", req.Seed, "error", err)
		h.send(conn, models.StreamMessage{Type: MessageError, Error: err.Error()})
		return
	}

	h.send(conn, models.StreamMessage{Type: MessageDone, Summary: summary})
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(time.Second))
}

func (h *StreamHandler) send(conn *websocket.Conn, msg models.StreamMessage) {
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Debug("stream write failed", "type", msg.Type, "error", err)
	}
}
