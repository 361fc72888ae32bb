package ws

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/service"
)

// Handler upgrades GET /ws?mode=... and gives the connection its own drill
// session. The session is discarded when the connection closes.
type Handler struct {
	drills   *service.DrillService
	hub      *Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(drills *service.DrillService, hub *Hub, logger *slog.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		drills: drills,
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

func checkOrigin(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode := quiz.ModeCNToENChoice
	if raw := q.Get("mode"); raw != "" {
		m, err := quiz.ParseMode(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode = m
	}
	learner := quiz.Learner{Name: q.Get("name"), Class: q.Get("class"), Seat: q.Get("seat")}

	// Open before upgrading so glossary problems surface as HTTP errors.
	session, err := h.drills.Open(r.Context(), mode, learner)
	if err != nil {
		if errors.Is(err, term.ErrEmptyBank) {
			http.Error(w, "glossary is empty", http.StatusServiceUnavailable)
			return
		}
		h.logger.Error("failed to open websocket session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(h.hub, conn, session, h.logger)
	if !h.hub.Register(client) {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}
	client.logger.Info("websocket connected", "mode", mode)

	client.sendState()
	go client.WritePump()
	go client.ReadPump()
}
