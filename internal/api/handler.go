// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/quiz"
	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/service"
)

const maxBodyBytes = 1 << 20

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	glossary *service.GlossaryService
	drills   *service.DrillService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(glossary *service.GlossaryService, drills *service.DrillService, logger *slog.Logger) *Handler {
	return &Handler{
		glossary: glossary,
		drills:   drills,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes the request body into v and writes a 400 on failure.
// Returns false if the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, false)
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	respondError(w, http.StatusBadRequest, "invalid request body")
	return false
}

// handleError maps domain and service errors to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrValidation), errors.Is(err, quiz.ErrUnknownMode):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quiz.ErrProtocol):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, term.ErrEmptyBank):
		respondError(w, http.StatusServiceUnavailable, "glossary is empty")
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
