// internal/api/routes.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Modes
	mux.HandleFunc("GET /modes", h.listModes)

	// Glossary
	mux.HandleFunc("GET /terms", h.listTerms)
	mux.HandleFunc("PUT /terms", h.replaceTerms)
	mux.HandleFunc("GET /terms/export", h.exportTerms)
	mux.HandleFunc("POST /terms/import", h.importTerms)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("POST /sessions/{sessionID}/reset", h.resetSession)
	mux.HandleFunc("PATCH /sessions/{sessionID}/learner", h.updateLearner)
	mux.HandleFunc("GET /sessions/{sessionID}/records", h.listRecords)
	mux.HandleFunc("GET /sessions/{sessionID}/summary", h.getSummary)
}
