package api

import (
	"errors"
	"net/http"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

// ── Request / Response types ────────────────────────────────────────────────

type TermPayload struct {
	Name    string `json:"name" example:"象"`
	English string `json:"english" example:"Elephant"`
}

type ReplaceTermsRequest struct {
	Terms []TermPayload `json:"terms"`
}

func (r *ReplaceTermsRequest) Validate() error {
	if len(r.Terms) == 0 {
		return errors.New("terms are required")
	}
	return nil
}

type TermsResponse struct {
	Count int           `json:"count" example:"2"`
	Terms []TermPayload `json:"terms"`
}

func newTermsResponse(terms []term.Term) TermsResponse {
	resp := TermsResponse{Count: len(terms), Terms: make([]TermPayload, len(terms))}
	for i, t := range terms {
		resp.Terms[i] = TermPayload{Name: t.Name, English: t.English}
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listTerms returns the stored glossary.
// @Summary      List glossary terms
// @Tags         Glossary
// @Produce      json
// @Success      200  {object}  TermsResponse
// @Router       /terms [get]
func (h *Handler) listTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.glossary.List(r.Context())
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newTermsResponse(terms))
}

// replaceTerms swaps the whole glossary.
// @Summary      Replace the glossary
// @Description  Rows with an empty name or english are dropped. 400 if nothing is left.
// @Tags         Glossary
// @Accept       json
// @Produce      json
// @Param        body  body      ReplaceTermsRequest  true  "Terms"
// @Success      200   {object}  TermsResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /terms [put]
func (h *Handler) replaceTerms(w http.ResponseWriter, r *http.Request) {
	var req ReplaceTermsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	terms := make([]term.Term, len(req.Terms))
	for i, t := range req.Terms {
		terms[i] = term.Term{Name: t.Name, English: t.English}
	}

	cleaned, err := h.glossary.Replace(r.Context(), terms)
	if errors.Is(err, term.ErrEmptyBank) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, newTermsResponse(cleaned))
}
