package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

const exportVersion = "1.0"

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string        `json:"version" example:"1.0"`
	ExportedAt string        `json:"exported_at"`
	Terms      []TermPayload `json:"terms"`
}

type ImportResult struct {
	TermsImported int `json:"terms_imported" example:"42"`
	RowsDropped   int `json:"rows_dropped" example:"1"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportTerms downloads the glossary as an export document.
// @Summary      Export the glossary
// @Tags         Glossary
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  ErrorResponse
// @Router       /terms/export [get]
func (h *Handler) exportTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.glossary.List(r.Context())
	if err != nil {
		h.logger.Error("failed to load terms", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load terms")
		return
	}

	exportData := ExportData{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Terms:      newTermsResponse(terms).Terms,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=zoology-glossary.json")
	json.NewEncoder(w).Encode(exportData)
}

// importTerms replaces the glossary from an export document or an uploaded
// spreadsheet.
// @Summary      Import a glossary
// @Description  Accepts an export document as JSON, or a multipart upload in the "file" field (.xlsx, .csv or .json).
// @Tags         Glossary
// @Accept       json,mpfd
// @Produce      json
// @Param        file  formData  file  false  "Glossary file"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  ErrorResponse
// @Router       /terms/import [post]
func (h *Handler) importTerms(w http.ResponseWriter, r *http.Request) {
	var (
		terms []term.Term
		err   error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		terms, err = h.readUpload(w, r)
	} else {
		var importData ExportData
		if !decodeJSON(w, r, &importData) {
			return
		}
		terms = make([]term.Term, len(importData.Terms))
		for i, t := range importData.Terms {
			terms[i] = term.Term{Name: t.Name, English: t.English}
		}
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	cleaned, err := h.glossary.Replace(r.Context(), terms)
	if errors.Is(err, term.ErrEmptyBank) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, ImportResult{
		TermsImported: len(cleaned),
		RowsDropped:   len(terms) - len(cleaned),
	})
}

func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([]term.Term, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 8*maxBodyBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("file is required")
	}
	defer file.Close()

	terms, err := term.Load(header.Filename, file)
	if err != nil {
		h.logger.Warn("rejected glossary upload", "filename", header.Filename, "error", err)
		return nil, err
	}
	return terms, nil
}
