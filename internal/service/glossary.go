package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
	"github.com/Jelly-ChinChan/Zoology-app/internal/store"
)

// GlossaryService validates and persists the shared glossary. Sessions read
// it once when they start, so a replacement only affects new sessions.
type GlossaryService struct {
	store  store.Store
	logger *slog.Logger
}

func NewGlossaryService(s store.Store, logger *slog.Logger) *GlossaryService {
	return &GlossaryService{store: s, logger: logger}
}

func (gs *GlossaryService) List(ctx context.Context) ([]term.Term, error) {
	terms, err := gs.store.ListTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// Replace stores the terms that survive term.NewBank and returns them.
// Nothing is written when no term survives.
func (gs *GlossaryService) Replace(ctx context.Context, terms []term.Term) ([]term.Term, error) {
	bank, err := term.NewBank(terms)
	if err != nil {
		return nil, err
	}
	cleaned := bank.Terms()
	if err := gs.store.ReplaceTerms(ctx, cleaned); err != nil {
		return nil, fmt.Errorf("replace terms: %w", err)
	}

	gs.logger.Info("glossary replaced",
		"terms", len(cleaned),
		"dropped", len(terms)-len(cleaned),
	)
	return cleaned, nil
}

// ImportFiles loads the files concurrently and replaces the glossary with
// their concatenation.
func (gs *GlossaryService) ImportFiles(ctx context.Context, paths []string, workers int) ([]term.Term, error) {
	terms, err := term.LoadFiles(ctx, paths, workers)
	if err != nil {
		return nil, err
	}
	return gs.Replace(ctx, terms)
}
