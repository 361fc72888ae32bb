package store

import (
	"context"

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

// Store persists the glossary. Drill sessions are never stored.
type Store interface {
	ReplaceTerms(ctx context.Context, terms []term.Term) error
	ListTerms(ctx context.Context) ([]term.Term, error)
	CountTerms(ctx context.Context) (int, error)
	Close() error
}

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)
