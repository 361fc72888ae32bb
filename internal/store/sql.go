// internal/store/sql.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite

	"github.com/Jelly-ChinChan/Zoology-app/internal/domain/term"
)

const schema = `
CREATE TABLE IF NOT EXISTS terms (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    english TEXT NOT NULL
);
`

// SQLStore keeps the glossary in sqlite (default) or postgres.
type SQLStore struct {
	db     *sql.DB
	driver Driver
}

var _ Store = (*SQLStore)(nil)

// Open connects and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName string
	switch driver {
	case DriverSQLite, "":
		driver = DriverSQLite
		drvName = "sqlite"
		if dsn == "" {
			dsn = "zoology.db"
		}
	case DriverPostgres:
		drvName = "pgx"
		if dsn == "" {
			dsn = "postgres://localhost:5432/zoology?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// one writer avoids SQLITE_BUSY on the replace transaction
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ReplaceTerms swaps the whole glossary in one transaction.
func (s *SQLStore) ReplaceTerms(ctx context.Context, terms []term.Term) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM terms"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind("INSERT INTO terms (position, name, english) VALUES (?, ?, ?)"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range terms {
		if _, err := stmt.ExecContext(ctx, i, t.Name, t.English); err != nil {
			return fmt.Errorf("insert term %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (s *SQLStore) ListTerms(ctx context.Context) ([]term.Term, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, english FROM terms ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []term.Term
	for rows.Next() {
		var t term.Term
		if err := rows.Scan(&t.Name, &t.English); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func (s *SQLStore) CountTerms(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM terms").Scan(&n)
	return n, err
}
