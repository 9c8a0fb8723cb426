// Package store flattens resolved objects into fixed-width relational rows
// and writes them to SQLite or to a SQL script.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jward/jassdoc/internal/model"
)

// Store is the SQLite export target: one table per category plus Metadata.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database at dbPath with WAL mode enabled.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates every table. Idempotent.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(SchemaDDL()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SchemaDDL returns the CREATE TABLE statements generated from the
// layouts, in pool order, followed by the Metadata table.
func SchemaDDL() string {
	var b strings.Builder
	for _, k := range model.Kinds() {
		l := LayoutOf(k)
		fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", l.Table())
		for i, c := range l.Columns {
			fmt.Fprintf(&b, "  %s %s", c.Name, c.Type)
			if i == 0 {
				b.WriteString(" PRIMARY KEY")
			}
			if i < len(l.Columns)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(");\n\n")
	}
	b.WriteString(metadataDDL)
	return b.String()
}

const metadataDDL = `CREATE TABLE IF NOT EXISTS Metadata (
  Key   TEXT PRIMARY KEY,
  Value TEXT NOT NULL
);
`

// Count returns the number of rows exported for kind k.
func (s *Store) Count(k model.Kind) (int, error) {
	l := LayoutOf(k)
	if l == nil {
		return 0, fmt.Errorf("count: invalid kind %d", k)
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM " + l.Table()).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", l.Table(), err)
	}
	return n, nil
}

// MetadataValue returns one Metadata entry.
func (s *Store) MetadataValue(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT Value FROM Metadata WHERE Key = ?", key).Scan(&v)
	if err != nil {
		return "", fmt.Errorf("metadata %s: %w", key, err)
	}
	return v, nil
}
