package store

import (
	"time"

	"github.com/google/uuid"
)

// Generator is recorded in the Metadata table of every export.
const Generator = "jassdoc"

// Metadata describes one export run.
type Metadata struct {
	RunID     string
	Title     string
	Checksum  string
	CreatedAt time.Time
}

// NewMetadata stamps a new run for batch b.
func NewMetadata(title string, b *Batch) Metadata {
	return Metadata{
		RunID:     uuid.NewString(),
		Title:     title,
		Checksum:  Checksum(b),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func (m Metadata) pairs() [][2]string {
	return [][2]string{
		{"RunId", m.RunID},
		{"Generator", Generator},
		{"Title", m.Title},
		{"Checksum", m.Checksum},
		{"CreatedAt", m.CreatedAt.Format(time.RFC3339)},
	}
}

// Target is an export destination. Both Store (SQLite) and ScriptWriter
// (SQL text) implement it.
type Target interface {
	WriteBatch(b *Batch, meta Metadata) error
}

// Compile-time checks.
var (
	_ Target = (*Store)(nil)
	_ Target = (*ScriptWriter)(nil)
)
