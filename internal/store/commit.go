package store

import (
	"fmt"

	"github.com/jward/jassdoc/internal/model"
)

// WriteBatch replaces the contents of every table with the rows of b
// within a single transaction, then records meta.
func (s *Store) WriteBatch(b *Batch, meta Metadata) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("write batch: begin: %w", err)
	}
	defer tx.Rollback()

	for _, k := range model.Kinds() {
		l := LayoutOf(k)
		if _, err := tx.Exec("DELETE FROM " + l.Table()); err != nil {
			return fmt.Errorf("write batch: clear %s: %w", l.Table(), err)
		}
		rows := b.Rows(k)
		if len(rows) == 0 {
			continue
		}
		stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			l.Table(), columnList(l.Columns), placeholderList(l.Width())))
		if err != nil {
			return fmt.Errorf("write batch: prepare %s: %w", l.Table(), err)
		}
		for _, r := range rows {
			if _, err := stmt.Exec(r.Values()...); err != nil {
				stmt.Close()
				return fmt.Errorf("write batch: insert %s: %w", l.Table(), err)
			}
		}
		stmt.Close()
	}

	if _, err := tx.Exec("DELETE FROM Metadata"); err != nil {
		return fmt.Errorf("write batch: clear metadata: %w", err)
	}
	for _, kv := range meta.pairs() {
		if _, err := tx.Exec("INSERT INTO Metadata (Key, Value) VALUES (?, ?)", kv[0], kv[1]); err != nil {
			return fmt.Errorf("write batch: metadata %s: %w", kv[0], err)
		}
	}
	return tx.Commit()
}
