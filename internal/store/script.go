package store

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jward/jassdoc/internal/model"
)

// ScriptWriter writes a batch as a SQL script, one statement per line.
type ScriptWriter struct {
	w      io.Writer
	schema bool
}

// NewScriptWriter writes to w. When schema is set the CREATE TABLE
// statements precede the rows.
func NewScriptWriter(w io.Writer, schema bool) *ScriptWriter {
	return &ScriptWriter{w: w, schema: schema}
}

// WriteBatch writes every row of b, table by table in pool order, then
// the metadata rows. Only write errors are returned.
func (sw *ScriptWriter) WriteBatch(b *Batch, meta Metadata) error {
	bw := bufio.NewWriter(sw.w)
	if sw.schema {
		fmt.Fprintln(bw, SchemaDDL())
	}
	for _, k := range model.Kinds() {
		for _, r := range b.Rows(k) {
			fmt.Fprintln(bw, r.SQL())
		}
	}
	for _, kv := range meta.pairs() {
		fmt.Fprintf(bw, "INSERT INTO Metadata (Key, Value) VALUES (%s, %s);\n", Quote(kv[0]), Quote(kv[1]))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write sql: %w", err)
	}
	return nil
}
