package store

import (
	"strconv"
	"strings"

	"github.com/jward/jassdoc/internal/model"
)

// NullRef is the value exported for a missing reference.
//
// References export only the target's Index. Columns whose field kind
// probes several categories (Global.Type, Keyword.Target, Hook.HookFunction,
// Method.DefaultReturnValue and the like) are therefore ambiguous: Types#1
// and Structs#1 both export as 1.
const NullRef int64 = -1

// Row is one export row with at most Layout.Width values. Values beyond
// the width are dropped and counted.
type Row struct {
	layout  *Layout
	values  []any
	dropped int
}

// NewRow starts an empty row for l.
func NewRow(l *Layout) *Row {
	return &Row{layout: l, values: make([]any, 0, l.Width())}
}

// Layout returns the row's layout.
func (r *Row) Layout() *Layout { return r.layout }

// Append adds values in column order. Values past the fixed width are
// dropped.
func (r *Row) Append(values ...any) *Row {
	for _, v := range values {
		if len(r.values) >= r.layout.Width() {
			r.dropped++
			continue
		}
		r.values = append(r.values, encode(v))
	}
	return r
}

// Dropped returns how many values were discarded by Append.
func (r *Row) Dropped() int { return r.dropped }

// Values returns the encoded values, padded with nil (SQL NULL) up to the
// layout width.
func (r *Row) Values() []any {
	out := make([]any, r.layout.Width())
	copy(out, r.values)
	return out
}

// SQL renders the row as an INSERT statement.
func (r *Row) SQL() string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(r.layout.Table())
	b.WriteString(" (")
	b.WriteString(columnList(r.layout.Columns))
	b.WriteString(") VALUES (")
	for i, v := range r.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(literal(v))
	}
	b.WriteString(");")
	return b.String()
}

// encode maps model values onto the column encodings: booleans as 0/1,
// references as the target's index or NullRef, integers as int64.
func encode(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case int:
		return int64(x)
	case int64:
		return x
	case uint32:
		return int64(x)
	case model.ObjectID:
		if !x.IsValid() {
			return NullRef
		}
		return int64(x.Index)
	case model.Expr:
		return encode(x.Ref)
	case string:
		return x
	}
	return nil
}

func literal(v any) string {
	switch x := v.(type) {
	case int64:
		return strconv.FormatInt(x, 10)
	case string:
		return Quote(x)
	}
	return "NULL"
}
