package store

import (
	"sync"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
)

// Batch buffers export rows per table, in insertion order, so the same
// rows can be committed to SQLite and written as a script.
//
// Thread safety: the mutex protects the per-table slices.
type Batch struct {
	mu      sync.Mutex
	tables  [model.KindCount + 1][]*Row
	dropped int
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Add appends r to its table.
func (b *Batch) Add(r *Row) {
	if r == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	k := r.layout.Kind
	b.tables[k] = append(b.tables[k], r)
	b.dropped += r.Dropped()
}

// Rows returns the rows buffered for kind k.
func (b *Batch) Rows(k model.Kind) []*Row {
	if !k.IsValid() {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Row(nil), b.tables[k]...)
}

// Len returns the total number of rows.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, rows := range b.tables {
		n += len(rows)
	}
	return n
}

// Dropped returns the number of values dropped over all rows.
func (b *Batch) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Collect builds the rows of every object of p in pool order. Rows that
// overflowed their layout are reported to bag, which may be nil.
func Collect(p *pool.Pool, bag *diag.Bag) *Batch {
	b := NewBatch()
	p.Each(func(o model.Object) bool {
		r := RowFor(o)
		if r == nil {
			return true
		}
		if n := r.Dropped(); n > 0 && bag != nil {
			bag.Report(diag.BoundedExportOverflow, o, "%d values beyond %d columns dropped", n, r.layout.Width())
		}
		b.Add(r)
		return true
	})
	return b
}
