package diag

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/jward/jassdoc/internal/model"
)

// Bag accumulates diagnostics. It is safe for concurrent use because the
// render phase reports from several goroutines.
type Bag struct {
	mu     sync.Mutex
	items  []Diagnostic
	logger *slog.Logger
}

// NewBag returns an empty bag. A nil logger discards log output.
func NewBag(logger *slog.Logger) *Bag {
	return &Bag{logger: logger}
}

// Add appends d, filling in the default severity for its code.
func (b *Bag) Add(d Diagnostic) {
	if d.Severity == SevInfo {
		d.Severity = d.Code.DefaultSeverity()
	}
	b.mu.Lock()
	b.items = append(b.items, d)
	b.mu.Unlock()
	b.log(d)
}

// Report adds a diagnostic about object o (which may be nil).
func (b *Bag) Report(code Code, o model.Object, format string, args ...any) {
	d := Diagnostic{Code: code, Message: fmt.Sprintf(format, args...)}
	if o != nil {
		d.Object = o.Common().ID
		d.Name = o.Common().Name
	}
	b.Add(d)
}

func (b *Bag) log(d Diagnostic) {
	if b.logger == nil {
		return
	}
	level := slog.LevelDebug
	switch d.Severity {
	case SevWarning:
		level = slog.LevelWarn
	case SevError:
		level = slog.LevelError
	}
	b.logger.Log(context.Background(), level, d.Message,
		"code", d.Code.String(), "object", d.Object.String(), "name", d.Name)
}

// Len returns the number of diagnostics.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Items returns a copy of all diagnostics in report order.
func (b *Bag) Items() []Diagnostic {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)
	return out
}

// Count returns how many diagnostics carry code.
func (b *Bag) Count(code Code) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for i := range b.items {
		if b.items[i].Code == code {
			n++
		}
	}
	return n
}

// HasErrors reports whether any diagnostic has error severity.
func (b *Bag) HasErrors() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Sorted returns the diagnostics ordered by object (category, index) and
// then by code, for stable output after the parallel render phase.
func (b *Bag) Sorted() []Diagnostic {
	out := b.Items()
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i], out[j]
		if di.Object.Kind != dj.Object.Kind {
			return di.Object.Kind < dj.Object.Kind
		}
		if di.Object.Index != dj.Object.Index {
			return di.Object.Index < dj.Object.Index
		}
		return di.Code < dj.Code
	})
	return out
}
