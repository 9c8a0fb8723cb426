// Package pool holds every declared object, one ordered append-only
// category per kind. The pool is filled completely before resolution and
// is read-only afterwards.
package pool

import (
	"errors"
	"fmt"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
)

var (
	// ErrSealed is returned by Add once resolution has started.
	ErrSealed = errors.New("pool is sealed")
	// ErrInvalidObject is returned by Add for nil objects or unknown kinds.
	ErrInvalidObject = errors.New("invalid object")
)

type category struct {
	arena *Arena[model.Object]
	// first maps an identifier to the index of its first declaration.
	first map[string]uint32
}

// Pool is the per-kind object store.
type Pool struct {
	cats   [model.KindCount + 1]category
	sealed bool
	diags  *diag.Bag
}

// Option configures a Pool.
type Option func(*Pool)

// WithDiagnostics reports duplicate identifiers to bag.
func WithDiagnostics(bag *diag.Bag) Option {
	return func(p *Pool) {
		p.diags = bag
	}
}

// New creates an empty pool.
func New(opts ...Option) *Pool {
	p := &Pool{}
	for _, k := range model.Kinds() {
		p.cats[k] = category{
			arena: NewArena[model.Object](16),
			first: make(map[string]uint32),
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends o to its category, assigns its ID and marks it declared.
func (p *Pool) Add(o model.Object) (model.ObjectID, error) {
	id, err := p.add(o)
	if err != nil {
		return model.NoObject, err
	}
	o.Common().State = model.StateDeclared
	return id, nil
}

func (p *Pool) add(o model.Object) (model.ObjectID, error) {
	if p.sealed {
		return model.NoObject, ErrSealed
	}
	if o == nil || !o.Kind().IsValid() {
		return model.NoObject, ErrInvalidObject
	}
	k := o.Kind()
	cat := &p.cats[k]
	idx, err := cat.arena.Allocate(o)
	if err != nil {
		return model.NoObject, fmt.Errorf("pool: add %s: %w", k.Singular(), err)
	}
	id := model.ObjectID{Kind: k, Index: idx}
	b := o.Common()
	b.ID = id
	if prev, dup := cat.first[b.Name]; dup {
		if p.diags != nil {
			p.diags.Report(diag.DuplicateIdentifier, o,
				"%s %q already declared as %s; lookups bind the first",
				k.Singular(), b.Name, model.ObjectID{Kind: k, Index: prev})
		}
	} else {
		cat.first[b.Name] = idx
	}
	return id, nil
}

// Seal stops further insertion. Called by the resolver before it starts.
func (p *Pool) Seal() { p.sealed = true }

// Sealed reports whether Seal has been called.
func (p *Pool) Sealed() bool { return p.sealed }

// Get returns the object with the given ID, or nil.
func (p *Pool) Get(id model.ObjectID) model.Object {
	if !id.IsValid() {
		return nil
	}
	o, ok := p.cats[id.Kind].arena.Get(id.Index)
	if !ok {
		return nil
	}
	return o
}

// Lookup returns the first object of category k named name. The match is
// exact and case-sensitive.
func (p *Pool) Lookup(k model.Kind, name string) (model.ObjectID, bool) {
	if !k.IsValid() {
		return model.NoObject, false
	}
	idx, ok := p.cats[k].first[name]
	if !ok {
		return model.NoObject, false
	}
	return model.ObjectID{Kind: k, Index: idx}, true
}

// Category returns the objects of k in declaration order. Read-only.
func (p *Pool) Category(k model.Kind) []model.Object {
	if !k.IsValid() {
		return nil
	}
	return p.cats[k].arena.Slice()
}

// Len returns the number of objects in category k.
func (p *Pool) Len(k model.Kind) int {
	if !k.IsValid() {
		return 0
	}
	return p.cats[k].arena.Len()
}

// Total returns the number of objects in all categories.
func (p *Pool) Total() int {
	n := 0
	for _, k := range model.Kinds() {
		n += p.cats[k].arena.Len()
	}
	return n
}

// Each calls fn for every object in pool order, category by category,
// until fn returns false.
func (p *Pool) Each(fn func(model.Object) bool) {
	for _, k := range model.Kinds() {
		for _, o := range p.cats[k].arena.Slice() {
			if !fn(o) {
				return
			}
		}
	}
}

// Get returns the object with the given ID if it has concrete type T.
func Get[T model.Object](p *Pool, id model.ObjectID) (T, bool) {
	var zero T
	o := p.Get(id)
	if o == nil {
		return zero, false
	}
	v, ok := o.(T)
	return v, ok
}

// All returns the objects of category k as concrete type T.
func All[T model.Object](p *Pool, k model.Kind) []T {
	objs := p.Category(k)
	out := make([]T, 0, len(objs))
	for _, o := range objs {
		if v, ok := o.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
