package jassdoc

import (
	"github.com/jward/jassdoc/internal/index"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
	"github.com/jward/jassdoc/internal/resolve"
)

// Query provides read-only access to a pool: name lookups, expression
// evaluation and, once resolved, container listings.
type Query struct {
	pool     *pool.Pool
	resolver *resolve.Resolver
	index    *index.Index
}

// Find returns the first declared object of kind k named name.
func (q *Query) Find(k Kind, name string) (Object, bool) {
	id, ok := q.pool.Lookup(k, name)
	if !ok {
		return nil, false
	}
	return q.pool.Get(id), true
}

// Get returns the object with the given id, or nil.
func (q *Query) Get(id ObjectID) Object {
	return q.pool.Get(id)
}

// Objects returns the objects of kind k in insertion order.
func (q *Query) Objects(k Kind) []Object {
	return q.pool.Category(k)
}

// Lookup probes the categories of field in order and returns the winning
// object. Self keywords are not substituted.
func (q *Query) Lookup(field FieldKind, text string) (Object, bool) {
	id, ok := q.resolver.Lookup(field, text)
	if !ok {
		return nil, false
	}
	return q.pool.Get(id), true
}

// Evaluate reports how text would resolve in field of the object at, which
// may be the zero ObjectID. Nothing is modified.
func (q *Query) Evaluate(at ObjectID, field FieldKind, text string) Result {
	var ctx model.Object
	if at.IsValid() {
		ctx = q.pool.Get(at)
	}
	return q.resolver.Evaluate(ctx, field, text)
}

// Children returns the objects of kind k declared inside parent. It returns
// nil before the pool is resolved.
func (q *Query) Children(parent ObjectID, k Kind) []Object {
	if q.index == nil {
		return nil
	}
	ids := q.index.Children(parent, k)
	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		out = append(out, q.pool.Get(id))
	}
	return out
}

// Ancestors returns the base structs of s, nearest first. It returns nil
// before the pool is resolved.
func (q *Query) Ancestors(s ObjectID) []Object {
	if q.index == nil {
		return nil
	}
	ids := q.index.Ancestors(s)
	out := make([]Object, 0, len(ids))
	for _, id := range ids {
		out = append(out, q.pool.Get(id))
	}
	return out
}
