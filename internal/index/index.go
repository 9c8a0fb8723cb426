// Package index builds the read-only views the renderer needs after
// resolution: container and owner children, and the struct inheritance
// graph. It is built once and never mutates the pool.
package index

import (
	"errors"
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
)

// Index maps parents to their children, per child kind.
type Index struct {
	pool     *pool.Pool
	children map[model.ObjectID]map[model.Kind][]model.ObjectID
	broken   map[model.ObjectID]string

	inherit graph.Graph[model.ObjectID, model.ObjectID]
	bases   map[model.ObjectID]model.ObjectID
	derived map[model.ObjectID][]model.ObjectID
}

// Build indexes p. Children whose container or owner key does not name a
// declared object of a suitable kind are reported as structural
// violations and left out of every listing.
func Build(p *pool.Pool, bag *diag.Bag) *Index {
	if bag == nil {
		bag = diag.NewBag(nil)
	}
	ix := &Index{
		pool:     p,
		children: make(map[model.ObjectID]map[model.Kind][]model.ObjectID),
		broken:   make(map[model.ObjectID]string),
		inherit:  graph.New(func(id model.ObjectID) model.ObjectID { return id }, graph.Directed(), graph.PreventCycles()),
		bases:    make(map[model.ObjectID]model.ObjectID),
		derived:  make(map[model.ObjectID][]model.ObjectID),
	}
	for _, k := range []model.Kind{model.KindMember, model.KindMethod, model.KindImplementation} {
		for _, o := range p.Category(k) {
			key, _ := model.ContainerOf(o)
			ix.link(bag, o, key, model.Kind.IsContainer, "container")
		}
	}
	for _, k := range []model.Kind{model.KindParameter, model.KindLocal} {
		for _, o := range p.Category(k) {
			key, _ := model.OwnerOf(o)
			ix.link(bag, o, key, model.Kind.IsFunctionLike, "owner")
		}
	}
	ix.sortParameters()
	ix.buildInheritance(bag)
	return ix
}

func (ix *Index) link(bag *diag.Bag, o model.Object, key model.ObjectID, accept func(model.Kind) bool, role string) {
	if ix.pool.Get(key) == nil || !accept(key.Kind) {
		msg := role + " " + key.String() + " does not exist"
		ix.broken[o.Common().ID] = msg
		bag.Report(diag.StructuralViolation, o, "%s", msg)
		return
	}
	byKind := ix.children[key]
	if byKind == nil {
		byKind = make(map[model.Kind][]model.ObjectID)
		ix.children[key] = byKind
	}
	byKind[o.Kind()] = append(byKind[o.Kind()], o.Common().ID)
}

// sortParameters orders parameter listings by ordinal, keeping
// declaration order for equal ordinals.
func (ix *Index) sortParameters() {
	for _, byKind := range ix.children {
		params := byKind[model.KindParameter]
		if len(params) < 2 {
			continue
		}
		sort.SliceStable(params, func(i, j int) bool {
			pi, _ := pool.Get[*model.Parameter](ix.pool, params[i])
			pj, _ := pool.Get[*model.Parameter](ix.pool, params[j])
			return pi.Ordinal < pj.Ordinal
		})
	}
}

func (ix *Index) buildInheritance(bag *diag.Bag) {
	structs := pool.All[*model.Struct](ix.pool, model.KindStruct)
	for _, s := range structs {
		_ = ix.inherit.AddVertex(s.ID)
	}
	for _, s := range structs {
		base := s.Extends.Ref
		if base.Kind != model.KindStruct || !base.IsValid() {
			continue
		}
		err := ix.inherit.AddEdge(s.ID, base)
		switch {
		case err == nil:
			ix.bases[s.ID] = base
		case errors.Is(err, graph.ErrEdgeCreatesCycle):
			bag.Report(diag.StructuralViolation, s, "extends %s closes an inheritance cycle; edge ignored", base)
		default:
			bag.Report(diag.StructuralViolation, s, "extends %s: %v", base, err)
		}
	}
	preds, err := ix.inherit.PredecessorMap()
	if err != nil {
		return
	}
	for base, edges := range preds {
		kids := make([]model.ObjectID, 0, len(edges))
		for kid := range edges {
			kids = append(kids, kid)
		}
		sortIDs(kids)
		if len(kids) > 0 {
			ix.derived[base] = kids
		}
	}
}

// Children returns the children of parent of kind k in listing order.
func (ix *Index) Children(parent model.ObjectID, k model.Kind) []model.ObjectID {
	return ix.children[parent][k]
}

// Members returns the members declared in container c.
func (ix *Index) Members(c model.ObjectID) []model.ObjectID {
	return ix.Children(c, model.KindMember)
}

// Methods returns the methods declared in container c.
func (ix *Index) Methods(c model.ObjectID) []model.ObjectID {
	return ix.Children(c, model.KindMethod)
}

// Implementations returns the implement statements of container c.
func (ix *Index) Implementations(c model.ObjectID) []model.ObjectID {
	return ix.Children(c, model.KindImplementation)
}

// Parameters returns the parameters of fn ordered by ordinal.
func (ix *Index) Parameters(fn model.ObjectID) []model.ObjectID {
	return ix.Children(fn, model.KindParameter)
}

// Locals returns the locals of fn.
func (ix *Index) Locals(fn model.ObjectID) []model.ObjectID {
	return ix.Children(fn, model.KindLocal)
}

// Ancestors returns the struct chain above s, nearest base first.
func (ix *Index) Ancestors(s model.ObjectID) []model.ObjectID {
	var out []model.ObjectID
	for cur, ok := ix.bases[s]; ok; cur, ok = ix.bases[cur] {
		out = append(out, cur)
	}
	return out
}

// ChildStructs returns the structs directly extending s.
func (ix *Index) ChildStructs(s model.ObjectID) []model.ObjectID {
	return ix.derived[s]
}

// Violation returns the structural problem recorded for id, if any.
func (ix *Index) Violation(id model.ObjectID) (string, bool) {
	msg, ok := ix.broken[id]
	return msg, ok
}

func sortIDs(ids []model.ObjectID) {
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Kind != ids[j].Kind {
			return ids[i].Kind < ids[j].Kind
		}
		return ids[i].Index < ids[j].Index
	})
}
