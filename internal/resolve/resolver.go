// Package resolve binds the textual expressions of declared objects to
// concrete pool objects through an ordered, multi-category lookup.
package resolve

import (
	"strings"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
)

const (
	keywordThistype = "thistype"
	keywordSuper    = "super"
)

// Outcome is what happened to one expression.
type Outcome uint8

const (
	OutcomeBound Outcome = iota
	OutcomeLiteral
	OutcomeUnresolved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBound:
		return "bound"
	case OutcomeLiteral:
		return "literal"
	case OutcomeUnresolved:
		return "unresolved"
	}
	return "unknown"
}

// Stats counts expression outcomes over a resolution pass.
type Stats struct {
	Objects    int
	Bound      int
	Literal    int
	Unresolved int
	Failed     int
}

// Resolver resolves objects of one pool. Lookups only inspect raw
// identifiers, so objects may be resolved in any order.
type Resolver struct {
	pool  *pool.Pool
	diags *diag.Bag
	stats Stats
}

// New creates a Resolver over p. bag may be nil.
func New(p *pool.Pool, bag *diag.Bag) *Resolver {
	if bag == nil {
		bag = diag.NewBag(nil)
	}
	return &Resolver{pool: p, diags: bag}
}

// Stats returns the counters accumulated so far.
func (r *Resolver) Stats() Stats { return r.stats }

// Lookup probes the categories of field in order and returns the first
// declared object named text. No keyword substitution is applied.
func (r *Resolver) Lookup(field FieldKind, text string) (model.ObjectID, bool) {
	for _, k := range field.Categories() {
		if id, ok := r.pool.Lookup(k, text); ok {
			return id, true
		}
	}
	return model.NoObject, false
}

// Result describes how an expression was (or would be) resolved.
type Result struct {
	Expanded string
	Ref      model.ObjectID
	Outcome  Outcome
}

// Evaluate resolves text as if it appeared in field of object ctx (which
// may be nil) without mutating anything.
func (r *Resolver) Evaluate(ctx model.Object, field FieldKind, text string) Result {
	if text == "" || text == model.Placeholder {
		return Result{Expanded: model.Placeholder, Outcome: OutcomeLiteral}
	}
	if ctx != nil {
		text = r.expandSelf(ctx, text)
		if text == "" || text == model.Placeholder {
			return Result{Expanded: model.Placeholder, Outcome: OutcomeLiteral}
		}
	}
	if id, ok := r.Lookup(field, text); ok {
		return Result{Expanded: text, Ref: id, Outcome: OutcomeBound}
	}
	if model.IsLiteral(text) {
		return Result{Expanded: text, Outcome: OutcomeLiteral}
	}
	return Result{Expanded: text, Outcome: OutcomeUnresolved}
}

// bind resolves e in place. After it returns exactly one of e.Text and
// e.Ref is set.
func (r *Resolver) bind(o model.Object, field FieldKind, e *model.Expr, label string) {
	if e.Ref.IsValid() {
		if r.pool.Get(e.Ref) != nil {
			e.Text = ""
			r.stats.Bound++
			return
		}
		r.diags.Report(diag.MalformedInput, o, "%s refers to %s, which does not exist", label, e.Ref)
		e.Ref = model.NoObject
		e.Text = model.Placeholder
		r.stats.Unresolved++
		return
	}
	res := r.Evaluate(o, field, e.Text)
	switch res.Outcome {
	case OutcomeBound:
		e.Bind(res.Ref)
		r.stats.Bound++
	case OutcomeLiteral:
		e.Text = res.Expanded
		r.stats.Literal++
	default:
		e.Text = res.Expanded
		r.stats.Unresolved++
		r.diags.Report(diag.UnresolvedReference, o, "%s %q matches no %s", label, res.Expanded, categoryList(field))
	}
}

// expandSelf rewrites the self keywords: thistype becomes the enclosing
// container's name and super becomes the container's base-type text as it
// currently stands, which is empty once that container has been resolved.
func (r *Resolver) expandSelf(o model.Object, text string) string {
	isThis := strings.EqualFold(text, keywordThistype)
	isSuper := strings.EqualFold(text, keywordSuper)
	if !isThis && !isSuper {
		return text
	}
	c := r.enclosingContainer(o)
	if c == nil {
		return text
	}
	if isThis {
		return c.Common().Name
	}
	if st, ok := c.(*model.Struct); ok {
		return st.Extends.Text
	}
	return ""
}

// enclosingContainer returns the struct, interface or module an object
// lives in, or nil.
func (r *Resolver) enclosingContainer(o model.Object) model.Object {
	if o.Kind().IsContainer() {
		return o
	}
	if id, ok := model.ContainerOf(o); ok {
		return r.containerAt(o, id)
	}
	owner, ok := model.OwnerOf(o)
	if !ok {
		return nil
	}
	fn := r.pool.Get(owner)
	if fn == nil || !owner.Kind.IsFunctionLike() {
		r.diags.Report(diag.MalformedInput, o, "owner %s is not a declared function or method", owner)
		return nil
	}
	if m, ok := fn.(*model.Method); ok {
		return r.containerAt(m, m.Container)
	}
	return nil
}

func (r *Resolver) containerAt(o model.Object, id model.ObjectID) model.Object {
	c := r.pool.Get(id)
	if c == nil || !id.Kind.IsContainer() {
		r.diags.Report(diag.MalformedInput, o, "container %s is not a declared struct, interface or module", id)
		return nil
	}
	return c
}

func categoryList(field FieldKind) string {
	cats := field.Categories()
	names := make([]string, len(cats))
	for i, k := range cats {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
