// Package render projects a resolved pool into documentation pages: one
// page per object plus one index page per category and a root index.
package render

import (
	"context"
	"fmt"
	"html"
	"runtime"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/index"
	"github.com/jward/jassdoc/internal/locale"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
)

// Page is a rendered object page.
type Page struct {
	Path    string
	Title   string
	Nav     string
	Content string
}

// Stats counts what a Run produced.
type Stats struct {
	Pages    int
	Skipped  int
	Excluded int
	Failed   int
}

// Renderer renders one resolved pool.
type Renderer struct {
	pool    *pool.Pool
	index   *index.Index
	diags   *diag.Bag
	lookup  locale.Lookuper
	locator Locator
	exclude []glob.Glob
	jobs    int
	title   string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLocale sets the localization collaborator.
func WithLocale(l locale.Lookuper) Option {
	return func(r *Renderer) { r.lookup = l }
}

// WithLocator sets the source-location collaborator.
func WithLocator(l Locator) Option {
	return func(r *Renderer) { r.locator = l }
}

// WithDiagnostics sets the bag render failures are reported to.
func WithDiagnostics(bag *diag.Bag) Option {
	return func(r *Renderer) { r.diags = bag }
}

// WithJobs bounds the number of objects rendered concurrently.
func WithJobs(n int) Option {
	return func(r *Renderer) { r.jobs = n }
}

// WithTitle sets the documentation title.
func WithTitle(title string) Option {
	return func(r *Renderer) { r.title = title }
}

// WithExclude skips objects whose source file matches any of the
// patterns. Links to excluded objects render as plain text.
func WithExclude(patterns []glob.Glob) Option {
	return func(r *Renderer) { r.exclude = patterns }
}

// CompileExclude compiles glob patterns for WithExclude.
func CompileExclude(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("render: exclude pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// New creates a Renderer over a resolved pool and its index.
func New(p *pool.Pool, ix *index.Index, opts ...Option) *Renderer {
	r := &Renderer{
		pool:    p,
		index:   ix,
		lookup:  locale.English(),
		locator: FileLine{},
		title:   "API Reference",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.diags == nil {
		r.diags = diag.NewBag(nil)
	}
	if r.jobs <= 0 {
		r.jobs = runtime.GOMAXPROCS(0)
	}
	return r
}

// PagePath returns the page path of id.
func PagePath(id model.ObjectID) string {
	return fmt.Sprintf("%s/%d.html", id.Kind.Slug(), id.Index)
}

// IndexPath returns the path of the index page of category k.
func IndexPath(k model.Kind) string {
	return k.Slug() + "/index.html"
}

// Excluded reports whether o is filtered out by the exclude patterns.
func (r *Renderer) Excluded(o model.Object) bool {
	file := o.Common().Loc.File
	for _, g := range r.exclude {
		if g.Match(file) {
			return true
		}
	}
	return false
}

// link renders a cross-reference from one object page to id. Pages all
// live one directory deep, hence the "../" prefix.
func (r *Renderer) link(id model.ObjectID) string {
	o := r.pool.Get(id)
	if o == nil {
		return ""
	}
	name := html.EscapeString(o.Common().Name)
	if name == "" {
		name = model.Placeholder
	}
	if r.Excluded(o) {
		return name
	}
	if _, broken := r.index.Violation(id); broken {
		return name
	}
	return fmt.Sprintf(`<a href="../%s">%s</a>`, PagePath(id), name)
}

// Render builds the page of o.
func (r *Renderer) Render(o model.Object) Page {
	secs := r.Sections(o)
	var nav, content strings.Builder
	nav.WriteString("<ul class=\"nav\">\n")
	for _, s := range secs {
		heading := html.EscapeString(r.lookup.Lookup(s.Key))
		fmt.Fprintf(&nav, "<li><a href=\"#%s\">%s</a></li>\n", s.Anchor(), heading)
		fmt.Fprintf(&content, "<h2 id=\"%s\">%s</h2>\n<div class=\"section\">%s</div>\n", s.Anchor(), heading, s.Body)
	}
	nav.WriteString("</ul>\n")
	b := o.Common()
	return Page{
		Path:    PagePath(b.ID),
		Title:   b.Name,
		Nav:     nav.String(),
		Content: content.String(),
	}
}

// Run renders every object of the pool, then the category index pages and
// the root index, and writes them to sink in pool order. Objects are
// rendered concurrently; a failure in one object is reported and the
// object is skipped. Only sink errors and cancellation abort the run.
func (r *Renderer) Run(ctx context.Context, sink Sink) (Stats, error) {
	var stats Stats
	var objs []model.Object
	r.pool.Each(func(o model.Object) bool {
		if r.Excluded(o) {
			stats.Excluded++
			return true
		}
		if _, broken := r.index.Violation(o.Common().ID); broken {
			stats.Skipped++
			return true
		}
		objs = append(objs, o)
		return true
	})

	pages := make([]*Page, len(objs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(r.jobs, len(objs))))
	for i, o := range objs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			pages[i] = r.renderIsolated(o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	listed := make(map[model.Kind][]model.Object)
	for i, p := range pages {
		if p == nil {
			stats.Failed++
			continue
		}
		if err := sink.WritePage(p.Path, r.document(p.Title, p.Nav, p.Content, "../")); err != nil {
			return stats, err
		}
		objs[i].Common().State = model.StateRendered
		listed[objs[i].Kind()] = append(listed[objs[i].Kind()], objs[i])
		stats.Pages++
	}

	for _, k := range model.Kinds() {
		if err := sink.WritePage(IndexPath(k), r.categoryPage(k, listed[k])); err != nil {
			return stats, err
		}
	}
	if err := sink.WritePage("index.html", r.rootPage(listed)); err != nil {
		return stats, err
	}
	return stats, nil
}

func (r *Renderer) renderIsolated(o model.Object) (page *Page) {
	defer func() {
		if rec := recover(); rec != nil {
			r.diags.Report(diag.RenderFailure, o, "render aborted: %v", rec)
			page = nil
		}
	}()
	p := r.Render(o)
	return &p
}

func (r *Renderer) categoryPage(k model.Kind, objs []model.Object) []byte {
	items := make([]string, 0, len(objs))
	for _, o := range objs {
		b := o.Common()
		items = append(items, fmt.Sprintf(`<a href="%d.html">%s</a>`, b.ID.Index, html.EscapeString(b.Name)))
	}
	body := bulletList(items)
	if body == "" {
		body = model.Placeholder
	}
	title := r.lookup.Lookup(k.String())
	return r.document(title, "", body+"\n", "../")
}

func (r *Renderer) rootPage(listed map[model.Kind][]model.Object) []byte {
	items := make([]string, 0, model.KindCount)
	for _, k := range model.Kinds() {
		items = append(items, fmt.Sprintf(`<a href="%s">%s</a> (%d)`,
			IndexPath(k), html.EscapeString(r.lookup.Lookup(k.String())), len(listed[k])))
	}
	return r.document(r.title, "", bulletList(items)+"\n", "")
}

func (r *Renderer) document(title, nav, content, root string) []byte {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<header><a href=\"%sindex.html\">%s</a></header>\n", root, html.EscapeString(r.title))
	if nav != "" {
		fmt.Fprintf(&b, "<nav>\n%s</nav>\n", nav)
	}
	fmt.Fprintf(&b, "<main>\n<h1>%s</h1>\n%s</main>\n", html.EscapeString(title), content)
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
