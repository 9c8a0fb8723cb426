package render

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/index"
	"github.com/jward/jassdoc/internal/locale"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
	"github.com/jward/jassdoc/internal/resolve"
)

type fixture struct {
	pool    *pool.Pool
	bag     *diag.Bag
	integer *model.Type
	unit    *model.Struct
	hp      *model.Member
	create  *model.Method
	param   *model.Parameter
	x       *model.Global
}

func loc(file string, line int) model.Location { return model.Location{File: file, Line: line} }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{pool: pool.New(), bag: diag.NewBag(nil)}
	add := func(o model.Object) model.ObjectID {
		id, err := f.pool.Add(o)
		require.NoError(t, err)
		return id
	}
	f.integer = &model.Type{Base: model.NewBase("integer", loc("common.j", 1), nil)}
	add(f.integer)
	f.unit = &model.Struct{Interface: model.Interface{Base: model.NewBase("Unit", loc("unit.j", 3),
		model.ParseDocComment("/**\n * A unit <wrapper>.\n * @author Vexorian\n */"))}}
	add(f.unit)
	f.hp = &model.Member{Global: model.Global{Base: model.NewBase("hp", loc("unit.j", 4), nil), Type: model.Raw("integer")}, Container: f.unit.ID}
	add(f.hp)
	f.create = &model.Method{Function: model.Function{Base: model.NewBase("create", loc("unit.j", 6), nil), ReturnType: model.Raw("thistype")}, Container: f.unit.ID, IsStatic: true}
	add(f.create)
	f.param = &model.Parameter{Base: model.NewBase("life", loc("unit.j", 6), nil), Owner: f.create.ID, Type: model.Raw("integer")}
	add(f.param)
	f.x = &model.Global{Base: model.NewBase("x", loc("vendor/lib.j", 2), nil), Type: model.Raw("Missing")}
	add(f.x)
	resolve.New(f.pool, f.bag).All()
	return f
}

func (f *fixture) renderer(opts ...Option) *Renderer {
	ix := index.Build(f.pool, f.bag)
	return New(f.pool, ix, append([]Option{WithDiagnostics(f.bag)}, opts...)...)
}

func sectionMap(secs []Section) map[string]string {
	out := make(map[string]string, len(secs))
	for _, s := range secs {
		out[s.Key] = s.Body
	}
	return out
}

func keys(secs []Section) []string {
	out := make([]string, len(secs))
	for i, s := range secs {
		out[i] = s.Key
	}
	return out
}

func TestSections_Order(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := f.renderer()

	assert.Equal(t, []string{
		"Description", "Author", "Todo", "Source File",
		"Extends", "Size", "Private",
		"Members", "Methods", "Implementations", "Ancestors", "Child Structs",
	}, keys(r.Sections(f.unit)))

	assert.Equal(t, []string{
		"Description", "Author", "Todo", "Source File",
		"Container", "Return Type", "Native", "Constant", "Private", "Public",
		"Default Return", "Static", "Stub", "Operator",
		"Parameters", "Locals",
	}, keys(r.Sections(f.create)))
}

func TestSections_Values(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := f.renderer()

	unit := sectionMap(r.Sections(f.unit))
	assert.Equal(t, "A unit &lt;wrapper&gt;.", unit["Description"])
	assert.Equal(t, "Vexorian", unit["Author"])
	assert.Equal(t, "-", unit["Todo"])
	assert.Equal(t, "unit.j:3", unit["Source File"])
	assert.Equal(t, "-", unit["Extends"], "empty expression renders one dash")
	assert.Equal(t, "No", unit["Private"])
	assert.Equal(t, `<ul><li><a href="../members/1.html">hp</a></li></ul>`, unit["Members"])
	assert.Equal(t, `<ul><li><a href="../methods/1.html">create</a></li></ul>`, unit["Methods"])
	assert.Equal(t, "-", unit["Implementations"])

	create := sectionMap(r.Sections(f.create))
	assert.Equal(t, `<a href="../structs/1.html">Unit</a>`, create["Return Type"])
	assert.Equal(t, "Yes", create["Static"])
	assert.Equal(t, `<ul><li><a href="../parameters/1.html">life</a></li></ul>`, create["Parameters"])
	assert.Equal(t, "-", create["Locals"])

	x := sectionMap(r.Sections(f.x))
	assert.Equal(t, "Missing", x["Type"], "unresolved text renders as plain text")
	assert.Equal(t, "-", x["Value"])
}

func TestSections_PlaceholderNeverDoubled(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := f.renderer()
	for _, s := range r.Sections(f.x) {
		assert.NotContains(t, s.Body, "--", s.Key)
		assert.NotEmpty(t, s.Body, s.Key)
	}
}

func TestSections_Localized(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	de, err := locale.New("de")
	require.NoError(t, err)
	r := f.renderer(WithLocale(de))

	unit := sectionMap(r.Sections(f.unit))
	assert.Equal(t, "Nein", unit["Private"])

	page := r.Render(f.unit)
	assert.Contains(t, page.Nav, `<a href="#description">Beschreibung</a>`)
	assert.Contains(t, page.Content, `<h2 id="description">Beschreibung</h2>`)
}

func TestRender_NavMatchesContent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := f.renderer()
	page := r.Render(f.create)

	assert.Equal(t, "methods/1.html", page.Path)
	secs := r.Sections(f.create)
	assert.Equal(t, len(secs), strings.Count(page.Nav, "<li>"))
	assert.Equal(t, len(secs), strings.Count(page.Content, "<h2 "))
	navPos := strings.Index(page.Nav, "#return-type")
	staticPos := strings.Index(page.Nav, "#static")
	assert.Less(t, navPos, staticPos)
}

func TestRun_WritesPages(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := f.renderer(WithJobs(2), WithTitle("Demo"))
	sink := NewMemorySink()

	stats, err := r.Run(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Pages)
	assert.Zero(t, stats.Failed)

	paths := sink.Paths()
	assert.Equal(t, []string{
		"types/1.html", "globals/1.html", "members/1.html", "methods/1.html",
		"parameters/1.html", "structs/1.html",
	}, paths[:6], "pages are written in pool order")

	idx, ok := sink.Page("structs/index.html")
	require.True(t, ok)
	assert.Contains(t, idx, `<a href="1.html">Unit</a>`)

	empty, ok := sink.Page("hooks/index.html")
	require.True(t, ok)
	assert.Contains(t, empty, "<h1>Hooks</h1>\n-\n")

	sorted := sink.SortedPaths()
	require.Len(t, sorted, len(paths))
	assert.Contains(t, sorted, "index.html")
	assert.True(t, sort.StringsAreSorted(sorted))

	root, ok := sink.Page("index.html")
	require.True(t, ok)
	assert.Contains(t, root, "<title>Demo</title>")
	assert.Contains(t, root, `<a href="structs/index.html">Structs</a> (1)`)

	assert.Equal(t, model.StateRendered, f.unit.State)
}

func TestRun_Exclude(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	patterns, err := CompileExclude([]string{"vendor/**"})
	require.NoError(t, err)
	r := f.renderer(WithExclude(patterns))
	sink := NewMemorySink()

	stats, err := r.Run(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Excluded)
	_, ok := sink.Page("globals/1.html")
	assert.False(t, ok)
	assert.Equal(t, model.StateResolved, f.x.State)
}

func TestRun_SkipsStructuralViolation(t *testing.T) {
	t.Parallel()
	p := pool.New()
	bag := diag.NewBag(nil)
	orphan := &model.Member{Global: model.Global{Base: model.NewBase("lost", loc("a.j", 1), nil)},
		Container: model.ObjectID{Kind: model.KindStruct, Index: 3}}
	_, err := p.Add(orphan)
	require.NoError(t, err)
	g := &model.Global{Base: model.NewBase("ok", loc("a.j", 2), nil)}
	_, err = p.Add(g)
	require.NoError(t, err)
	resolve.New(p, bag).All()

	r := New(p, index.Build(p, bag), WithDiagnostics(bag))
	sink := NewMemorySink()
	stats, err := r.Run(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Pages)
	assert.Equal(t, 1, bag.Count(diag.StructuralViolation))
	_, ok := sink.Page("members/1.html")
	assert.False(t, ok)
}

func TestRun_IsolatesPanics(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	r := f.renderer(WithLocator(LocatorFunc(func(o model.Object) string {
		if o.Common().Name == "hp" {
			panic("locator exploded")
		}
		return FileLine{}.Anchor(o)
	})))
	sink := NewMemorySink()

	stats, err := r.Run(context.Background(), sink)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 5, stats.Pages)
	assert.Equal(t, 1, f.bag.Count(diag.RenderFailure))
	assert.True(t, f.bag.HasErrors())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.renderer().Run(ctx, NewMemorySink())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirSink(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	sink := DirSink{Root: root}
	require.NoError(t, sink.WritePage("structs/1.html", []byte("<p>x</p>")))

	data, err := os.ReadFile(filepath.Join(root, "structs", "1.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(data))
}

func TestFileLine(t *testing.T) {
	t.Parallel()
	g := &model.Global{Base: model.NewBase("g", model.Location{}, nil)}
	assert.Equal(t, "", FileLine{}.Anchor(g))
	g.Loc = model.Location{File: "a.j"}
	assert.Equal(t, "a.j", FileLine{}.Anchor(g))
	g.Loc.Line = 7
	assert.Equal(t, "a.j:7", FileLine{}.Anchor(g))
}
