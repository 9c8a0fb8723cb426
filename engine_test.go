package jassdoc

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
	"github.com/jward/jassdoc/internal/render"
	"github.com/jward/jassdoc/internal/resolve"
	"github.com/jward/jassdoc/internal/store"
)

// newLoadedEngine returns an engine holding the prelude and testdata/unit.risor.
func newLoadedEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New("testdata")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, e.LoadPrelude(ctx))
	require.NoError(t, e.LoadScript(ctx, "unit.risor", nil))
	return e
}

func TestLoadPrelude_DeclaresPrimitives(t *testing.T) {
	t.Parallel()
	e, err := New("")
	require.NoError(t, err)
	require.NoError(t, e.LoadPrelude(context.Background()))

	q := e.Query()
	var names []string
	for _, o := range q.Objects(model.KindType) {
		names = append(names, o.Common().Name)
		assert.Equal(t, "prelude", o.Common().Loc.File)
	}
	assert.Equal(t, []string{"integer", "real", "boolean", "string", "handle", "code", "nothing"}, names)
}

func TestResolve_BindsReferences(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)

	stats, err := e.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 15, stats.Objects)
	assert.Equal(t, 1, stats.Unresolved)
	assert.True(t, e.Resolved())

	q := e.Query()
	unit, ok := q.Find(model.KindStruct, "Unit")
	require.True(t, ok)
	widget, ok := q.Find(model.KindStruct, "Widget")
	require.True(t, ok)
	assert.Equal(t, widget.Common().ID, unit.(*model.Struct).Extends.Ref)

	create, ok := q.Find(model.KindMethod, "create")
	require.True(t, ok)
	assert.Equal(t, unit.Common().ID, create.(*model.Method).ReturnType.Ref, "thistype binds the container")

	locals := q.Children(create.Common().ID, model.KindLocal)
	require.Len(t, locals, 1)
	assert.Equal(t, unit.Common().ID, locals[0].(*model.Local).Type.Ref)

	spawn, ok := q.Find(model.KindFunction, "Spawn")
	require.True(t, ok)
	ret := spawn.(*model.Function).ReturnType
	assert.False(t, ret.IsResolved())
	assert.Equal(t, "Missing", ret.Text)

	ancestors := q.Ancestors(unit.Common().ID)
	require.Len(t, ancestors, 1)
	assert.Equal(t, "Widget", ancestors[0].Common().Name)

	var unresolved []Diagnostic
	for _, d := range e.Diagnostics() {
		if d.Code == diag.UnresolvedReference {
			unresolved = append(unresolved, d)
		}
	}
	require.Len(t, unresolved, 1)
	assert.Equal(t, "Spawn", unresolved[0].Name)
	assert.Contains(t, unresolved[0].Message, "Types, Interfaces, Structs")
}

func TestResolve_OnlyOnce(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)

	_, err := e.Resolve()
	require.NoError(t, err)
	_, err = e.Resolve()
	assert.ErrorIs(t, err, ErrResolved)

	err = e.LoadSource(context.Background(), `declare_type({"name": "late"})`, nil)
	assert.ErrorIs(t, err, ErrResolved)
	assert.ErrorIs(t, e.LoadPrelude(context.Background()), ErrResolved)
}

func TestOutputs_RequireResolve(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)

	_, err := e.Render(context.Background(), render.NewMemorySink())
	assert.ErrorIs(t, err, ErrNotResolved)
	_, err = e.WriteSQL(&bytes.Buffer{}, false, "x")
	assert.ErrorIs(t, err, ErrNotResolved)
	_, err = e.Export(filepath.Join(t.TempDir(), "out.db"), "x")
	assert.ErrorIs(t, err, ErrNotResolved)
}

func TestRender_WritesPages(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)
	_, err := e.Resolve()
	require.NoError(t, err)

	sink := render.NewMemorySink()
	stats, err := e.Render(context.Background(), sink, render.WithTitle("Unit Library"))
	require.NoError(t, err)
	assert.Equal(t, 15, stats.Pages)
	assert.Zero(t, stats.Failed)
	assert.Len(t, sink.Paths(), 15+model.KindCount+1)

	page, ok := sink.Page("structs/2.html")
	require.True(t, ok)
	assert.Contains(t, page, "<h1>Unit</h1>")
	assert.Contains(t, page, `<a href="../structs/1.html">Widget</a>`)

	root, ok := sink.Page("index.html")
	require.True(t, ok)
	assert.Contains(t, root, "<title>Unit Library</title>")

	for _, o := range e.Query().Objects(model.KindStruct) {
		assert.Equal(t, model.StateRendered, o.Common().State)
	}
}

func TestWriteSQL(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)
	_, err := e.Resolve()
	require.NoError(t, err)

	var buf bytes.Buffer
	meta, err := e.WriteSQL(&buf, true, "Unit Library")
	require.NoError(t, err)
	assert.Equal(t, "Unit Library", meta.Title)
	assert.NotEmpty(t, meta.RunID)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "CREATE TABLE"))
	assert.Contains(t, out, "INSERT INTO Structs")
	assert.Contains(t, out, "'Unit'")
}

func TestExport_SQLite(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)
	_, err := e.Resolve()
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "docs.db")
	meta, err := e.Export(dbPath, "Unit Library")
	require.NoError(t, err)

	s, err := store.NewStore(dbPath)
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Count(model.KindType)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	n, err = s.Count(model.KindStruct)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	runID, err := s.MetadataValue("RunId")
	require.NoError(t, err)
	assert.Equal(t, meta.RunID, runID)

	// A second export replaces the rows of the first.
	_, err = e.Export(dbPath, "Unit Library")
	require.NoError(t, err)
	n, err = s.Count(model.KindStruct)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)

	var buf bytes.Buffer
	require.NoError(t, e.SaveSnapshot(&buf))

	restored, err := FromSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, e.Pool().Total(), restored.Pool().Total())

	_, err = restored.Resolve()
	require.NoError(t, err)
	q := restored.Query()
	hp, ok := q.Find(model.KindMember, "hp")
	require.True(t, ok)
	unit, ok := q.Find(model.KindStruct, "Unit")
	require.True(t, ok)
	assert.Equal(t, unit.Common().ID, hp.(*model.Member).Container)
	assert.True(t, hp.(*model.Member).Type.IsResolved())
}

func TestFromSnapshot_Invalid(t *testing.T) {
	t.Parallel()
	_, err := FromSnapshot(strings.NewReader("not msgpack"))
	assert.Error(t, err)
}

func TestQuery_LookupAndEvaluate(t *testing.T) {
	t.Parallel()
	e := newLoadedEngine(t)
	q := e.Query()

	o, ok := q.Lookup(resolve.FieldType, "Unit")
	require.True(t, ok)
	assert.Equal(t, model.KindStruct, o.Kind())

	_, ok = q.Lookup(resolve.FieldValue, "Unit")
	assert.False(t, ok)

	create, ok := q.Find(model.KindMethod, "create")
	require.True(t, ok)
	res := q.Evaluate(create.Common().ID, resolve.FieldType, "thistype")
	assert.Equal(t, resolve.OutcomeBound, res.Outcome)
	assert.Equal(t, "Unit", res.Expanded)

	res = q.Evaluate(model.NoObject, resolve.FieldValue, "42")
	assert.Equal(t, resolve.OutcomeLiteral, res.Outcome)

	assert.Nil(t, q.Children(create.Common().ID, model.KindLocal), "children need a resolved pool")
	assert.Equal(t, model.StateDeclared, create.Common().State)
}

func TestNew_WithScriptsFS(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"decl/types.risor": &fstest.MapFile{Data: []byte(`declare_type({"name": "unit", "extends": "handle"})`)},
	}
	e, err := New("ignored", WithScriptsFS(fsys))
	require.NoError(t, err)
	require.NoError(t, e.LoadPrelude(context.Background()))
	require.NoError(t, e.LoadScript(context.Background(), "decl/types.risor", nil))

	_, err = e.Resolve()
	require.NoError(t, err)
	unit, ok := pool.Get[*model.Type](e.Pool(), model.ObjectID{Kind: model.KindType, Index: 8})
	require.True(t, ok)
	assert.Equal(t, "unit", unit.Name)
	assert.True(t, unit.Extends.IsResolved())
}

func TestLoadScript_Missing(t *testing.T) {
	t.Parallel()
	e, err := New(t.TempDir())
	require.NoError(t, err)
	err = e.LoadScript(context.Background(), "missing.risor", nil)
	assert.Error(t, err)
}
