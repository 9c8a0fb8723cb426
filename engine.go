package jassdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/index"
	"github.com/jward/jassdoc/internal/pool"
	"github.com/jward/jassdoc/internal/render"
	"github.com/jward/jassdoc/internal/resolve"
	"github.com/jward/jassdoc/internal/runtime"
	"github.com/jward/jassdoc/internal/store"
	"github.com/jward/jassdoc/scripts"
)

var (
	// ErrResolved is returned when objects are loaded into, or resolution is
	// requested of, an Engine that has already been resolved.
	ErrResolved = errors.New("jassdoc: pool already resolved")
	// ErrNotResolved is returned by output operations called before Resolve.
	ErrNotResolved = errors.New("jassdoc: pool not resolved")
)

// Engine orchestrates the jassdoc pipeline: declaration loading via Risor
// scripts, resolution, and rendering or export of the resolved pool.
type Engine struct {
	pool       *pool.Pool
	diags      *diag.Bag
	runtime    *runtime.Runtime
	logger     *slog.Logger
	scriptsDir string
	scriptsFS  fs.FS

	resolver *resolve.Resolver
	index    *index.Index
	batch    *store.Batch
}

// Option configures an Engine.
type Option func(*Engine)

// WithScriptsFS configures the Engine to load declaration scripts from the
// given filesystem instead of from the scriptsDir path on disk.
func WithScriptsFS(fsys fs.FS) Option {
	return func(e *Engine) {
		e.scriptsFS = fsys
	}
}

// WithLogger sets the logger diagnostics and script log calls go to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine with an empty pool.
// Script loading priority:
//  1. If WithScriptsFS is set, use the provided fs.FS
//  2. Otherwise, use scriptsDir on disk
func New(scriptsDir string, opts ...Option) (*Engine, error) {
	e := newEngine(scriptsDir, opts)
	e.pool = pool.New(pool.WithDiagnostics(e.diags))
	e.runtime = e.newRuntime()
	return e, nil
}

// FromSnapshot creates an Engine over a pool previously written by
// SaveSnapshot. Keys between objects survive the round trip unchanged.
func FromSnapshot(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine("", opts)
	p, err := pool.Load(r, pool.WithDiagnostics(e.diags))
	if err != nil {
		return nil, fmt.Errorf("jassdoc: load snapshot: %w", err)
	}
	e.pool = p
	e.runtime = e.newRuntime()
	return e, nil
}

func newEngine(scriptsDir string, opts []Option) *Engine {
	e := &Engine{scriptsDir: scriptsDir}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	e.diags = diag.NewBag(e.logger)
	return e
}

func (e *Engine) newRuntime() *runtime.Runtime {
	rtOpts := []runtime.RuntimeOption{runtime.WithLogger(e.logger)}
	if e.scriptsFS != nil {
		rtOpts = append(rtOpts, runtime.WithRuntimeFS(e.scriptsFS))
	}
	return runtime.NewRuntime(e.pool, e.scriptsDir, rtOpts...)
}

// Pool returns the underlying object pool.
func (e *Engine) Pool() *Pool {
	return e.pool
}

// Resolved reports whether Resolve has run.
func (e *Engine) Resolved() bool {
	return e.index != nil
}

// LoadPrelude declares the JASS primitive types from the embedded prelude
// script. It is normally the first script loaded.
func (e *Engine) LoadPrelude(ctx context.Context) error {
	if e.Resolved() {
		return ErrResolved
	}
	rt := runtime.NewRuntime(e.pool, "", runtime.WithRuntimeFS(scripts.FS), runtime.WithLogger(e.logger))
	if err := rt.RunScript(ctx, scripts.Prelude, nil); err != nil {
		return fmt.Errorf("jassdoc: prelude: %w", err)
	}
	return nil
}

// LoadScript runs the declaration script at path. extraGlobals are made
// available to the script alongside the declare_* functions.
func (e *Engine) LoadScript(ctx context.Context, path string, extraGlobals map[string]any) error {
	if e.Resolved() {
		return ErrResolved
	}
	if err := e.runtime.RunScript(ctx, path, extraGlobals); err != nil {
		return fmt.Errorf("jassdoc: %w", err)
	}
	return nil
}

// LoadSource runs declaration script source directly.
func (e *Engine) LoadSource(ctx context.Context, source string, extraGlobals map[string]any) error {
	if e.Resolved() {
		return ErrResolved
	}
	if err := e.runtime.RunSource(ctx, source, extraGlobals); err != nil {
		return fmt.Errorf("jassdoc: %w", err)
	}
	return nil
}

// SaveSnapshot writes the pool in its current state to w.
func (e *Engine) SaveSnapshot(w io.Writer) error {
	if err := e.pool.Save(w); err != nil {
		return fmt.Errorf("jassdoc: save snapshot: %w", err)
	}
	return nil
}

// Resolve seals the pool, resolves every object once in pool order and
// builds the container and inheritance index. It may be called only once.
func (e *Engine) Resolve() (ResolveStats, error) {
	if e.Resolved() {
		return ResolveStats{}, ErrResolved
	}
	e.resolver = resolve.New(e.pool, e.diags)
	stats := e.resolver.All()
	e.index = index.Build(e.pool, e.diags)
	e.logger.Debug("resolved pool",
		"objects", stats.Objects,
		"bound", stats.Bound,
		"literal", stats.Literal,
		"unresolved", stats.Unresolved)
	return stats, nil
}

// Render writes one page per object plus the category and root index pages
// to sink. Render failures of single objects are reported as diagnostics.
func (e *Engine) Render(ctx context.Context, sink Sink, opts ...RenderOption) (RenderStats, error) {
	if !e.Resolved() {
		return RenderStats{}, ErrNotResolved
	}
	opts = append([]render.Option{render.WithDiagnostics(e.diags)}, opts...)
	r := render.New(e.pool, e.index, opts...)
	stats, err := r.Run(ctx, sink)
	if err != nil {
		return stats, fmt.Errorf("jassdoc: render: %w", err)
	}
	return stats, nil
}

// Export writes the resolved pool to the SQLite database at dbPath,
// replacing any rows of a previous export.
func (e *Engine) Export(dbPath, title string) (Metadata, error) {
	b, err := e.rows()
	if err != nil {
		return Metadata{}, err
	}
	s, err := store.NewStore(dbPath)
	if err != nil {
		return Metadata{}, fmt.Errorf("jassdoc: open store: %w", err)
	}
	defer s.Close()
	if err := s.Migrate(); err != nil {
		return Metadata{}, fmt.Errorf("jassdoc: migrate: %w", err)
	}
	meta := store.NewMetadata(title, b)
	if err := s.WriteBatch(b, meta); err != nil {
		return Metadata{}, fmt.Errorf("jassdoc: export: %w", err)
	}
	return meta, nil
}

// WriteSQL writes the resolved pool as an SQL script to w. With schema set
// the script starts with the CREATE TABLE statements.
func (e *Engine) WriteSQL(w io.Writer, schema bool, title string) (Metadata, error) {
	b, err := e.rows()
	if err != nil {
		return Metadata{}, err
	}
	meta := store.NewMetadata(title, b)
	if err := store.NewScriptWriter(w, schema).WriteBatch(b, meta); err != nil {
		return Metadata{}, fmt.Errorf("jassdoc: write sql: %w", err)
	}
	return meta, nil
}

// rows collects the export rows once so overflow is reported once.
func (e *Engine) rows() (*store.Batch, error) {
	if !e.Resolved() {
		return nil, ErrNotResolved
	}
	if e.batch == nil {
		e.batch = store.Collect(e.pool, e.diags)
	}
	return e.batch, nil
}

// Diagnostics returns everything reported so far, ordered by object.
func (e *Engine) Diagnostics() []Diagnostic {
	return e.diags.Sorted()
}

// Query returns a read-only view over the pool.
func (e *Engine) Query() *Query {
	r := e.resolver
	if r == nil {
		r = resolve.New(e.pool, e.diags)
	}
	return &Query{pool: e.pool, resolver: r, index: e.index}
}
