package jassdoc

import (
	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
	"github.com/jward/jassdoc/internal/render"
	"github.com/jward/jassdoc/internal/resolve"
	"github.com/jward/jassdoc/internal/store"
)

// Public aliases for the internal types used in the Engine and Query API.

type Object = model.Object
type ObjectID = model.ObjectID
type Kind = model.Kind
type FieldKind = resolve.FieldKind
type Diagnostic = diag.Diagnostic
type Pool = pool.Pool
type ResolveStats = resolve.Stats
type RenderStats = render.Stats
type Result = resolve.Result
type Metadata = store.Metadata
type Sink = render.Sink
type DirSink = render.DirSink
type MemorySink = render.MemorySink
type RenderOption = render.Option

// NewMemorySink returns a sink keeping pages in memory.
func NewMemorySink() *MemorySink { return render.NewMemorySink() }
