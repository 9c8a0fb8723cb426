package pool

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/jward/jassdoc/internal/model"
)

const snapshotVersion = 1

// snapshot is the on-disk form of a pool. References are (kind, index)
// pairs, so a reloaded pool needs no fix-up as long as every category is
// re-added in its original order.
type snapshot struct {
	Version            int
	Keywords           []*model.Keyword
	TextMacros         []*model.TextMacro
	TextMacroInstances []*model.TextMacroInstance
	Types              []*model.Type
	Globals            []*model.Global
	Members            []*model.Member
	Functions          []*model.Function
	Methods            []*model.Method
	Parameters         []*model.Parameter
	Locals             []*model.Local
	Implementations    []*model.Implementation
	Hooks              []*model.Hook
	Interfaces         []*model.Interface
	Structs            []*model.Struct
	Modules            []*model.Module
	ExternalCalls      []*model.ExternalCall
}

// Save writes the pool to w in msgpack form.
func (p *Pool) Save(w io.Writer) error {
	s := snapshot{
		Version:            snapshotVersion,
		Keywords:           All[*model.Keyword](p, model.KindKeyword),
		TextMacros:         All[*model.TextMacro](p, model.KindTextMacro),
		TextMacroInstances: All[*model.TextMacroInstance](p, model.KindTextMacroInstance),
		Types:              All[*model.Type](p, model.KindType),
		Globals:            All[*model.Global](p, model.KindGlobal),
		Members:            All[*model.Member](p, model.KindMember),
		Functions:          All[*model.Function](p, model.KindFunction),
		Methods:            All[*model.Method](p, model.KindMethod),
		Parameters:         All[*model.Parameter](p, model.KindParameter),
		Locals:             All[*model.Local](p, model.KindLocal),
		Implementations:    All[*model.Implementation](p, model.KindImplementation),
		Hooks:              All[*model.Hook](p, model.KindHook),
		Interfaces:         All[*model.Interface](p, model.KindInterface),
		Structs:            All[*model.Struct](p, model.KindStruct),
		Modules:            All[*model.Module](p, model.KindModule),
		ExternalCalls:      All[*model.ExternalCall](p, model.KindExternalCall),
	}
	if err := msgpack.NewEncoder(w).Encode(&s); err != nil {
		return fmt.Errorf("pool: encode snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save into a new pool. Object states are
// kept as saved.
func Load(r io.Reader, opts ...Option) (*Pool, error) {
	var s snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("pool: decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("pool: snapshot version %d, want %d", s.Version, snapshotVersion)
	}
	p := New(opts...)
	steps := []func() error{
		func() error { return restore(p, s.Keywords) },
		func() error { return restore(p, s.TextMacros) },
		func() error { return restore(p, s.TextMacroInstances) },
		func() error { return restore(p, s.Types) },
		func() error { return restore(p, s.Globals) },
		func() error { return restore(p, s.Members) },
		func() error { return restore(p, s.Functions) },
		func() error { return restore(p, s.Methods) },
		func() error { return restore(p, s.Parameters) },
		func() error { return restore(p, s.Locals) },
		func() error { return restore(p, s.Implementations) },
		func() error { return restore(p, s.Hooks) },
		func() error { return restore(p, s.Interfaces) },
		func() error { return restore(p, s.Structs) },
		func() error { return restore(p, s.Modules) },
		func() error { return restore(p, s.ExternalCalls) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func restore[E any, T interface {
	*E
	model.Object
}](p *Pool, items []T) error {
	for i, o := range items {
		if o == nil {
			return fmt.Errorf("pool: snapshot %s entry %d is empty", T(new(E)).Kind().Singular(), i)
		}
		saved := o.Common().ID
		id, err := p.add(o)
		if err != nil {
			return err
		}
		if saved.IsValid() && saved != id {
			return fmt.Errorf("pool: snapshot id %s restored as %s", saved, id)
		}
	}
	return nil
}
