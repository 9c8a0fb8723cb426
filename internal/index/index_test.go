package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
	"github.com/jward/jassdoc/internal/resolve"
)

func newBase(name string) model.Base {
	return model.NewBase(name, model.Location{File: "units.j", Line: 10}, nil)
}

func add(t *testing.T, p *pool.Pool, o model.Object) model.ObjectID {
	t.Helper()
	id, err := p.Add(o)
	require.NoError(t, err)
	return id
}

func TestBuild_ContainerChildren(t *testing.T) {
	t.Parallel()
	p := pool.New()
	unit := add(t, p, &model.Struct{Interface: model.Interface{Base: newBase("Unit")}})
	other := add(t, p, &model.Struct{Interface: model.Interface{Base: newBase("Item")}})
	hp := add(t, p, &model.Member{Global: model.Global{Base: newBase("hp")}, Container: unit})
	add(t, p, &model.Member{Global: model.Global{Base: newBase("charges")}, Container: other})
	mana := add(t, p, &model.Member{Global: model.Global{Base: newBase("mana")}, Container: unit})
	create := add(t, p, &model.Method{Function: model.Function{Base: newBase("create")}, Container: unit})
	impl := add(t, p, &model.Implementation{Base: newBase("Alloc"), Container: unit, Module: model.Raw("Alloc")})

	ix := Build(p, nil)
	assert.Equal(t, []model.ObjectID{hp, mana}, ix.Members(unit))
	assert.Equal(t, []model.ObjectID{create}, ix.Methods(unit))
	assert.Equal(t, []model.ObjectID{impl}, ix.Implementations(unit))
	assert.Len(t, ix.Members(other), 1)
	assert.Empty(t, ix.Methods(other))
}

func TestBuild_ParametersByOrdinal(t *testing.T) {
	t.Parallel()
	p := pool.New()
	fn := add(t, p, &model.Function{Base: newBase("Damage")})
	second := add(t, p, &model.Parameter{Base: newBase("amount"), Owner: fn, Ordinal: 1})
	first := add(t, p, &model.Parameter{Base: newBase("target"), Owner: fn, Ordinal: 0})
	local := add(t, p, &model.Local{Base: newBase("i"), Owner: fn})

	ix := Build(p, nil)
	assert.Equal(t, []model.ObjectID{first, second}, ix.Parameters(fn))
	assert.Equal(t, []model.ObjectID{local}, ix.Locals(fn))
}

func TestBuild_StructuralViolation(t *testing.T) {
	t.Parallel()
	bag := diag.NewBag(nil)
	p := pool.New()
	fn := add(t, p, &model.Function{Base: newBase("f")})
	orphan := add(t, p, &model.Member{Global: model.Global{Base: newBase("x")}, Container: model.ObjectID{Kind: model.KindStruct, Index: 9}})
	wrongKind := add(t, p, &model.Method{Function: model.Function{Base: newBase("m")}, Container: fn})
	badOwner := add(t, p, &model.Parameter{Base: newBase("p"), Owner: model.ObjectID{Kind: model.KindGlobal, Index: 1}})

	ix := Build(p, bag)
	assert.Equal(t, 3, bag.Count(diag.StructuralViolation))
	for _, id := range []model.ObjectID{orphan, wrongKind, badOwner} {
		_, broken := ix.Violation(id)
		assert.True(t, broken, id.String())
	}
	_, broken := ix.Violation(fn)
	assert.False(t, broken)
	assert.Empty(t, ix.Methods(fn))
}

func TestBuild_Inheritance(t *testing.T) {
	t.Parallel()
	p := pool.New()
	widget := &model.Struct{Interface: model.Interface{Base: newBase("Widget")}}
	unit := &model.Struct{Interface: model.Interface{Base: newBase("Unit")}, Extends: model.Raw("Widget")}
	hero := &model.Struct{Interface: model.Interface{Base: newBase("Hero")}, Extends: model.Raw("Unit")}
	item := &model.Struct{Interface: model.Interface{Base: newBase("Item")}, Extends: model.Raw("Widget")}
	for _, s := range []*model.Struct{widget, unit, hero, item} {
		add(t, p, s)
	}
	resolve.New(p, nil).All()

	ix := Build(p, nil)
	assert.Equal(t, []model.ObjectID{unit.ID, widget.ID}, ix.Ancestors(hero.ID))
	assert.Empty(t, ix.Ancestors(widget.ID))
	assert.Equal(t, []model.ObjectID{unit.ID, item.ID}, ix.ChildStructs(widget.ID))
	assert.Equal(t, []model.ObjectID{hero.ID}, ix.ChildStructs(unit.ID))
	assert.Empty(t, ix.ChildStructs(hero.ID))
}

func TestBuild_InheritanceCycle(t *testing.T) {
	t.Parallel()
	bag := diag.NewBag(nil)
	p := pool.New()
	a := &model.Struct{Interface: model.Interface{Base: newBase("A")}, Extends: model.Raw("B")}
	b := &model.Struct{Interface: model.Interface{Base: newBase("B")}, Extends: model.Raw("A")}
	add(t, p, a)
	add(t, p, b)
	resolve.New(p, nil).All()

	ix := Build(p, bag)
	assert.Equal(t, 1, bag.Count(diag.StructuralViolation))
	assert.Equal(t, []model.ObjectID{b.ID}, ix.Ancestors(a.ID))
	assert.Empty(t, ix.Ancestors(b.ID))
}
