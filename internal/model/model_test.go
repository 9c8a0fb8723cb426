package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_PoolOrder(t *testing.T) {
	t.Parallel()
	kinds := Kinds()
	require.Len(t, kinds, KindCount)
	assert.Equal(t, KindKeyword, kinds[0])
	assert.Equal(t, KindExternalCall, kinds[len(kinds)-1])

	pos := func(k Kind) int {
		for i, x := range kinds {
			if x == k {
				return i
			}
		}
		return -1
	}
	// Members and methods resolve before their containers.
	assert.Less(t, pos(KindMember), pos(KindStruct))
	assert.Less(t, pos(KindMethod), pos(KindStruct))
	assert.Less(t, pos(KindMethod), pos(KindInterface))
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"struct", KindStruct, true},
		{"Structs", KindStruct, true},
		{"textmacroinstance", KindTextMacroInstance, true},
		{" METHOD ", KindMethod, true},
		{"none", KindNone, false},
		{"library", KindNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectID(t *testing.T) {
	t.Parallel()
	assert.False(t, NoObject.IsValid())
	assert.False(t, ObjectID{Kind: KindType}.IsValid())
	assert.False(t, ObjectID{Index: 3}.IsValid())

	id := ObjectID{Kind: KindStruct, Index: 2}
	assert.True(t, id.IsValid())
	assert.Equal(t, "struct#2", id.String())
	assert.Equal(t, "none", NoObject.String())
}

func TestExpr_Bind(t *testing.T) {
	t.Parallel()
	e := Raw("integer")
	assert.False(t, e.IsResolved())
	assert.False(t, e.IsEmpty())

	e.Bind(ObjectID{Kind: KindType, Index: 1})
	assert.True(t, e.IsResolved())
	assert.Empty(t, e.Text)

	assert.True(t, Raw("").IsEmpty())
	assert.True(t, Raw(Placeholder).IsEmpty())
}

func TestIsLiteral(t *testing.T) {
	t.Parallel()
	assert.True(t, IsLiteral("-"))
	assert.True(t, IsLiteral("100"))
	assert.True(t, IsLiteral("0x10"))
	assert.False(t, IsLiteral(""))
	assert.False(t, IsLiteral("integer"))
	assert.False(t, IsLiteral("--"))
}

func TestParseDocComment(t *testing.T) {
	t.Parallel()
	d := ParseDocComment(`/// Creates a new unit group.
/// Returns null on failure.
/// @author Tamino
/// @todo cache groups
/// @TODO leak check`)

	assert.Equal(t, "Creates a new unit group.\nReturns null on failure.", d.Description())
	assert.Equal(t, "Tamino", d.Tag("author"))
	assert.Equal(t, "cache groups, leak check", d.Tag("todo"))
	assert.Empty(t, d.Tag("state"))

	var nilDoc *DocComment
	assert.Empty(t, nilDoc.Description())
	assert.Empty(t, nilDoc.Tag("author"))
}

func TestContainerAndOwner(t *testing.T) {
	t.Parallel()
	c := ObjectID{Kind: KindStruct, Index: 1}
	f := ObjectID{Kind: KindFunction, Index: 4}

	got, ok := ContainerOf(&Method{Container: c})
	assert.True(t, ok)
	assert.Equal(t, c, got)

	_, ok = ContainerOf(&Global{})
	assert.False(t, ok)

	got, ok = OwnerOf(&Local{Owner: f})
	assert.True(t, ok)
	assert.Equal(t, f, got)
}
