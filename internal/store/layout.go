package store

import "github.com/jward/jassdoc/internal/model"

// ColumnType is the SQL affinity of a column.
type ColumnType uint8

const (
	Integer ColumnType = iota
	Text
)

func (t ColumnType) String() string {
	if t == Text {
		return "TEXT"
	}
	return "INTEGER"
}

// Column is one export column.
type Column struct {
	Name string
	Type ColumnType
}

// Layout is the fixed column set of one export table. Columns are the
// parent's columns followed by the kind's own increment.
type Layout struct {
	Kind    model.Kind
	Parent  *Layout
	Own     []Column
	Columns []Column
}

// Width is the total number of columns.
func (l *Layout) Width() int { return len(l.Columns) }

// Table is the export table name.
func (l *Layout) Table() string { return l.Kind.String() }

func compose(k model.Kind, parent *Layout, own ...Column) *Layout {
	l := &Layout{Kind: k, Parent: parent, Own: own}
	if parent != nil {
		l.Columns = append(l.Columns, parent.Columns...)
	}
	l.Columns = append(l.Columns, own...)
	return l
}

func intCol(name string) Column  { return Column{Name: name, Type: Integer} }
func textCol(name string) Column { return Column{Name: name, Type: Text} }

var (
	// objectLayout is the increment every table starts with.
	objectLayout = compose(model.KindNone, nil,
		intCol("Id"), textCol("Identifier"), textCol("SourceFile"), intCol("Line"), textCol("DocComment"))

	globalLayout = compose(model.KindGlobal, objectLayout,
		intCol("Type"), intCol("Value"), intCol("Size"),
		intCol("IsConstant"), intCol("IsArray"), intCol("IsPrivate"), intCol("IsPublic"))
	functionLayout = compose(model.KindFunction, objectLayout,
		intCol("ReturnType"), intCol("IsNative"), intCol("IsConstant"), intCol("IsPrivate"), intCol("IsPublic"))
	interfaceLayout = compose(model.KindInterface, objectLayout, intCol("IsPrivate"))

	layouts [model.KindCount + 1]*Layout
)

func init() {
	for _, l := range []*Layout{
		compose(model.KindKeyword, objectLayout, intCol("Target"), intCol("IsPrivate")),
		compose(model.KindTextMacro, objectLayout, textCol("Parameters"), intCol("IsOnce")),
		compose(model.KindTextMacroInstance, objectLayout, intCol("TextMacro"), textCol("Arguments"), intCol("IsOptional")),
		compose(model.KindType, objectLayout, intCol("Extends"), intCol("Size")),
		globalLayout,
		compose(model.KindMember, globalLayout, intCol("Container"), intCol("IsStatic"), intCol("IsDelegate")),
		functionLayout,
		compose(model.KindMethod, functionLayout,
			intCol("Container"), intCol("IsStatic"), intCol("IsStub"), intCol("IsOperator"), intCol("DefaultReturnValue")),
		compose(model.KindParameter, objectLayout, intCol("Function"), intCol("Type"), intCol("Ordinal")),
		compose(model.KindLocal, objectLayout, intCol("Function"), intCol("Type"), intCol("Value"), intCol("IsArray")),
		compose(model.KindImplementation, objectLayout, intCol("Container"), intCol("Module"), intCol("IsOptional")),
		compose(model.KindHook, objectLayout, intCol("Function"), intCol("HookFunction")),
		interfaceLayout,
		compose(model.KindStruct, interfaceLayout, intCol("Extends"), intCol("Size")),
		compose(model.KindModule, interfaceLayout),
		compose(model.KindExternalCall, objectLayout, textCol("Arguments")),
	} {
		layouts[l.Kind] = l
	}
}

// ObjectWidth is the width of the increment shared by every table.
func ObjectWidth() int { return objectLayout.Width() }

// LayoutOf returns the layout of kind k, or nil for an invalid kind.
func LayoutOf(k model.Kind) *Layout {
	if !k.IsValid() {
		return nil
	}
	return layouts[k]
}
