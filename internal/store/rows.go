package store

import (
	"strings"

	"github.com/jward/jassdoc/internal/model"
)

// RowFor flattens o into its export row. Each kind appends its parent's
// values first, mirroring the layout composition.
func RowFor(o model.Object) *Row {
	l := LayoutOf(o.Kind())
	if l == nil {
		return nil
	}
	r := NewRow(l)
	r.Append(objectValues(o)...)
	switch v := o.(type) {
	case *model.Keyword:
		r.Append(v.Target, v.IsPrivate)
	case *model.TextMacro:
		r.Append(strings.Join(v.Parameters, ", "), v.IsOnce)
	case *model.TextMacroInstance:
		r.Append(v.TextMacro, strings.Join(v.Arguments, ", "), v.IsOptional)
	case *model.Type:
		r.Append(v.Extends, v.Size)
	case *model.Member:
		r.Append(globalValues(&v.Global)...)
		r.Append(v.Container, v.IsStatic, v.IsDelegate)
	case *model.Global:
		r.Append(globalValues(v)...)
	case *model.Method:
		r.Append(functionValues(&v.Function)...)
		r.Append(v.Container, v.IsStatic, v.IsStub, v.IsOperator, v.DefaultReturn)
	case *model.Function:
		r.Append(functionValues(v)...)
	case *model.Parameter:
		r.Append(v.Owner, v.Type, v.Ordinal)
	case *model.Local:
		r.Append(v.Owner, v.Type, v.Value, v.IsArray)
	case *model.Implementation:
		r.Append(v.Container, v.Module, v.IsOptional)
	case *model.Hook:
		r.Append(v.Function, v.HookFunction)
	case *model.Struct:
		r.Append(v.IsPrivate)
		r.Append(v.Extends, v.Size)
	case *model.Module:
		r.Append(v.IsPrivate)
	case *model.Interface:
		r.Append(v.IsPrivate)
	case *model.ExternalCall:
		r.Append(v.Arguments)
	}
	return r
}

func objectValues(o model.Object) []any {
	b := o.Common()
	return []any{b.ID.Index, b.Name, b.Loc.File, b.Loc.Line, b.Doc.Description()}
}

func globalValues(g *model.Global) []any {
	return []any{g.Type, g.Value, g.Size, g.IsConstant, g.IsArray, g.IsPrivate, g.IsPublic}
}

func functionValues(f *model.Function) []any {
	return []any{f.ReturnType, f.IsNative, f.IsConstant, f.IsPrivate, f.IsPublic}
}
