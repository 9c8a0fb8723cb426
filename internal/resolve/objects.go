package resolve

import (
	"fmt"

	"github.com/jward/jassdoc/internal/diag"
	"github.com/jward/jassdoc/internal/model"
)

// All seals the pool and resolves every object exactly once, category by
// category in pool order.
func (r *Resolver) All() Stats {
	r.pool.Seal()
	r.pool.Each(func(o model.Object) bool {
		r.Resolve(o)
		return true
	})
	return r.stats
}

// Resolve binds every expression field of o. A second call for the same
// object is reported and ignored. A panic while resolving one object is
// contained and reported.
func (r *Resolver) Resolve(o model.Object) {
	b := o.Common()
	if b.State != model.StateDeclared {
		r.diags.Report(diag.DuplicateResolution, o, "already %s", b.State)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.stats.Failed++
			r.diags.Report(diag.MalformedInput, o, "resolution aborted: %v", rec)
		}
		b.State = model.StateResolved
	}()
	r.stats.Objects++

	switch v := o.(type) {
	case *model.Type:
		r.bind(v, FieldType, &v.Extends, "extends")
		r.bind(v, FieldSize, &v.Size, "size")
	case *model.Member:
		r.resolveGlobal(v, &v.Global)
	case *model.Global:
		r.resolveGlobal(v, v)
	case *model.Local:
		r.bind(v, FieldType, &v.Type, "type")
		r.bind(v, FieldValue, &v.Value, "value")
	case *model.Parameter:
		r.bind(v, FieldType, &v.Type, "type")
	case *model.Method:
		r.bind(v, FieldType, &v.ReturnType, "return type")
		r.bind(v, FieldDefaultReturn, &v.DefaultReturn, "default return value")
	case *model.Function:
		r.bind(v, FieldType, &v.ReturnType, "return type")
	case *model.Struct:
		r.bind(v, FieldType, &v.Extends, "extends")
		r.bind(v, FieldSize, &v.Size, "size")
	case *model.Interface, *model.Module, *model.TextMacro, *model.ExternalCall:
		// nothing to bind
	case *model.Implementation:
		r.bind(v, FieldModule, &v.Module, "module")
	case *model.Hook:
		r.bind(v, FieldFunction, &v.Function, "hooked function")
		r.bind(v, FieldHookFunction, &v.HookFunction, "hook function")
	case *model.Keyword:
		if v.Target.Text == "" && !v.Target.Ref.IsValid() {
			v.Target.Text = v.Name
		}
		r.bind(v, FieldKeywordTarget, &v.Target, "keyword target")
	case *model.TextMacroInstance:
		r.bind(v, FieldTextMacro, &v.TextMacro, "text macro")
	default:
		panic(fmt.Sprintf("unknown object type %T", o))
	}
}

// resolveGlobal binds the fields shared by globals and members; o is the
// object diagnostics and self keywords refer to.
func (r *Resolver) resolveGlobal(o model.Object, g *model.Global) {
	r.bind(o, FieldType, &g.Type, "type")
	r.bind(o, FieldValue, &g.Value, "value")
	r.bind(o, FieldSize, &g.Size, "size")
}
