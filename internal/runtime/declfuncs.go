package runtime

import (
	"context"
	"fmt"

	"fortio.org/safecast"
	"github.com/risor-io/risor/object"

	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/pool"
)

// builder turns the declaration map of one declare_* call into a record.
type builder func(m map[string]object.Object) (model.Object, error)

// declarers maps host function names to record builders. Every record
// accepts "name", "file", "line" and "doc"; the remaining keys are
// kind-specific raw expressions, flags and parent keys.
var declarers = map[string]builder{
	"declare_type": func(m map[string]object.Object) (model.Object, error) {
		return &model.Type{Base: baseOf(m), Extends: exprOf(m, "extends"), Size: exprOf(m, "size")}, nil
	},
	"declare_global": func(m map[string]object.Object) (model.Object, error) {
		g := globalOf(m)
		return &g, nil
	},
	"declare_member": func(m map[string]object.Object) (model.Object, error) {
		c, err := getID(m, "container")
		if err != nil {
			return nil, err
		}
		return &model.Member{
			Global:     globalOf(m),
			Container:  c,
			IsStatic:   getBool(m, "static"),
			IsDelegate: getBool(m, "delegate"),
		}, nil
	},
	"declare_local": func(m map[string]object.Object) (model.Object, error) {
		owner, err := getID(m, "owner")
		if err != nil {
			return nil, err
		}
		return &model.Local{
			Base:    baseOf(m),
			Owner:   owner,
			Type:    exprOf(m, "type"),
			Value:   exprOf(m, "value"),
			IsArray: getBool(m, "array"),
		}, nil
	},
	"declare_parameter": func(m map[string]object.Object) (model.Object, error) {
		owner, err := getID(m, "owner")
		if err != nil {
			return nil, err
		}
		return &model.Parameter{
			Base:    baseOf(m),
			Owner:   owner,
			Type:    exprOf(m, "type"),
			Ordinal: getInt(m, "ordinal"),
		}, nil
	},
	"declare_function": func(m map[string]object.Object) (model.Object, error) {
		f := functionOf(m)
		return &f, nil
	},
	"declare_method": func(m map[string]object.Object) (model.Object, error) {
		c, err := getID(m, "container")
		if err != nil {
			return nil, err
		}
		return &model.Method{
			Function:      functionOf(m),
			Container:     c,
			DefaultReturn: exprOf(m, "default"),
			IsStatic:      getBool(m, "static"),
			IsStub:        getBool(m, "stub"),
			IsOperator:    getBool(m, "operator"),
		}, nil
	},
	"declare_interface": func(m map[string]object.Object) (model.Object, error) {
		i := interfaceOf(m)
		return &i, nil
	},
	"declare_struct": func(m map[string]object.Object) (model.Object, error) {
		return &model.Struct{Interface: interfaceOf(m), Extends: exprOf(m, "extends"), Size: exprOf(m, "size")}, nil
	},
	"declare_module": func(m map[string]object.Object) (model.Object, error) {
		return &model.Module{Interface: interfaceOf(m)}, nil
	},
	"declare_implementation": func(m map[string]object.Object) (model.Object, error) {
		c, err := getID(m, "container")
		if err != nil {
			return nil, err
		}
		return &model.Implementation{
			Base:       baseOf(m),
			Container:  c,
			Module:     exprOrName(m, "module"),
			IsOptional: getBool(m, "optional"),
		}, nil
	},
	"declare_hook": func(m map[string]object.Object) (model.Object, error) {
		return &model.Hook{
			Base:         baseOf(m),
			Function:     exprOrName(m, "function"),
			HookFunction: exprOf(m, "hook"),
		}, nil
	},
	"declare_keyword": func(m map[string]object.Object) (model.Object, error) {
		return &model.Keyword{Base: baseOf(m), Target: exprOf(m, "target"), IsPrivate: getBool(m, "private")}, nil
	},
	"declare_textmacro": func(m map[string]object.Object) (model.Object, error) {
		params, err := getStrings(m, "parameters")
		if err != nil {
			return nil, err
		}
		return &model.TextMacro{Base: baseOf(m), Parameters: params, IsOnce: getBool(m, "once")}, nil
	},
	"declare_textmacro_instance": func(m map[string]object.Object) (model.Object, error) {
		args, err := getStrings(m, "arguments")
		if err != nil {
			return nil, err
		}
		return &model.TextMacroInstance{
			Base:       baseOf(m),
			TextMacro:  exprOrName(m, "textmacro"),
			Arguments:  args,
			IsOptional: getBool(m, "optional"),
		}, nil
	},
	"declare_external_call": func(m map[string]object.Object) (model.Object, error) {
		return &model.ExternalCall{Base: baseOf(m), Arguments: getString(m, "arguments")}, nil
	},
}

// makeDeclareFn creates one declare_* host function.
//
// declare_x(map) → {"kind": ..., "index": ...}
func makeDeclareFn(p *pool.Pool, name string, build builder) *object.Builtin {
	return object.NewBuiltin(name, func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError(name, 1, len(args))
		}
		m, err := extractMap(args[0])
		if err != nil {
			return object.Errorf("%s: %v", name, err)
		}
		o, err := build(m)
		if err != nil {
			return object.Errorf("%s: %v", name, err)
		}
		id, err := p.Add(o)
		if err != nil {
			return object.Errorf("%s: %v", name, err)
		}
		return idToObject(id)
	})
}

func baseOf(m map[string]object.Object) model.Base {
	var doc *model.DocComment
	if raw := getString(m, "doc"); raw != "" {
		doc = model.ParseDocComment(raw)
	}
	loc := model.Location{File: getString(m, "file"), Line: getInt(m, "line")}
	return model.NewBase(getString(m, "name"), loc, doc)
}

func exprOf(m map[string]object.Object, key string) model.Expr {
	return model.Raw(getString(m, key))
}

// exprOrName defaults a target expression to the declaration's own name,
// as in `implement Alloc` or `hook KillUnit ...`.
func exprOrName(m map[string]object.Object, key string) model.Expr {
	if _, ok := m[key]; ok {
		return exprOf(m, key)
	}
	return exprOf(m, "name")
}

func globalOf(m map[string]object.Object) model.Global {
	return model.Global{
		Base:       baseOf(m),
		Type:       exprOf(m, "type"),
		Value:      exprOf(m, "value"),
		Size:       exprOf(m, "size"),
		IsConstant: getBool(m, "constant"),
		IsArray:    getBool(m, "array"),
		IsPrivate:  getBool(m, "private"),
		IsPublic:   getBool(m, "public"),
	}
}

func functionOf(m map[string]object.Object) model.Function {
	return model.Function{
		Base:       baseOf(m),
		ReturnType: exprOf(m, "returns"),
		IsNative:   getBool(m, "native"),
		IsConstant: getBool(m, "constant"),
		IsPrivate:  getBool(m, "private"),
		IsPublic:   getBool(m, "public"),
	}
}

func interfaceOf(m map[string]object.Object) model.Interface {
	return model.Interface{Base: baseOf(m), IsPrivate: getBool(m, "private")}
}

// --- Map extraction helpers ---

func extractMap(obj object.Object) (map[string]object.Object, error) {
	m, ok := obj.(*object.Map)
	if !ok {
		return nil, fmt.Errorf("expected map, got %s", obj.Type())
	}
	return m.Value(), nil
}

func getString(m map[string]object.Object, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	if s, ok := v.(*object.String); ok {
		return s.Value()
	}
	return ""
}

func getInt(m map[string]object.Object, key string) int {
	v, ok := m[key]
	if !ok {
		return 0
	}
	if i, ok := v.(*object.Int); ok {
		return int(i.Value())
	}
	if f, ok := v.(*object.Float); ok {
		return int(f.Value())
	}
	return 0
}

func getBool(m map[string]object.Object, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	if b, ok := v.(*object.Bool); ok {
		return b.Value()
	}
	return false
}

func getStrings(m map[string]object.Object, key string) ([]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	if _, ok := v.(*object.NilType); ok {
		return nil, nil
	}
	list, ok := v.(*object.List)
	if !ok {
		return nil, fmt.Errorf("%s: expected list, got %s", key, v.Type())
	}
	out := make([]string, 0, len(list.Value()))
	for _, item := range list.Value() {
		s, err := toString(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// getID reads a parent key: the map returned by a previous declare_*
// call. A missing key yields the zero ObjectID.
func getID(m map[string]object.Object, key string) (model.ObjectID, error) {
	v, ok := m[key]
	if !ok {
		return model.NoObject, nil
	}
	if _, ok := v.(*object.NilType); ok {
		return model.NoObject, nil
	}
	return toID(v)
}

func toID(obj object.Object) (model.ObjectID, error) {
	km, err := extractMap(obj)
	if err != nil {
		return model.NoObject, err
	}
	kind, ok := model.ParseKind(getString(km, "kind"))
	if !ok {
		return model.NoObject, fmt.Errorf("unknown kind %q", getString(km, "kind"))
	}
	raw, err := toInt64(km["index"])
	if err != nil {
		return model.NoObject, fmt.Errorf("bad index for %s: %w", kind.Singular(), err)
	}
	idx, err := safecast.Conv[uint32](raw)
	if err != nil {
		return model.NoObject, fmt.Errorf("bad index for %s: %w", kind.Singular(), err)
	}
	return model.ObjectID{Kind: kind, Index: idx}, nil
}

func toInt64(obj object.Object) (int64, error) {
	if i, ok := obj.(*object.Int); ok {
		return i.Value(), nil
	}
	if f, ok := obj.(*object.Float); ok {
		return int64(f.Value()), nil
	}
	if obj == nil {
		return 0, fmt.Errorf("expected int, got nothing")
	}
	return 0, fmt.Errorf("expected int, got %s", obj.Type())
}

func toString(obj object.Object) (string, error) {
	if s, ok := obj.(*object.String); ok {
		return s.Value(), nil
	}
	return "", fmt.Errorf("expected string, got %s", obj.Type())
}

func idToObject(id model.ObjectID) object.Object {
	return object.NewMap(map[string]object.Object{
		"kind":  object.NewString(id.Kind.Singular()),
		"index": object.NewInt(int64(id.Index)),
	})
}
