package resolve

import (
	"strings"

	"github.com/jward/jassdoc/internal/model"
)

// FieldKind tags an expression field with the lookup rule it follows.
type FieldKind uint8

const (
	FieldType FieldKind = iota
	FieldValue
	FieldSize
	FieldDefaultReturn
	FieldModule
	FieldFunction
	FieldHookFunction
	FieldTextMacro
	FieldKeywordTarget

	fieldCount
)

type fieldRule struct {
	name  string
	probe []model.Kind
}

// fieldRules is the ordered category list per field kind. The first
// category yielding a match wins; later ones are never consulted.
var fieldRules = [fieldCount]fieldRule{
	FieldType:          {"type", []model.Kind{model.KindType, model.KindInterface, model.KindStruct}},
	FieldValue:         {"value", []model.Kind{model.KindGlobal, model.KindMember, model.KindFunction, model.KindMethod}},
	FieldSize:          {"size", []model.Kind{model.KindGlobal, model.KindMember, model.KindFunction, model.KindMethod}},
	FieldDefaultReturn: {"default", []model.Kind{model.KindGlobal, model.KindMember, model.KindFunction, model.KindMethod}},
	// Modules only: interfaces share the module shape but never match here.
	FieldModule:        {"module", []model.Kind{model.KindModule}},
	FieldFunction:      {"function", []model.Kind{model.KindFunction}},
	FieldHookFunction:  {"hook", []model.Kind{model.KindFunction, model.KindMethod}},
	FieldTextMacro:     {"textmacro", []model.Kind{model.KindTextMacro}},
	FieldKeywordTarget: {"keyword", []model.Kind{model.KindFunction, model.KindGlobal, model.KindStruct, model.KindInterface, model.KindType, model.KindMethod}},
}

// Categories returns the categories probed for f, in priority order.
// The returned slice must not be modified.
func (f FieldKind) Categories() []model.Kind {
	if f >= fieldCount {
		return nil
	}
	return fieldRules[f].probe
}

func (f FieldKind) String() string {
	if f >= fieldCount {
		return "unknown"
	}
	return fieldRules[f].name
}

// FieldKinds lists every field kind.
func FieldKinds() []FieldKind {
	out := make([]FieldKind, 0, fieldCount)
	for f := FieldKind(0); f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

// ParseFieldKind maps a field kind name back to its value.
func ParseFieldKind(s string) (FieldKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f := FieldKind(0); f < fieldCount; f++ {
		if fieldRules[f].name == s {
			return f, true
		}
	}
	return 0, false
}
