package model

import "strings"

// Kind identifies one object category. The declaration order of the
// constants is the pool order, which is also the resolution order.
type Kind uint8

const (
	KindNone Kind = iota
	KindKeyword
	KindTextMacro
	KindTextMacroInstance
	KindType
	KindGlobal
	KindMember
	KindFunction
	KindMethod
	KindParameter
	KindLocal
	KindImplementation
	KindHook
	KindInterface
	KindStruct
	KindModule
	KindExternalCall

	kindCount
)

// KindCount is the number of real categories (KindNone excluded).
const KindCount = int(kindCount) - 1

type kindInfo struct {
	name     string // category label, also the export table name
	singular string
}

var kindInfos = [kindCount]kindInfo{
	KindNone:              {"None", "none"},
	KindKeyword:           {"Keywords", "keyword"},
	KindTextMacro:         {"TextMacros", "textmacro"},
	KindTextMacroInstance: {"TextMacroInstances", "textmacroinstance"},
	KindType:              {"Types", "type"},
	KindGlobal:            {"Globals", "global"},
	KindMember:            {"Members", "member"},
	KindFunction:          {"Functions", "function"},
	KindMethod:            {"Methods", "method"},
	KindParameter:         {"Parameters", "parameter"},
	KindLocal:             {"Locals", "local"},
	KindImplementation:    {"Implementations", "implementation"},
	KindHook:              {"Hooks", "hook"},
	KindInterface:         {"Interfaces", "interface"},
	KindStruct:            {"Structs", "struct"},
	KindModule:            {"Modules", "module"},
	KindExternalCall:      {"ExternalCalls", "externalcall"},
}

// Kinds returns every category in pool order.
func Kinds() []Kind {
	out := make([]Kind, 0, KindCount)
	for k := KindNone + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// IsValid reports whether k names a real category.
func (k Kind) IsValid() bool { return k > KindNone && k < kindCount }

// String returns the category label ("Structs", "TextMacros", ...).
func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindInfos[k].name
}

// Slug is the lowercase category label used in page paths.
func (k Kind) Slug() string { return strings.ToLower(k.String()) }

// Singular returns the lowercase singular name ("struct", "method").
func (k Kind) Singular() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindInfos[k].singular
}

// IsContainer reports whether objects of this kind may own members and methods.
func (k Kind) IsContainer() bool {
	return k == KindStruct || k == KindInterface || k == KindModule
}

// IsFunctionLike reports whether objects of this kind may own parameters and locals.
func (k Kind) IsFunctionLike() bool {
	return k == KindFunction || k == KindMethod
}

// ParseKind accepts the singular name, the slug or the label of a category,
// case-insensitively.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindNone + 1; k < kindCount; k++ {
		if s == kindInfos[k].singular || s == k.Slug() {
			return k, true
		}
	}
	return KindNone, false
}
