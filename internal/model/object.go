package model

import "fmt"

// State is the lifecycle position of an object.
type State uint8

const (
	StateDeclared State = iota
	StateResolved
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateDeclared:
		return "declared"
	case StateResolved:
		return "resolved"
	case StateRendered:
		return "rendered"
	default:
		return "unknown"
	}
}

// ObjectID is a stable (category, index) key into the pool. Index is
// 1-based and assigned at insertion; the zero value means "no object".
type ObjectID struct {
	Kind  Kind
	Index uint32
}

// NoObject is the zero ObjectID.
var NoObject = ObjectID{}

func (id ObjectID) IsValid() bool { return id.Kind.IsValid() && id.Index != 0 }

func (id ObjectID) String() string {
	if !id.IsValid() {
		return "none"
	}
	return fmt.Sprintf("%s#%d", id.Kind.Singular(), id.Index)
}

// Location is the source position an object was declared at.
type Location struct {
	File string
	Line int
}

// Base carries the attributes shared by every declared object.
type Base struct {
	ID    ObjectID
	Name  string
	Loc   Location
	Doc   *DocComment
	State State
}

// NewBase builds the common part of a record.
func NewBase(name string, loc Location, doc *DocComment) Base {
	return Base{Name: name, Loc: loc, Doc: doc}
}

// Common returns the shared attributes.
func (b *Base) Common() *Base { return b }

// Object is implemented by every record type.
type Object interface {
	Kind() Kind
	Common() *Base
}
