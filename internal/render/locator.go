package render

import (
	"fmt"

	"github.com/jward/jassdoc/internal/model"
)

// Locator formats the source position of an object.
type Locator interface {
	Anchor(o model.Object) string
}

// FileLine renders "file:line", or the bare file name when the line is
// unknown. Objects without a file yield "".
type FileLine struct{}

func (FileLine) Anchor(o model.Object) string {
	loc := o.Common().Loc
	switch {
	case loc.File == "":
		return ""
	case loc.Line <= 0:
		return loc.File
	}
	return fmt.Sprintf("%s:%d", loc.File, loc.Line)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(o model.Object) string

func (f LocatorFunc) Anchor(o model.Object) string { return f(o) }
