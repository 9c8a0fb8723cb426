// Package diag collects the soft problems found while resolving, rendering
// and exporting a pool. None of them abort a run.
package diag

import (
	"fmt"

	"github.com/jward/jassdoc/internal/model"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Code identifies the kind of problem.
type Code uint16

const (
	UnknownCode Code = iota
	// UnresolvedReference: expression text matched no probed category.
	UnresolvedReference
	// StructuralViolation: a container or owner key points at nothing.
	StructuralViolation
	// BoundedExportOverflow: more export values than columns; excess dropped.
	BoundedExportOverflow
	// MalformedInput: out-of-range index or wrong-kind key seen during resolution.
	MalformedInput
	// DuplicateIdentifier: a category got a second object with the same name.
	DuplicateIdentifier
	// DuplicateResolution: an object was asked to resolve twice.
	DuplicateResolution
	// RenderFailure: rendering one object panicked or failed.
	RenderFailure
)

var codeInfo = map[Code]struct {
	name string
	sev  Severity
}{
	UnknownCode:           {"unknown", SevError},
	UnresolvedReference:   {"unresolved-reference", SevInfo},
	StructuralViolation:   {"structural-violation", SevWarning},
	BoundedExportOverflow: {"export-overflow", SevInfo},
	MalformedInput:        {"malformed-input", SevWarning},
	DuplicateIdentifier:   {"duplicate-identifier", SevInfo},
	DuplicateResolution:   {"duplicate-resolution", SevWarning},
	RenderFailure:         {"render-failure", SevError},
}

func (c Code) String() string {
	if info, ok := codeInfo[c]; ok {
		return info.name
	}
	return fmt.Sprintf("code-%d", uint16(c))
}

// DefaultSeverity is the severity a code is reported with.
func (c Code) DefaultSeverity() Severity {
	if info, ok := codeInfo[c]; ok {
		return info.sev
	}
	return SevError
}

// Diagnostic is one reported problem, attached to the object it concerns.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Object   model.ObjectID
	Name     string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Object.IsValid() {
		return fmt.Sprintf("%s [%s] %s %q: %s", d.Severity, d.Code, d.Object, d.Name, d.Message)
	}
	return fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
}
