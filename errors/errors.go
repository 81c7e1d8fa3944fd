// Package errors defines the error taxonomy shared by the SDF loading
// pipeline. Loading is best effort: non-fatal problems accumulate into an
// ordered List that is returned alongside the partially built object model.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of loading or resolution failure.
type Code string

const (
	// CodeAttributeInvalid indicates an attribute value is invalid. Fatal at
	// the root version check, non-fatal elsewhere.
	CodeAttributeInvalid Code = "attribute-invalid"
	// CodeAttributeMissing indicates a required attribute is absent; a
	// default value is substituted.
	CodeAttributeMissing Code = "attribute-missing"
	// CodeDuplicateName indicates a name collision within a scope; the
	// first declaration wins subsequent lookups.
	CodeDuplicateName Code = "duplicate-name"
	// CodeElementIncorrectType indicates the wrong element tag was passed
	// to a typed loader. Fatal for that subtree.
	CodeElementIncorrectType Code = "element-incorrect-type"
	// CodeElementInvalid indicates an element could not be loaded or an
	// edge references a vertex that does not exist.
	CodeElementInvalid Code = "element-invalid"
	// CodeFileRead indicates the source file could not be opened or parsed.
	CodeFileRead Code = "file-read"
	// CodeFrameGraphCycle indicates a frame's attached-to chain does not
	// terminate at the scope root.
	CodeFrameGraphCycle Code = "frame-graph-cycle"
	// CodeFrameNotFound indicates a declared parent frame name did not
	// resolve in any enclosing scope; the frame falls back to the scope root.
	CodeFrameNotFound Code = "frame-not-found"
	// CodeLinkInertiaInvalid indicates a link mass matrix failed the
	// sanity check; the link is retained as loaded.
	CodeLinkInertiaInvalid Code = "link-inertia-invalid"
	// CodeNoPathBetweenFrames indicates a pose query between frames with
	// no connecting path; the pose is genuinely undefined.
	CodeNoPathBetweenFrames Code = "no-path-between-frames"
	// CodeStringRead indicates the source text could not be parsed.
	CodeStringRead Code = "string-read"
)

// Error describes one loading or resolution failure.
type Error struct {
	Code    Code
	Message string
}

// Error formats the error for display.
func (e *Error) Error() string {
	if e == nil {
		return "error <nil>"
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New builds an Error with a code and message.
func New(code Code, msg string) Error {
	return Error{Code: code, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code Code, format string, args ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// List is an ordered collection of errors produced by one Load call.
type List []Error

// Error returns a compact summary of the list.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Codes returns the error codes in order, mostly for assertions.
func (l List) Codes() []Code {
	codes := make([]Code, len(l))
	for i := range l {
		codes[i] = l[i].Code
	}
	return codes
}

// AsList extracts an error List from an error value.
func AsList(err error) (List, bool) {
	if err == nil {
		return nil, false
	}
	var list List
	if errors.As(err, &list) {
		return list, true
	}
	var one *Error
	if errors.As(err, &one) && one != nil {
		return List{*one}, true
	}
	return nil, false
}
