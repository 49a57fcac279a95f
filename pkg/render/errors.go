package render

import "errors"

// Unit-call failures are template-authoring bugs, not recoverable runtime
// conditions. Each cause is a distinct sentinel so callers can match the kind
// with errors.Is; all of them are fatal to the current render call and none
// corrupt shared unit state.
var (
	// ErrNilTemplate reports a unit call whose target expression evaluated
	// to nil.
	ErrNilTemplate = errors.New("render: call target is nil")

	// ErrPrimitiveTemplate reports a unit call on a primitive value.
	ErrPrimitiveTemplate = errors.New("render: call target is a primitive and not a render unit")

	// ErrStringTemplate reports a unit call on a string.
	ErrStringTemplate = errors.New("render: call target is a string and not a render unit")

	// ErrNotTemplate reports a unit call on any other value that is not a
	// render unit.
	ErrNotTemplate = errors.New("render: call target is not a render unit")
)
