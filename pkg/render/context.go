package render

import "github.com/goliatone/go-renderkit/pkg/objectmodel"

// Context carries the state threaded through a render call: the global
// bindings and the object-model instance used to classify and coerce values.
// Unit calls pass the caller's context through unchanged, so callees close
// over the global bindings only, never over the caller's local scope.
type Context struct {
	globals *Bindings
	model   objectmodel.Model
}

// NewContext builds a render context over the supplied global bindings. A
// nil model defaults to objectmodel.Runtime.
func NewContext(globals map[string]any, model objectmodel.Model) *Context {
	if model == nil {
		model = objectmodel.Runtime{}
	}
	return &Context{
		globals: NewBindings(globals),
		model:   model,
	}
}

// Globals returns the context's global bindings.
func (c *Context) Globals() *Bindings {
	return c.globals
}

// ObjectModel returns the object-model instance for this context.
func (c *Context) ObjectModel() objectmodel.Model {
	return c.model
}
