package template

import "io"

// Renderer is the engine contract the unit bridge relies on. Data is always a
// plain string-keyed map so engines never need to reflect over package types.
type Renderer interface {
	// Render resolves name as inline content when it looks like template
	// source, otherwise as a named template.
	Render(name string, data map[string]any, out ...io.Writer) (string, error)

	// RenderTemplate renders the named template from the engine's loaders.
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)

	// RenderString renders inline template content.
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)

	// RegisterFilter installs a named filter usable from template
	// expressions.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error

	// GlobalContext seeds values available to every template.
	GlobalContext(data map[string]any) error
}
