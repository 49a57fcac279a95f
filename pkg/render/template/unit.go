package template

import (
	"errors"
	"io"

	"github.com/goliatone/go-renderkit/pkg/render"
)

// ErrNilRenderer reports a unit construction without an engine.
var ErrNilRenderer = errors.New("template: renderer is required")

// UnitFromString builds a render unit whose body executes the inline template
// content through renderer. The template sees the merged global scope under
// its folded variable names, with call arguments shadowing scope entries of
// the same folded name.
func UnitFromString(renderer Renderer, content string) (*render.Unit, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	return render.NewUnit(func(out io.Writer, scope *render.Bindings, args *render.Bindings, _ *render.Context) error {
		_, err := renderer.RenderString(content, templateData(scope, args), out)
		return err
	}), nil
}

// UnitFromTemplate is UnitFromString for a named template resolved through
// the renderer's loaders.
func UnitFromTemplate(renderer Renderer, name string) (*render.Unit, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	return render.NewUnit(func(out io.Writer, scope *render.Bindings, args *render.Bindings, _ *render.Context) error {
		_, err := renderer.RenderTemplate(name, templateData(scope, args), out)
		return err
	}), nil
}

func templateData(scope, args *render.Bindings) map[string]any {
	data := scope.Snapshot()
	for key, value := range args.Entries() {
		data[key] = value
	}
	return data
}
