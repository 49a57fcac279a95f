package extension

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-renderkit/pkg/render"
)

// Well-known extension names. The dispatch protocol addresses extensions by
// these exact strings.
const (
	Format          = "format"
	I18N            = "i18n"
	Join            = "join"
	URIManipulation = "uriManipulation"
	XSS             = "xss"
	Include         = "include"
	IncludeResource = "includeResource"
	Use             = "use"
)

// Extension is a named runtime function callable from rendering code. The
// argument list is positional and extension-specific; implementations coerce
// their arguments through the context's object model.
type Extension interface {
	Call(ctx *render.Context, args ...any) (any, error)
}

// Func adapts a plain function to the Extension interface.
type Func func(ctx *render.Context, args ...any) (any, error)

// Call implements Extension.
func (f Func) Call(ctx *render.Context, args ...any) (any, error) {
	return f(ctx, args...)
}

// Registry stores extensions by name, providing discovery and duplication
// safeguards. Hosts can embed or wrap this for dependency injection.
type Registry struct {
	mu         sync.RWMutex
	extensions map[string]Extension
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		extensions: make(map[string]Extension),
	}
}

// NewDefaultRegistry creates a registry pre-populated with the
// general-purpose built-in extensions. The resource-oriented names are left
// for the host to register.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(Format, Func(formatExtension))
	r.MustRegister(Join, Func(joinExtension))
	r.MustRegister(URIManipulation, Func(uriManipulationExtension))
	r.MustRegister(XSS, Func(xssExtension))
	return r
}

// Register adds an extension under name. Duplicate names return an error.
func (r *Registry) Register(name string, ext Extension) error {
	if ext == nil {
		return fmt.Errorf("extension: extension is required")
	}
	if name == "" {
		return fmt.Errorf("extension: extension name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.extensions[name]; exists {
		return fmt.Errorf("extension: extension %q already registered", name)
	}

	r.extensions[name] = ext
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, ext Extension) {
	if err := r.Register(name, ext); err != nil {
		panic(err)
	}
}

// Get retrieves an extension by name.
func (r *Registry) Get(name string) (Extension, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ext, ok := r.extensions[name]
	if !ok {
		return nil, fmt.Errorf("extension: extension %q not found", name)
	}
	return ext, nil
}

// Has reports whether an extension is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.extensions[name]
	return ok
}

// Names returns a sorted list of registered extension names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.extensions))
	for name := range r.extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call dispatches to the extension registered under name.
func (r *Registry) Call(ctx *render.Context, name string, args ...any) (any, error) {
	ext, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return ext.Call(ctx, args...)
}
