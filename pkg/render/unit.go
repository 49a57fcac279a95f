package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goliatone/go-renderkit/pkg/objectmodel"
)

// BodyFunc is the executable body of a render unit, supplied by an external
// code-generation or template-compilation stage. It receives the merged
// global scope, the case-insensitively wrapped call arguments, and the
// caller's context.
type BodyFunc func(out io.Writer, scope *Bindings, arguments *Bindings, ctx *Context) error

// Unit is the basic unit of rendering. A unit owns zero or more named
// sub-units and carries a non-owning reference to the sub-unit registry of
// whichever unit it was attached to; that sibling reference is stamped
// exactly once, at attachment time, and is used only for scope construction.
//
// Units also satisfy objectmodel.Record: the properties of a unit are its
// sub-units, looked up case-insensitively.
type Unit struct {
	body     BodyFunc
	subUnits map[string]*Unit
	siblings map[string]*Unit
}

var _ objectmodel.Record = (*Unit)(nil)

// NewUnit builds a unit around body. A nil body renders nothing.
func NewUnit(body BodyFunc) *Unit {
	return &Unit{
		body:     body,
		subUnits: make(map[string]*Unit),
	}
}

// AddSubUnit registers child under a case-folded name and stamps the child's
// sibling reference to this unit's sub-unit registry, so the child still sees
// the units declared alongside it when rendered standalone later. Names are
// unique per owner; a duplicate (case-insensitively) replaces the previous
// registration. An already-attached child keeps its original sibling
// reference.
func (u *Unit) AddSubUnit(name string, child *Unit) {
	if child == nil {
		return
	}
	if child.siblings == nil {
		child.siblings = u.subUnits
	}
	u.subUnits[strings.ToLower(name)] = child
}

// SubUnit returns the sub-unit registered under name, case-insensitively, or
// nil.
func (u *Unit) SubUnit(name string) *Unit {
	return u.subUnits[strings.ToLower(name)]
}

// GetProperty implements objectmodel.Record over the unit's sub-units.
func (u *Unit) GetProperty(name string) any {
	if sub := u.SubUnit(name); sub != nil {
		return sub
	}
	return nil
}

// PropertyNames implements objectmodel.Record; names come back folded and
// sorted.
func (u *Unit) PropertyNames() []string {
	names := make([]string, 0, len(u.subUnits))
	for name := range u.subUnits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render executes the unit's body against a freshly built scope. The scope
// starts from the context's global bindings, overlaid with the unit's
// siblings and then its own sub-units, so on a name collision sub-units win
// over siblings and siblings win over globals. The arguments map is wrapped
// case-insensitively. Both the scope and the argument bindings are created
// for this call only; no state is retained across calls.
func (u *Unit) Render(out io.Writer, ctx *Context, arguments map[string]any) error {
	if ctx == nil {
		ctx = NewContext(nil, nil)
	}
	if u.body == nil {
		return nil
	}
	return u.body(out, u.buildGlobalScope(ctx), NewBindings(arguments), ctx)
}

func (u *Unit) buildGlobalScope(ctx *Context) *Bindings {
	scope := ctx.Globals().Clone()
	for name, sibling := range u.siblings {
		scope.Put(name, sibling)
	}
	for name, sub := range u.subUnits {
		scope.Put(name, sub)
	}
	return scope
}

// CallUnit invokes target as a render unit. The target must already be a
// *Unit (no property walking happens here) and each failure cause is
// classified distinctly: nil target, primitive target, string target, or any
// other non-unit value. On success the call arguments are coerced through
// the context model's ToStringMap and the target renders with the caller's
// context, so the callee sees the caller's global bindings but none of its
// local scope.
func CallUnit(out io.Writer, ctx *Context, target any, args any) error {
	if ctx == nil {
		ctx = NewContext(nil, nil)
	}
	unit, ok := target.(*Unit)
	if !ok || unit == nil {
		switch {
		case target == nil, ok && unit == nil:
			return ErrNilTemplate
		case ctx.ObjectModel().IsPrimitive(target):
			return fmt.Errorf("%w: %v", ErrPrimitiveTemplate, target)
		default:
			if s, isString := target.(string); isString {
				return fmt.Errorf("%w: %q", ErrStringTemplate, s)
			}
			return fmt.Errorf("%w: %T", ErrNotTemplate, target)
		}
	}
	return unit.Render(out, ctx, ctx.ObjectModel().ToStringMap(args))
}
