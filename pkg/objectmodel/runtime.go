package objectmodel

import "time"

// Model is the object-model surface the render runtime depends on. It exists
// so hosts can layer domain-specific resolution (additional capability
// checks, access control) over the default behaviour.
type Model interface {
	IsPrimitive(v any) bool
	IsDate(v any) bool
	IsNumber(v any) bool
	IsCollection(v any) bool
	ToBoolean(v any) bool
	ToNumber(v any) any
	ToTime(v any) (time.Time, bool)
	ToString(v any) string
	ToCollection(v any) []any
	ToStringMap(v any) map[string]any
	ResolveProperty(target, property any) any
}

// Runtime is the default Model. It delegates to the package-level functions,
// with two record-aware refinements: a Record's own GetProperty is consulted
// before any generic probing, so a record implementor's intent is never
// shadowed by an accidental field or method of the same name, and a Record
// normalises to the collection of its property names.
type Runtime struct{}

var _ Model = Runtime{}

func (Runtime) IsPrimitive(v any) bool           { return IsPrimitive(v) }
func (Runtime) IsDate(v any) bool                { return IsDate(v) }
func (Runtime) IsNumber(v any) bool              { return IsNumber(v) }
func (Runtime) IsCollection(v any) bool          { return IsCollection(v) }
func (Runtime) ToBoolean(v any) bool             { return ToBoolean(v) }
func (Runtime) ToNumber(v any) any               { return ToNumber(v) }
func (Runtime) ToTime(v any) (time.Time, bool)   { return ToTime(v) }
func (Runtime) ToString(v any) string            { return ToString(v) }
func (Runtime) ToStringMap(v any) map[string]any { return ToStringMap(v) }

func (Runtime) ToCollection(v any) []any {
	if record, ok := v.(Record); ok {
		names := record.PropertyNames()
		out := make([]any, len(names))
		for i, name := range names {
			out[i] = name
		}
		return out
	}
	return ToCollection(v)
}

func (Runtime) ResolveProperty(target, property any) any {
	if target == nil || property == nil {
		return nil
	}
	var resolved any
	if index, ok := numericIndex(property); ok {
		resolved = GetIndex(target, index)
	}
	if resolved == nil {
		resolved = recordProperty(target, property)
	}
	return resolved
}

// recordProperty resolves a named property with Record precedence, falling
// back to the generic probe chain when the record has no answer (or the
// target is not a record at all).
func recordProperty(target, property any) any {
	if target == nil || property == nil {
		return nil
	}
	name := ToString(property)
	var resolved any
	if record, ok := target.(Record); ok && name != "" {
		resolved = record.GetProperty(name)
	}
	if resolved == nil {
		resolved = ResolveProperty(target, property)
	}
	return resolved
}
