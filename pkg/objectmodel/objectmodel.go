package objectmodel

import (
	"iter"
	"reflect"
	"strings"
	"time"
)

// Record is the model's first-class structured type. Implementations expose
// named properties directly instead of relying on reflection, and take
// precedence over generic probing during resolution. Property names are
// case-sensitive at this layer.
type Record interface {
	GetProperty(name string) any
	PropertyNames() []string
}

// EnumType describes a closed set of named constants. It plays the role of a
// type descriptor for an enumerated type: resolving a name against it yields
// the matching enumerant, and indexing it yields the enumerant at that
// ordinal.
type EnumType interface {
	Enumerant(name string) (any, bool)
	Enumerants() []any
}

// Optional is the explicit optional-wrapper contract. Wrappers are
// transparent to every coercion and resolution operation: the contained value
// is unwrapped and the operation recurses, and an absent value degrades to
// the operation's empty result. Plain pointers participate the same way, with
// nil meaning absent.
type Optional interface {
	Value() (any, bool)
}

// Sequence is the iterable capability. The returned iterator may be
// single-use; coercions that materialise it consume it.
type Sequence interface {
	Seq() iter.Seq[any]
}

// timeValuer is the calendar-like temporal shape: anything carrying an
// instant behind a zero-argument accessor.
type timeValuer interface {
	Time() time.Time
}

var primitiveTypes = func() map[reflect.Type]struct{} {
	set := make(map[reflect.Type]struct{})
	for _, v := range []any{
		false,
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0),
		complex64(0), complex128(0),
	} {
		set[reflect.TypeOf(v)] = struct{}{}
	}
	return set
}()

// IsPrimitive reports whether v's concrete type is exactly one of the
// built-in scalar types, with nil standing in as the null marker. Named types
// with a scalar underlying kind are not primitive; the check is an
// exact-type match, not a kind match.
func IsPrimitive(v any) bool {
	if v == nil {
		return true
	}
	_, ok := primitiveTypes[reflect.TypeOf(v)]
	return ok
}

// IsDate reports whether v is one of the supported temporal shapes: a
// time.Time, a non-nil *time.Time, or a value with a zero-argument
// Time() time.Time accessor.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	case timeValuer:
		return true
	}
	return false
}

// IsNumber reports whether v is already numeric or whether its string form
// parses under the lenient numeric grammar used by ToNumber. nil and blank
// input are never numeric.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := numericValue(v); ok {
		return true
	}
	if inner, wrapped := unwrap(v); wrapped {
		return inner != nil && IsNumber(inner)
	}
	return parseNumber(strings.TrimSpace(ToString(v))) != nil
}

// IsCollection reports whether v is an ordered, iterable shape: a slice, an
// array, a Sequence, a bare iterator, or a channel. Maps are intentionally
// not collections under this predicate; they only normalise to one through
// ToCollection.
func IsCollection(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Sequence); ok {
		return true
	}
	if _, ok := asSeq(v); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Chan:
		return true
	}
	return false
}

// numericValue extracts v as a float64 when its kind is numeric. Named
// numeric types qualify; this is the kind-based counterpart to IsPrimitive's
// exact-type check.
func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// unwrap peels a single optional layer: an Optional wrapper or a pointer.
// The second return reports whether a layer was peeled; an absent value
// unwraps to nil.
func unwrap(v any) (any, bool) {
	if o, ok := v.(Optional); ok {
		inner, present := o.Value()
		if !present {
			return nil, true
		}
		return inner, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, true
		}
		return rv.Elem().Interface(), true
	}
	return v, false
}

// asSeq recognises bare iterator values, whether typed as iter.Seq[any] or as
// the equivalent raw function type.
func asSeq(v any) (iter.Seq[any], bool) {
	switch seq := v.(type) {
	case iter.Seq[any]:
		return seq, true
	case func(func(any) bool):
		return seq, true
	}
	return nil, false
}
