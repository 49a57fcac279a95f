package objectmodel

import (
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ToBoolean coerces v to a boolean. nil, zero-valued numbers, false, blank
// strings, and empty collections and maps are false; everything else is true.
// Note that the strings "false" and "FALSE" are truthy: only emptiness and
// blankness yield false, never semantic falsiness.
func ToBoolean(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return strings.TrimSpace(t) != ""
	case Optional:
		inner, present := t.Value()
		return present && ToBoolean(inner)
	case Sequence:
		return seqHasElements(t.Seq())
	}
	if seq, ok := asSeq(v); ok {
		return seqHasElements(seq)
	}
	if n, ok := numericValue(v); ok {
		return n != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr:
		if rv.IsNil() {
			return false
		}
		return ToBoolean(rv.Elem().Interface())
	}
	return true
}

// ToNumber coerces v to a numeric value. Already-numeric values are returned
// unchanged; everything else is converted to its canonical string form and
// parsed with a lenient grammar covering decimal, hex ("0x"), octal, binary,
// and fractional/exponent forms. Unparseable input yields nil.
func ToNumber(v any) any {
	if v == nil {
		return nil
	}
	if _, ok := numericValue(v); ok {
		return v
	}
	if inner, wrapped := unwrap(v); wrapped {
		if inner == nil {
			return nil
		}
		return ToNumber(inner)
	}
	return parseNumber(strings.TrimSpace(ToString(v)))
}

func parseNumber(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return nil
}

// ToTime converts any of the supported temporal shapes (time.Time,
// *time.Time, or a Time() time.Time accessor) to the canonical instant.
// Unsupported input yields the zero time and false.
func ToTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case timeValuer:
		return t.Time(), true
	}
	return time.Time{}, false
}

// ToString converts v to its string form. nil becomes the empty string,
// strings are returned as-is, named enumerants (fmt.Stringer) yield their
// symbolic name, and collections are comma-joined per element. Everything
// else falls back to the default string conversion.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case Optional:
		inner, present := t.Value()
		if !present {
			return ""
		}
		return ToString(inner)
	}
	if IsPrimitive(v) {
		return fmt.Sprintf("%v", v)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return ""
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if rv.Kind() == reflect.Ptr {
		return ToString(rv.Elem().Interface())
	}
	if _, ok := v.(Sequence); ok {
		return CollectionToString(ToCollection(v))
	}
	if _, ok := asSeq(v); ok {
		return CollectionToString(ToCollection(v))
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Chan:
		return CollectionToString(ToCollection(v))
	}
	return fmt.Sprintf("%v", v)
}

// CollectionToString joins the elements with "," using ToString per element.
// Embedded commas are not escaped; this is a simple join, not CSV.
func CollectionToString(collection []any) string {
	if len(collection) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range collection {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(ToString(item))
	}
	return b.String()
}

// ToCollection normalises v to an ordered element slice. Slices and arrays
// yield their elements in index order, maps yield their keys in map iteration
// order, and iterators, sequences, and channels are materialised once.
// Anything else wraps into a single-element slice. A []any input is returned
// unchanged, so the operation is idempotent on already-list-shaped input.
//
// Materialising a bare iterator consumes it: a second call over the same
// exhausted iterator yields an empty result. Channels must be closed by the
// producer before they can be fully drained.
func ToCollection(v any) []any {
	switch t := v.(type) {
	case nil:
		return []any{}
	case []any:
		return t
	case Optional:
		inner, present := t.Value()
		if !present {
			return []any{}
		}
		return ToCollection(inner)
	case Sequence:
		return FromSeq(t.Seq())
	}
	if seq, ok := asSeq(v); ok {
		return FromSeq(seq)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		out := make([]any, 0, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out = append(out, it.Key().Interface())
		}
		return out
	case reflect.Chan:
		out := []any{}
		for {
			item, ok := rv.Recv()
			if !ok {
				return out
			}
			out = append(out, item.Interface())
		}
	case reflect.Ptr:
		if rv.IsNil() {
			return []any{}
		}
		return ToCollection(rv.Elem().Interface())
	}
	return []any{v}
}

// FromSeq materialises an iterator into a slice. A nil iterator yields an
// empty slice.
func FromSeq(seq iter.Seq[any]) []any {
	if seq == nil {
		return []any{}
	}
	out := []any{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// ToStringMap coerces v to a string-keyed map. A map[string]any is returned
// as-is, other map kinds are rebuilt with ToString-coerced keys, and a Record
// yields a fresh mapping of every property name to its resolved value.
// Anything else yields an empty, non-nil map.
func ToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return t
	case Record:
		names := t.PropertyNames()
		out := make(map[string]any, len(names))
		for _, name := range names {
			out[name] = t.GetProperty(name)
		}
		return out
	case Optional:
		inner, present := t.Value()
		if !present {
			return map[string]any{}
		}
		return ToStringMap(inner)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out[ToString(it.Key().Interface())] = it.Value().Interface()
		}
		return out
	case reflect.Ptr:
		if rv.IsNil() {
			return map[string]any{}
		}
		return ToStringMap(rv.Elem().Interface())
	}
	return map[string]any{}
}

func seqHasElements(seq iter.Seq[any]) bool {
	if seq == nil {
		return false
	}
	for range seq {
		return true
	}
	return false
}
