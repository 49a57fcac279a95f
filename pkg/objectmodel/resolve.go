package objectmodel

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// ResolveProperty attempts to resolve property against target. A numeric
// property is tried as an index first; otherwise (or when the index yields
// nothing) the property's string name is probed in strict order: optional
// unwrapping, map key lookup, enumerant lookup, exported field lookup, and
// finally accessor-method invocation. A nil target, a nil property, or an
// empty name resolves to nil, and any reflection failure along the way is
// treated as "no result", never surfaced as an error.
func ResolveProperty(target, property any) (result any) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()
	if target == nil || property == nil {
		return nil
	}
	var resolved any
	if index, ok := numericIndex(property); ok {
		resolved = GetIndex(target, index)
	}
	if resolved != nil {
		return resolved
	}
	name := ToString(property)
	if name == "" {
		return nil
	}
	if o, ok := target.(Optional); ok {
		inner, present := o.Value()
		if !present {
			return nil
		}
		return ResolveProperty(inner, property)
	}
	if resolved = mapValue(target, property, name); resolved != nil {
		return resolved
	}
	if resolved = enumerantValue(target, name); resolved != nil {
		return resolved
	}
	if resolved = fieldValue(target, name); resolved != nil {
		return resolved
	}
	return methodValue(target, name)
}

// GetIndex returns the element at position index of an ordered target: the
// enumerant at that ordinal for an EnumType, the element for slices and
// arrays, or the element of the target's collection normalisation. Maps are
// never indexable through this path, even when their keys happen to be
// integers. Out-of-range and negative indices yield nil, never a panic.
func GetIndex(target any, index int) (result any) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()
	if target == nil || index < 0 {
		return nil
	}
	if enum, ok := target.(EnumType); ok {
		values := enum.Enumerants()
		if index < len(values) {
			return values[index]
		}
		return nil
	}
	if o, ok := target.(Optional); ok {
		inner, present := o.Value()
		if !present {
			return nil
		}
		return GetIndex(inner, index)
	}
	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if index < rv.Len() {
			return rv.Index(index).Interface()
		}
		return nil
	case reflect.Map:
		return nil
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return GetIndex(rv.Elem().Interface(), index)
	}
	collection := ToCollection(target)
	if index < len(collection) {
		return collection[index]
	}
	return nil
}

// numericIndex reports whether property carries a numeric value usable as an
// index, truncating fractional input the way an integral narrowing would.
func numericIndex(property any) (int, bool) {
	rv := reflect.ValueOf(property)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return int(rv.Float()), true
	}
	return 0, false
}

// mapValue looks the property up as a map key: first under its original
// value (converting between numeric key kinds where needed), then under its
// string name.
func mapValue(target, property any, name string) any {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Map {
		return nil
	}
	keyType := rv.Type().Key()
	if pv := reflect.ValueOf(property); pv.IsValid() {
		switch {
		case pv.Type().AssignableTo(keyType):
			if value := rv.MapIndex(pv); value.IsValid() {
				return value.Interface()
			}
		case isNumericKind(pv.Kind()) && isNumericKind(keyType.Kind()):
			if value := rv.MapIndex(pv.Convert(keyType)); value.IsValid() {
				return value.Interface()
			}
		}
	}
	if keyType.Kind() == reflect.String {
		nv := reflect.ValueOf(name)
		if !nv.Type().AssignableTo(keyType) {
			nv = nv.Convert(keyType)
		}
		if value := rv.MapIndex(nv); value.IsValid() {
			return value.Interface()
		}
	}
	return nil
}

func enumerantValue(target any, name string) any {
	enum, ok := target.(EnumType)
	if !ok {
		return nil
	}
	if value, found := enum.Enumerant(name); found {
		return value
	}
	return nil
}

// fieldValue reads an exported struct field by exact name, then by
// capitalised name. The slice/array pseudo-field "length" maps to the
// element count. Unexported fields are invisible.
func fieldValue(target any, name string) any {
	rv := reflect.ValueOf(target)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if name == "length" {
			return rv.Len()
		}
		return nil
	case reflect.Struct:
		typ := rv.Type()
		for _, candidate := range nameCandidates(name) {
			field, ok := typ.FieldByName(candidate)
			if !ok || !field.IsExported() {
				continue
			}
			return rv.FieldByIndex(field.Index).Interface()
		}
	}
	return nil
}

// methodValue invokes a zero-argument exported method named after the
// property: the capitalised name itself, then its Get- and Is-prefixed
// forms, in that order. Methods taking arguments or returning nothing are
// skipped, and unexported methods are unreachable by construction.
func methodValue(target any, name string) any {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return nil
	}
	capitalized := capitalize(name)
	candidates := []string{name, capitalized, "Get" + capitalized, "Is" + capitalized}
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		method := rv.MethodByName(candidate)
		if !method.IsValid() {
			continue
		}
		mt := method.Type()
		if mt.NumIn() != 0 || mt.NumOut() == 0 {
			continue
		}
		return method.Call(nil)[0].Interface()
	}
	return nil
}

func nameCandidates(name string) []string {
	capitalized := capitalize(name)
	if capitalized == name {
		return []string{name}
	}
	return []string{name, capitalized}
}

func capitalize(name string) string {
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	upper := unicode.ToUpper(first)
	if upper == first {
		return name
	}
	return string(upper) + name[size:]
}
