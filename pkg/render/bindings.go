package render

import (
	"iter"
	"strings"
)

// Bindings is a string-keyed mapping with case-insensitive keys. Lookup,
// containment, and removal fold the key before comparing; storage preserves
// the literal casing of the most recent Put. Enumeration, however, exposes
// the folded form of each key, not the originally-inserted casing, so callers
// iterating a scope see canonical lower-case names.
type Bindings struct {
	values map[string]any    // original key -> value
	keys   map[string]string // folded key -> original key
}

// NewBindings builds a fresh Bindings from src. The input map is copied; nil
// is a valid, empty source.
func NewBindings(src map[string]any) *Bindings {
	b := &Bindings{
		values: make(map[string]any, len(src)),
		keys:   make(map[string]string, len(src)),
	}
	for key, value := range src {
		b.Put(key, value)
	}
	return b
}

// Get returns the value stored under key, compared case-insensitively, or
// nil when absent.
func (b *Bindings) Get(key string) any {
	value, _ := b.Lookup(key)
	return value
}

// Lookup is Get with an explicit presence report.
func (b *Bindings) Lookup(key string) (any, bool) {
	original, ok := b.keys[strings.ToLower(key)]
	if !ok {
		return nil, false
	}
	return b.values[original], true
}

// Has reports whether a value is stored under key, case-insensitively.
func (b *Bindings) Has(key string) bool {
	_, ok := b.keys[strings.ToLower(key)]
	return ok
}

// Put stores value under key. When key folds to an existing entry, that
// entry is overwritten and re-stamped with the new literal casing.
func (b *Bindings) Put(key string, value any) {
	folded := strings.ToLower(key)
	if original, ok := b.keys[folded]; ok && original != key {
		delete(b.values, original)
	}
	b.keys[folded] = key
	b.values[key] = value
}

// Delete removes the entry key folds to, if any, and returns its value.
func (b *Bindings) Delete(key string) any {
	folded := strings.ToLower(key)
	original, ok := b.keys[folded]
	if !ok {
		return nil
	}
	value := b.values[original]
	delete(b.keys, folded)
	delete(b.values, original)
	return value
}

// Len returns the number of entries.
func (b *Bindings) Len() int {
	return len(b.keys)
}

// Keys returns the folded form of every key.
func (b *Bindings) Keys() []string {
	out := make([]string, 0, len(b.keys))
	for folded := range b.keys {
		out = append(out, folded)
	}
	return out
}

// Entries iterates the bindings as folded-key/value pairs.
func (b *Bindings) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for folded, original := range b.keys {
			if !yield(folded, b.values[original]) {
				return
			}
		}
	}
}

// Snapshot materialises the folded-key view into a fresh plain map.
func (b *Bindings) Snapshot() map[string]any {
	out := make(map[string]any, len(b.keys))
	for folded, original := range b.keys {
		out[folded] = b.values[original]
	}
	return out
}

// Clone copies the bindings, preserving stored key casings.
func (b *Bindings) Clone() *Bindings {
	clone := &Bindings{
		values: make(map[string]any, len(b.values)),
		keys:   make(map[string]string, len(b.keys)),
	}
	for key, value := range b.values {
		clone.values[key] = value
	}
	for folded, original := range b.keys {
		clone.keys[folded] = original
	}
	return clone
}
