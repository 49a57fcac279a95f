// Package render implements the render-unit composition model: reusable
// template-execution nodes that declare named sub-units, call each other with
// freshly coerced argument maps, and see a merged, case-insensitive variable
// scope built per render call from global bindings, sibling units, and local
// sub-units.
//
// Units are constructed once, at template-compilation time, and reused across
// many render calls. Construction must fully precede any concurrent
// rendering: sub-unit and sibling maps are populated once and never mutated
// afterwards, and no locks are taken. Scope and argument bindings are fresh
// per call and never shared between calls.
package render
