// Package objectmodel provides the dynamic object model used by the render
// runtime: type classification, canonical-form coercion, and property/index
// resolution over values of unknown shape.
//
// Every operation is total. Absence of an answer is expressed as false, nil,
// or an empty result; no operation panics or returns an error. Values may
// participate explicitly through the Record, EnumType, Optional, and Sequence
// capability interfaces, or implicitly through reflection over exported
// fields and zero-argument accessor methods.
package objectmodel
