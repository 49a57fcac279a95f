// Package template defines the engine-agnostic rendering seam that turns
// template sources into render unit bodies. Engines plug in behind the
// Renderer interface; the gotemplate sub-package provides the default
// pongo2-backed implementation.
package template
