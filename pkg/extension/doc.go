// Package extension provides the runtime extension mechanism: named
// host-pluggable functions that template-level protocols dispatch to by
// well-known name. The package ships implementations for the general-purpose
// names (format, join, uriManipulation, xss, i18n); the resource-oriented
// names (include, includeResource, use) are declared here but implemented by
// the embedding host.
package extension
