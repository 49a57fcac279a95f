package extension

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-renderkit/pkg/render"
)

// Escaping contexts accepted by the xss extension.
const (
	ContextHTML         = "html"
	ContextText         = "text"
	ContextAttribute    = "attribute"
	ContextURI          = "uri"
	ContextScriptString = "scriptString"
	ContextNumber       = "number"
	ContextUnsafe       = "unsafe"
)

// htmlPolicy keeps user-generated markup while stripping script vectors.
var htmlPolicy = bluemonday.UGCPolicy()

// xssExtension escapes or filters a value for a target output context. The
// first argument is the value, the second the context name; an unknown or
// missing context falls back to text escaping. Values that cannot be made
// safe for their context collapse to a harmless zero value rather than
// passing through.
func xssExtension(ctx *render.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("extension: xss requires a value")
	}
	model := modelOf(ctx)

	escapingContext := ContextText
	if len(args) > 1 {
		escapingContext = model.ToString(args[1])
	}

	if escapingContext == ContextNumber {
		if n := model.ToNumber(args[0]); n != nil {
			return n, nil
		}
		return 0, nil
	}

	value := model.ToString(args[0])
	switch escapingContext {
	case ContextHTML:
		return htmlPolicy.Sanitize(value), nil
	case ContextURI:
		return safeURI(value), nil
	case ContextScriptString:
		return escapeScriptString(value), nil
	case ContextUnsafe:
		return value, nil
	default:
		return html.EscapeString(value), nil
	}
}

// safeURI admits relative references and http/https/mailto/tel absolute
// URIs. Anything else, including unparsable input, collapses to the empty
// string.
func safeURI(value string) string {
	uri, err := url.Parse(value)
	if err != nil {
		return ""
	}
	switch strings.ToLower(uri.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return uri.String()
	default:
		return ""
	}
}

var scriptStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"<", `\u003c`,
	">", `\u003e`,
)

func escapeScriptString(value string) string {
	return scriptStringEscaper.Replace(value)
}
