package extension

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/goliatone/go-renderkit/pkg/objectmodel"
	"github.com/goliatone/go-renderkit/pkg/render"
)

// formatExtension substitutes indexed placeholders of the form {0}, {1}, ...
// in the source string with the corresponding replacement values. Unmatched
// placeholders are left in place.
func formatExtension(ctx *render.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("extension: format requires a source string")
	}
	model := modelOf(ctx)
	source := model.ToString(args[0])

	var replacements []any
	if len(args) > 1 {
		replacements = model.ToCollection(args[1])
	}
	return substitutePlaceholders(source, replacements, model), nil
}

func substitutePlaceholders(source string, replacements []any, model objectmodel.Model) string {
	var b strings.Builder
	b.Grow(len(source))
	for i := 0; i < len(source); {
		open := strings.IndexByte(source[i:], '{')
		if open < 0 {
			b.WriteString(source[i:])
			break
		}
		open += i
		close := strings.IndexByte(source[open:], '}')
		if close < 0 {
			b.WriteString(source[i:])
			break
		}
		close += open

		index, err := strconv.Atoi(source[open+1 : close])
		if err != nil || index < 0 || index >= len(replacements) {
			b.WriteString(source[i : close+1])
			i = close + 1
			continue
		}
		b.WriteString(source[i:open])
		b.WriteString(model.ToString(replacements[index]))
		i = close + 1
	}
	return b.String()
}

// joinExtension joins the elements of a collection with a separator. The
// separator defaults to a comma followed by a space.
func joinExtension(ctx *render.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("extension: join requires a collection")
	}
	model := modelOf(ctx)

	separator := ", "
	if len(args) > 1 {
		separator = model.ToString(args[1])
	}

	items := model.ToCollection(args[0])
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, model.ToString(item))
	}
	return strings.Join(parts, separator), nil
}

// uriManipulationExtension rewrites a URI according to an options map. The
// recognised options are scheme, domain, path, prependPath, appendPath,
// extension, fragment, query, addQuery, and removeQuery.
func uriManipulationExtension(ctx *render.Context, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("extension: uriManipulation requires a URI")
	}
	model := modelOf(ctx)
	raw := model.ToString(args[0])

	uri, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("extension: uriManipulation: parse %q: %w", raw, err)
	}

	var options map[string]any
	if len(args) > 1 {
		options = model.ToStringMap(args[1])
	}

	if scheme, ok := options["scheme"]; ok {
		uri.Scheme = model.ToString(scheme)
	}
	if domain, ok := options["domain"]; ok {
		uri.Host = model.ToString(domain)
	}
	if p, ok := options["path"]; ok {
		uri.Path = model.ToString(p)
	}
	if prepend, ok := options["prependPath"]; ok {
		uri.Path = joinPath(model.ToString(prepend), uri.Path)
	}
	if appendTo, ok := options["appendPath"]; ok {
		uri.Path = joinPath(uri.Path, model.ToString(appendTo))
	}
	if ext, ok := options["extension"]; ok {
		uri.Path = replaceExtension(uri.Path, model.ToString(ext))
	}
	if fragment, ok := options["fragment"]; ok {
		uri.Fragment = model.ToString(fragment)
	}

	query := uri.Query()
	if q, ok := options["query"]; ok {
		query = url.Values{}
		addQueryValues(query, model.ToStringMap(q), model)
	}
	if q, ok := options["addQuery"]; ok {
		addQueryValues(query, model.ToStringMap(q), model)
	}
	if remove, ok := options["removeQuery"]; ok {
		for _, name := range model.ToCollection(remove) {
			query.Del(model.ToString(name))
		}
	}
	uri.RawQuery = query.Encode()

	return uri.String(), nil
}

func joinPath(left, right string) string {
	left = strings.TrimSuffix(left, "/")
	right = strings.TrimPrefix(right, "/")
	if left == "" {
		return "/" + right
	}
	if right == "" {
		return left
	}
	return left + "/" + right
}

func replaceExtension(p, ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		return p
	}
	if current := path.Ext(p); current != "" {
		p = strings.TrimSuffix(p, current)
	}
	return p + "." + ext
}

func addQueryValues(query url.Values, params map[string]any, model objectmodel.Model) {
	for name, value := range params {
		if model.IsCollection(value) {
			for _, item := range model.ToCollection(value) {
				query.Add(name, model.ToString(item))
			}
			continue
		}
		query.Add(name, model.ToString(value))
	}
}

func modelOf(ctx *render.Context) objectmodel.Model {
	if ctx != nil {
		return ctx.ObjectModel()
	}
	return objectmodel.Runtime{}
}
