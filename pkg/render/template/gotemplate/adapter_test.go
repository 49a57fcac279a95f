package gotemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func testEngine(t *testing.T, options ...Option) *Engine {
	t.Helper()
	if len(options) == 0 {
		options = []Option{WithFS(fstest.MapFS{})}
	}
	engine, err := New(options...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected an error without a template source")
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := testEngine(t)

	got, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("got %q", got)
	}
}

func TestEngine_RenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tpl": &fstest.MapFile{Data: []byte("Hi {{ who }}")},
	}
	engine := testEngine(t, WithFS(files))

	var buf bytes.Buffer
	got, err := engine.RenderTemplate("greeting", map[string]any{"who": "there"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hi there" {
		t.Fatalf("got %q", got)
	}
	if buf.String() != got {
		t.Fatalf("writer got %q", buf.String())
	}
}

func TestEngine_RenderDetectsInlineContent(t *testing.T) {
	files := fstest.MapFS{
		"page.tpl": &fstest.MapFile{Data: []byte("from file")},
	}
	engine := testEngine(t, WithFS(files))

	got, err := engine.Render("{{ x }}", map[string]any{"x": "inline"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "inline" {
		t.Fatalf("inline got %q", got)
	}

	got, err = engine.Render("page", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "from file" {
		t.Fatalf("file got %q", got)
	}
}

func TestEngine_GlobalData(t *testing.T) {
	engine := testEngine(t, WithFS(fstest.MapFS{}), WithGlobalData(map[string]any{"site": "renderkit"}))

	got, err := engine.RenderString("{{ site }}", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "renderkit" {
		t.Fatalf("got %q", got)
	}
}

func TestEngine_DefaultFilters(t *testing.T) {
	engine := testEngine(t)

	got, err := engine.RenderString("{% if items|truthy %}yes{% else %}no{% endif %}", map[string]any{"items": []any{}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "no" {
		t.Fatalf("empty collection got %q", got)
	}

	got, err = engine.RenderString("{{ items|tostring }}", map[string]any{"items": []any{1, 2, 3}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "1,2,3" {
		t.Fatalf("tostring got %q", got)
	}

	got, err = engine.RenderString("{{ s|trim }}", map[string]any{"s": "  padded  "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "padded" {
		t.Fatalf("trim got %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := testEngine(t)

	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		return strings.ToUpper(input.(string)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("duplicate filter must fail")
	}

	got, err := engine.RenderString("{{ word|shout }}", map[string]any{"word": "go"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "GO!" {
		t.Fatalf("got %q", got)
	}
}
