package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-renderkit/pkg/render"
	"github.com/goliatone/go-renderkit/pkg/render/template"
	"github.com/goliatone/go-renderkit/pkg/render/template/gotemplate"
)

func main() {
	templatePath := flag.String("template", "", "template file to render")
	dataPath := flag.String("data", "", "YAML file with global bindings")
	output := flag.String("output", "", "output file (stdout if empty)")
	ask := flag.String("ask", "", "comma-separated binding names to prompt for")
	flag.Parse()

	if strings.TrimSpace(*templatePath) == "" {
		log.Fatalf("a -template file is required")
	}

	globals, err := loadGlobals(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	if err := promptForBindings(globals, *ask); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(130)
		}
		log.Fatalf("Failed to read bindings: %v", err)
	}

	dir, name := filepath.Split(*templatePath)
	if dir == "" {
		dir = "."
	}

	engine, err := gotemplate.New(
		gotemplate.WithBaseDir(dir),
		gotemplate.WithExtension(filepath.Ext(name)),
	)
	if err != nil {
		log.Fatalf("Failed to create template engine: %v", err)
	}

	unit, err := template.UnitFromTemplate(engine, name)
	if err != nil {
		log.Fatalf("Failed to build render unit: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to open output: %v", err)
		}
		defer f.Close()
		out = f
	}

	ctx := render.NewContext(globals, nil)
	if err := unit.Render(out, ctx, nil); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if *output != "" {
		fmt.Fprintf(os.Stderr, "Rendered to %s\n", *output)
	}
}

func loadGlobals(path string) (map[string]any, error) {
	globals := map[string]any{}
	if strings.TrimSpace(path) == "" {
		return globals, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, &globals); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return globals, nil
}

// promptForBindings asks for the named bindings interactively. Values already
// present in the data file are offered as defaults.
func promptForBindings(globals map[string]any, ask string) error {
	for _, name := range strings.Split(ask, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		prompt := &survey.Input{
			Message: fmt.Sprintf("Value for %q:", name),
		}
		if existing, ok := globals[name]; ok {
			prompt.Default = fmt.Sprintf("%v", existing)
		}
		var value string
		if err := survey.AskOne(prompt, &value); err != nil {
			return err
		}
		globals[name] = value
	}
	return nil
}
