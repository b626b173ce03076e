package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-formhelpers/internal/prompt"
	"github.com/goliatone/go-formhelpers/pkg/debug"
	"github.com/goliatone/go-formhelpers/pkg/escape"
	"github.com/goliatone/go-formhelpers/pkg/fields"
	"github.com/goliatone/go-formhelpers/pkg/formspec"
	"github.com/goliatone/go-formhelpers/pkg/schemaform"
	"github.com/goliatone/go-formhelpers/pkg/tmpl"
)

func main() {
	specPath := flag.String("spec", "", "form definition file (JSON or YAML)")
	openapiPath := flag.String("openapi", "", "OpenAPI document to derive the form from")
	schemaName := flag.String("schema", "", "component schema name used with -openapi")
	templatePath := flag.String("template", "", "pongo2 page template; fields are exposed as `fields`")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for field values before rendering")
	sanitizeLabels := flag.Bool("sanitize-labels", false, "allow inline markup in label text")
	debugEnabled := flag.Bool("debug", debug.FromEnv(nil).Enabled(), "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debugEnabled {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	dbg := debug.New(*debugEnabled, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	doc, err := loadDocument(ctx, *specPath, *openapiPath, *schemaName)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}
	dbg.Log(doc)

	if *interactive {
		values, err := prompt.Collect(ctx, prompt.NewSurveyDriver(), doc)
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
		doc = doc.Apply(values)
	}

	options := []fields.Option{fields.WithLogger(logger)}
	if *sanitizeLabels {
		options = append(options, fields.WithEscaper(escape.NewSanitizing(nil)))
	}
	renderer := fields.New(options...)

	markup, err := renderMarkup(doc, renderer, *templatePath)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	if err := fields.Emit(os.Stdout, markup); err != nil {
		dbg.Trigger(fmt.Sprintf("write output: %v", err), debug.LevelWarning)
	}
}

// renderMarkup renders doc directly, or through the page template when one is
// given.
func renderMarkup(doc formspec.Document, renderer *fields.Renderer, templatePath string) (string, error) {
	if strings.TrimSpace(templatePath) == "" {
		return doc.Render(renderer), nil
	}
	source, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("read template: %w", err)
	}
	return tmpl.RenderString(string(source), map[string]any{"fields": doc.Fields}, renderer)
}

func loadDocument(ctx context.Context, specPath, openapiPath, schemaName string) (formspec.Document, error) {
	switch {
	case strings.TrimSpace(specPath) != "":
		return formspec.LoadFile(specPath)
	case strings.TrimSpace(openapiPath) != "":
		if strings.TrimSpace(schemaName) == "" {
			return formspec.Document{}, fmt.Errorf("-schema is required with -openapi")
		}
		schema, err := schemaform.LoadComponent(ctx, openapiPath, schemaName)
		if err != nil {
			return formspec.Document{}, err
		}
		return schemaform.FromSchema(schema), nil
	default:
		return formspec.Document{}, fmt.Errorf("one of -spec or -openapi is required")
	}
}
