package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-choices/pkg/enum"
	pkgopenapi "github.com/goliatone/go-choices/pkg/openapi"
	"github.com/goliatone/go-choices/pkg/orchestrator"
	"github.com/goliatone/go-choices/pkg/render"
	"github.com/goliatone/go-choices/pkg/renderers/tui"
)

func main() {
	enumName := flag.String("enum", "", "enumeration name to render")
	renderer := flag.String("renderer", "html", "renderer to use")
	widget := flag.String("widget", render.WidgetSelect, "html widget: select or radios")
	field := flag.String("field", "", "form field name (defaults to the enum name)")
	output := flag.String("output", "", "output file (stdout if empty)")
	source := flag.String("source", "", "OpenAPI document path or URL")
	catalogDir := flag.String("catalog", "", "directory of enumeration catalog documents")
	interactive := flag.Bool("interactive", false, "prompt for a value instead of rendering markup")
	flag.Parse()

	if *enumName == "" {
		log.Fatal("an -enum name is required")
	}

	ctx := context.Background()

	options := []orchestrator.Option{}
	if *catalogDir != "" {
		options = append(options, orchestrator.WithCatalogFS(os.DirFS(*catalogDir)))
	}

	req := orchestrator.Request{
		Enum:      *enumName,
		Renderer:  *renderer,
		FieldName: *field,
		Widget:    *widget,
	}
	if *source != "" {
		src := parseSource(*source)
		if src == nil {
			log.Fatalf("invalid source: %q", *source)
		}
		req.Source = src
		if src.Kind() == pkgopenapi.SourceKindURL {
			options = append(options, orchestrator.WithLoader(pkgopenapi.NewLoader(
				pkgopenapi.WithHTTPClient(http.DefaultClient),
				pkgopenapi.WithRequestTimeout(30*time.Second),
			)))
		}
	}

	gen := orchestrator.New(options...)

	if *interactive {
		member, ok, err := pick(ctx, gen, req)
		if err != nil {
			log.Fatalf("Failed to prompt: %v", err)
		}
		if !ok {
			fmt.Println("(no selection)")
			return
		}
		fmt.Printf("%s\t%v\t%s\n", member.Name, member.Value, member.Label)
		return
	}

	markup, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to render enumeration: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, markup, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Markup written to %s\n", *output)
	} else {
		fmt.Println(string(markup))
	}
}

func pick(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request) (enum.Member, bool, error) {
	choices, err := gen.ResolveEnum(ctx, req)
	if err != nil {
		return enum.Member{}, false, err
	}
	prompter := tui.NewPrompter()
	return prompter.Pick(ctx, choices, fmt.Sprintf("Pick a %s", choices.Name()))
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
