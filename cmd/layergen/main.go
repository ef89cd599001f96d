package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/phreed/preonic-keyboard/pkg/keymap"
	"github.com/phreed/preonic-keyboard/pkg/orchestrator"
	"github.com/phreed/preonic-keyboard/pkg/render"
)

const (
	defaultConfig   = "phreedom.json"
	defaultTemplate = "LAYOUT_ortho_5x12-template.svg"
)

func main() {
	output := flag.String("output", "keyboard_layers", "output directory for rendered layers")
	rendererName := flag.String("renderer", "", "renderer to use (defaults to svg)")
	noHints := flag.Bool("no-hints", false, "leave the SUB placeholders empty")
	yes := flag.Bool("y", false, "overwrite existing output without prompting")
	flag.Parse()

	log.SetFlags(0)

	configPath := defaultConfig
	if flag.NArg() > 0 {
		configPath = flag.Arg(0)
	}
	templatePath := defaultTemplate
	if flag.NArg() > 1 {
		templatePath = flag.Arg(1)
	}

	fmt.Printf("Loading keyboard configuration from: %s\n", configPath)
	fmt.Printf("Using template: %s\n", templatePath)

	ctx := context.Background()

	gen := orchestrator.New()
	set, err := gen.Generate(ctx, orchestrator.Request{
		ConfigSource:   keymap.SourceFromFile(configPath),
		TemplateSource: keymap.SourceFromFile(templatePath),
		Renderer:       *rendererName,
		RenderOptions:  render.RenderOptions{OmitHints: *noHints},
	})
	if err != nil {
		log.Fatalf("Failed to generate layers: %v", err)
	}

	if !*yes && dirHasFiles(*output) {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Output directory %q already contains files. Overwrite?", *output),
			Default: true,
		}
		if err := survey.AskOne(prompt, &overwrite); err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		if !overwrite {
			fmt.Println("Aborted.")
			os.Exit(1)
		}
	}

	paths, err := orchestrator.Write(*output, set)
	if err != nil {
		log.Fatalf("Failed to write layers: %v", err)
	}

	for _, path := range paths {
		fmt.Printf("Generated: %s\n", path)
	}
	for _, warning := range set.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	fmt.Printf("\nAll layer visualizations saved to: %s\n", *output)
}

func dirHasFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
