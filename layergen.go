// Package layergen generates per-layer SVG diagrams for a QMK keymap: it
// reads the keymap configuration and an SVG template with KEY/SUB
// placeholders, interprets each key-code token into a human-readable legend,
// and renders one document per layer.
package layergen

import (
	"context"

	"github.com/phreed/preonic-keyboard/pkg/keycode"
	"github.com/phreed/preonic-keyboard/pkg/keymap"
	"github.com/phreed/preonic-keyboard/pkg/orchestrator"
	"github.com/phreed/preonic-keyboard/pkg/render"
)

// Keymap aliases the configuration model for convenience.
type Keymap = keymap.Keymap

// Legend aliases the interpreter's label pair.
type Legend = keycode.Legend

// RenderSet aliases the rendered output set.
type RenderSet = render.RenderSet

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateLayers loads the keymap configuration and SVG template from disk
// and renders every layer. It is the simplest entry point for callers that
// just want the rendered documents.
func GenerateLayers(ctx context.Context, configPath, templatePath string, options ...orchestrator.Option) (render.RenderSet, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		ConfigSource:   keymap.SourceFromFile(configPath),
		TemplateSource: keymap.SourceFromFile(templatePath),
	})
}

// WriteLayers persists a rendered set into dir, one file per layer.
func WriteLayers(dir string, set render.RenderSet) ([]string, error) {
	return orchestrator.Write(dir, set)
}
