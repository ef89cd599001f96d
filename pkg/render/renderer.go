package render

import (
	"context"

	"github.com/phreed/preonic-keyboard/pkg/keymap"
)

// Renderer converts a keymap plus a template document into one rendered
// diagram per layer.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, km keymap.Keymap, template keymap.Document, options RenderOptions) (RenderSet, error)
}

// RenderOptions describe per-request toggles renderers can honour without
// changing the pipeline.
type RenderOptions struct {
	// OmitHints leaves the per-position SUB placeholders empty, matching
	// templates that reserve the hint slot for hand-written annotations.
	OmitHints bool
}

// Layer is one rendered output document.
type Layer struct {
	// Index is the layer's position in the configuration, starting at 0.
	Index int

	// Filename is the deterministic output name, e.g. "phreedom_layer_0.svg".
	Filename string

	// Content holds the rendered document bytes.
	Content []byte
}

// RenderSet is the complete result of rendering a keymap: every layer plus
// the non-fatal warnings collected along the way (unknown key codes).
type RenderSet struct {
	Layers   []Layer
	Warnings []string
}
