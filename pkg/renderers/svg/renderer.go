package svg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/phreed/preonic-keyboard/pkg/keycode"
	"github.com/phreed/preonic-keyboard/pkg/keymap"
	"github.com/phreed/preonic-keyboard/pkg/render"
)

// RendererName is the registry key for this renderer.
const RendererName = "svg"

// Option configures the renderer before construction.
type Option func(*Renderer)

// WithInterpreter injects a custom key-code interpreter.
func WithInterpreter(interp *keycode.Interpreter) Option {
	return func(r *Renderer) {
		r.interp = interp
	}
}

// Renderer substitutes layer legends into an SVG template via pongo2. Labels
// pass through pongo2's autoescaping, so reserved XML characters in key labels
// (&, <, >, quotes) arrive escaped in the output.
type Renderer struct {
	set    *pongo2.TemplateSet
	interp *keycode.Interpreter
}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

var autoescapeOnce sync.Once

// New constructs a Renderer, defaulting to the built-in QMK interpreter.
func New(options ...Option) (*Renderer, error) {
	// pongo2 autoescaping is process-global; pin it on so escaping does not
	// depend on other users of the library.
	autoescapeOnce.Do(func() { pongo2.SetAutoescape(true) })

	r := &Renderer{
		set: pongo2.NewSet("layergen", pongo2.MustNewLocalFileSystemLoader("")),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.interp == nil {
		r.interp = keycode.New()
	}
	return r, nil
}

// Name identifies the renderer in the registry.
func (r *Renderer) Name() string {
	return RendererName
}

// ContentType reports the MIME type of rendered layers.
func (r *Renderer) ContentType() string {
	return "image/svg+xml"
}

var keyPlaceholder = regexp.MustCompile(`\{\{\s*KEY_(\d+)\s*\}\}`)

// Render produces one SVG document per layer. Every layer is validated
// against the template's position count before any document is rendered, so a
// mismatch never yields partial output.
func (r *Renderer) Render(ctx context.Context, km keymap.Keymap, template keymap.Document, options render.RenderOptions) (render.RenderSet, error) {
	select {
	case <-ctx.Done():
		return render.RenderSet{}, ctx.Err()
	default:
	}

	raw := string(template.Raw())
	positions, err := scanPositions(raw)
	if err != nil {
		return render.RenderSet{}, err
	}

	for i, layer := range km.Layers {
		if len(layer) != positions {
			return render.RenderSet{}, fmt.Errorf(
				"svg: layer %d has %d key codes but the template expects %d positions", i, len(layer), positions)
		}
	}

	tmpl, err := r.set.FromString(raw)
	if err != nil {
		return render.RenderSet{}, fmt.Errorf("svg: parse template: %w", err)
	}

	var set render.RenderSet
	for i, layer := range km.Layers {
		pctx, warnings := r.layerContext(km, i, layer, options)
		out, err := tmpl.Execute(pctx)
		if err != nil {
			return render.RenderSet{}, fmt.Errorf("svg: render layer %d: %w", i, err)
		}
		set.Warnings = append(set.Warnings, warnings...)
		set.Layers = append(set.Layers, render.Layer{
			Index:    i,
			Filename: fmt.Sprintf("%s_layer_%d.svg", safeName(km.Keymap), i),
			Content:  []byte(out),
		})
	}
	return set, nil
}

func (r *Renderer) layerContext(km keymap.Keymap, index int, layer []string, options render.RenderOptions) (pongo2.Context, []string) {
	pctx := pongo2.Context{
		"LAYER_TITLE":    fmt.Sprintf("%s - Layer %d", km.Keymap, index),
		"LAYER_SUBTITLE": "Layout: " + km.Layout,
		"KEYMAP_NOTES":   km.Notes,
	}

	var warnings []string
	for pos, code := range layer {
		legend, known := r.interp.Interpret(code)
		if !known {
			warnings = append(warnings, fmt.Sprintf("layer %d, position %d: unknown key code %q", index, pos, code))
		}

		hint := legend.Hint
		if options.OmitHints {
			hint = ""
		}
		pctx[fmt.Sprintf("KEY_%d", pos)] = legend.Label
		pctx[fmt.Sprintf("SUB_%d", pos)] = hint
	}
	return pctx, warnings
}

// scanPositions counts the distinct KEY_n placeholders in the template. The
// indices must be contiguous from zero; gaps indicate a broken template.
func scanPositions(raw string) (int, error) {
	matches := keyPlaceholder.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return 0, errors.New("svg: template declares no KEY placeholders")
	}

	seen := make(map[int]struct{}, len(matches))
	highest := -1
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("svg: bad KEY placeholder index %q: %w", m[1], err)
		}
		seen[n] = struct{}{}
		if n > highest {
			highest = n
		}
	}
	if len(seen) != highest+1 {
		return 0, fmt.Errorf("svg: template KEY placeholders are not contiguous: %d distinct indices, highest %d", len(seen), highest)
	}
	return highest + 1, nil
}

func safeName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	return strings.ReplaceAll(name, `\`, "-")
}
