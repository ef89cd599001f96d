package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	internalloader "github.com/phreed/preonic-keyboard/internal/keymap/loader"
	internalparser "github.com/phreed/preonic-keyboard/internal/keymap/parser"
	"github.com/phreed/preonic-keyboard/pkg/keycode"
	"github.com/phreed/preonic-keyboard/pkg/keymap"
	"github.com/phreed/preonic-keyboard/pkg/render"
	"github.com/phreed/preonic-keyboard/pkg/renderers/svg"
)

const defaultRendererName = svg.RendererName

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader keymap.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom keymap parser.
func WithParser(parser keymap.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithInterpreter injects a custom key-code interpreter, used when the
// orchestrator builds its default renderer.
func WithInterpreter(interp *keycode.Interpreter) Option {
	return func(o *Orchestrator) {
		o.interpreter = interp
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator coordinates the full pipeline from keymap configuration to
// rendered layer diagrams. It applies sensible defaults (svg renderer,
// built-in interpreter) while remaining open to dependency injection.
type Orchestrator struct {
	loader          keymap.Loader
	parser          keymap.Parser
	interpreter     *keycode.Interpreter
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a keymap's layers.
type Request struct {
	// ConfigSource identifies where the keymap configuration lives. Optional
	// when Keymap is supplied.
	ConfigSource keymap.Source

	// Keymap allows callers to bypass the loader and parser when they already
	// have a parsed configuration.
	Keymap *keymap.Keymap

	// TemplateSource identifies where the SVG template lives. Optional when
	// Template is supplied.
	TemplateSource keymap.Source

	// Template allows callers to bypass the loader for the template document.
	Template *keymap.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request toggles renderers can honour.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → parser → renderer sequence and returns the
// rendered layer set. Nothing is written to disk; pair with Write.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (render.RenderSet, error) {
	if ctx == nil {
		return render.RenderSet{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.RenderSet{}, err
	}
	if err := o.initialiseErr; err != nil {
		return render.RenderSet{}, err
	}

	km, err := o.resolveKeymap(ctx, req)
	if err != nil {
		return render.RenderSet{}, err
	}

	template, err := o.resolveTemplate(ctx, req)
	if err != nil {
		return render.RenderSet{}, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return render.RenderSet{}, err
	}

	set, err := renderer.Render(ctx, km, template, req.RenderOptions)
	if err != nil {
		return render.RenderSet{}, fmt.Errorf("orchestrator: render layers: %w", err)
	}
	return set, nil
}

// Write persists every rendered layer into dir, creating it when missing. On
// a write failure the files written so far are removed so a failed run leaves
// no partial output behind.
func Write(dir string, set render.RenderSet) ([]string, error) {
	if dir == "" {
		return nil, errors.New("orchestrator: output directory is required")
	}
	if len(set.Layers) == 0 {
		return nil, errors.New("orchestrator: render set is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("orchestrator: create output directory: %w", err)
	}

	written := make([]string, 0, len(set.Layers))
	for _, layer := range set.Layers {
		path := filepath.Join(dir, layer.Filename)
		if err := os.WriteFile(path, layer.Content, 0o644); err != nil {
			for _, p := range written {
				os.Remove(p)
			}
			return nil, fmt.Errorf("orchestrator: write %q: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func (o *Orchestrator) resolveKeymap(ctx context.Context, req Request) (keymap.Keymap, error) {
	if req.Keymap != nil {
		if err := req.Keymap.Validate(); err != nil {
			return keymap.Keymap{}, fmt.Errorf("orchestrator: %w", err)
		}
		return *req.Keymap, nil
	}
	if req.ConfigSource == nil {
		return keymap.Keymap{}, errors.New("orchestrator: config source or keymap is required")
	}

	doc, err := o.loader.Load(ctx, req.ConfigSource)
	if err != nil {
		return keymap.Keymap{}, fmt.Errorf("orchestrator: load configuration: %w", err)
	}
	km, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return keymap.Keymap{}, fmt.Errorf("orchestrator: parse configuration: %w", err)
	}
	return km, nil
}

func (o *Orchestrator) resolveTemplate(ctx context.Context, req Request) (keymap.Document, error) {
	if req.Template != nil {
		return *req.Template, nil
	}
	if req.TemplateSource == nil {
		return keymap.Document{}, errors.New("orchestrator: template source or document is required")
	}

	doc, err := o.loader.Load(ctx, req.TemplateSource)
	if err != nil {
		return keymap.Document{}, fmt.Errorf("orchestrator: load template: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalloader.New(keymap.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalparser.New(keymap.NewParserOptions())
	}
	if o.interpreter == nil {
		o.interpreter = keycode.New()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := svg.New(svg.WithInterpreter(o.interpreter))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
