package keymap

import "context"

// Parser normalises raw keymap documents into the Keymap model that downstream
// packages consume.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Keymap, error)
}

// ParserOptions exposes parsing toggles.
type ParserOptions struct {
	// SanitizeNotes strips markup from the free-form notes field so untrusted
	// keymap files cannot smuggle content into rendered diagrams. Defaults to
	// true.
	SanitizeNotes bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithNoteSanitization toggles markup stripping on the notes field.
func WithNoteSanitization(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.SanitizeNotes = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/keymap should call this helper
// to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		SanitizeNotes: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
