package keycode

import "strings"

// Legend is the pair of texts shown for one key position: the primary label
// printed on the key cap and an optional hint describing a layer or tap/hold
// semantic.
type Legend struct {
	Label string
	Hint  string
}

// Interpreter maps key-code tokens to legends. Interpret is total: every
// string input yields a legend, with unrecognized tokens degrading to a
// truncated verbatim label.
type Interpreter struct {
	legends  map[string]Legend
	wrappers []Wrapper
}

// Option customises the interpreter configuration.
type Option func(*Interpreter)

// WithLegend adds or overrides a single exact-match table entry.
func WithLegend(code string, legend Legend) Option {
	return func(it *Interpreter) {
		it.legends[code] = legend
	}
}

// WithLegends merges a batch of exact-match table entries.
func WithLegends(legends map[string]Legend) Option {
	return func(it *Interpreter) {
		for code, legend := range legends {
			it.legends[code] = legend
		}
	}
}

// WithWrapper registers an extra compound-token rule. Wrappers added this way
// take precedence over the built-in grammar.
func WithWrapper(w Wrapper) Option {
	return func(it *Interpreter) {
		if w.Pattern == nil || w.Expand == nil {
			return
		}
		it.wrappers = append([]Wrapper{w}, it.wrappers...)
	}
}

// New constructs an Interpreter with the built-in QMK table and wrapper
// grammar, applying any provided options.
func New(options ...Option) *Interpreter {
	it := &Interpreter{
		legends:  defaultLegends(),
		wrappers: defaultWrappers(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(it)
	}
	return it
}

// Interpret resolves a key-code token into its legend. The boolean reports
// whether the token was recognized; callers surface unrecognized tokens as
// warnings, never as errors.
func (it *Interpreter) Interpret(code string) (Legend, bool) {
	code = strings.TrimSpace(code)
	if code == "" || code == "KC_NO" {
		return Legend{}, true
	}

	for _, w := range it.wrappers {
		if match := w.Pattern.FindStringSubmatch(code); match != nil {
			return w.Expand(match), true
		}
	}

	if legend, ok := it.legends[code]; ok {
		return legend, true
	}

	if short, ok := strings.CutPrefix(code, "KC_"); ok {
		return Legend{Label: truncate(short, 6)}, false
	}
	return Legend{Label: truncate(code, 8)}, false
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
