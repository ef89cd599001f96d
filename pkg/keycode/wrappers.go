package keycode

import (
	"regexp"
	"strings"
)

// Wrapper describes one production of the compound-token grammar: a pattern
// matching "FN(args)" forms and the legend it expands to. Expand receives the
// full regexp submatch slice.
type Wrapper struct {
	Name    string
	Pattern *regexp.Regexp
	Expand  func(match []string) Legend
}

var modSymbols = map[string]string{
	"LGUI": "⌘",
	"RGUI": "⌘",
	"LALT": "⌥",
	"RALT": "⌥",
	"LCTL": "⌃",
	"RCTL": "⌃",
	"LSFT": "⇧",
	"RSFT": "⇧",
}

var modNames = map[string]string{
	"LGUI": "Win",
	"RGUI": "Win",
	"LALT": "Alt",
	"RALT": "Alt",
	"LCTL": "Ctrl",
	"RCTL": "Ctrl",
	"LSFT": "Shift",
	"RSFT": "Shift",
}

// defaultWrappers returns the built-in grammar in match order. Narrow
// single-key productions come first; the LSFT fallback sweeps up whatever the
// shifted-key rule could not express.
func defaultWrappers() []Wrapper {
	return []Wrapper{
		{
			Name:    "mod-combo",
			Pattern: regexp.MustCompile(`^([LR](?:GUI|ALT|CTL|SFT))\(KC_([A-Z0-9])\)$`),
			Expand: func(m []string) Legend {
				return Legend{
					Label: modSymbols[m[1]] + m[2],
					Hint:  modNames[m[1]] + "+" + m[2],
				}
			},
		},
		{
			Name:    "shifted-key",
			Pattern: regexp.MustCompile(`^S\(KC_([A-Z0-9])\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: "⇧" + m[1], Hint: "Shift+" + m[1]}
			},
		},
		{
			Name:    "layer-tap",
			Pattern: regexp.MustCompile(`^LT\((\d+),\s*KC_([A-Z0-9])\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: m[2], Hint: "L" + m[1] + "/Tap"}
			},
		},
		{
			Name:    "mod-tap",
			Pattern: regexp.MustCompile(`^([LR](?:CTL|ALT|SFT|GUI))_T\(KC_([A-Z0-9])\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: m[2], Hint: modNames[m[1]] + "/Tap"}
			},
		},
		{
			Name:    "momentary-layer",
			Pattern: regexp.MustCompile(`^MO\((\d+)\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: "MO" + m[1], Hint: "Momentary L" + m[1]}
			},
		},
		{
			Name:    "default-layer",
			Pattern: regexp.MustCompile(`^DF\((\d+)\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: "L" + m[1], Hint: "Default L" + m[1]}
			},
		},
		{
			Name:    "toggle-layer",
			Pattern: regexp.MustCompile(`^TG\((\d+)\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: "TG" + m[1], Hint: "Toggle L" + m[1]}
			},
		},
		{
			Name:    "one-shot-layer",
			Pattern: regexp.MustCompile(`^OSL\((\d+)\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: "OSL" + m[1], Hint: "One-shot L" + m[1]}
			},
		},
		{
			Name:    "any",
			Pattern: regexp.MustCompile(`^ANY\((.+)\)$`),
			Expand: func(m []string) Legend {
				return Legend{Label: truncate(m[1], 6), Hint: "Any: " + m[1]}
			},
		},
		{
			Name:    "shift-fallback",
			Pattern: regexp.MustCompile(`^LSFT\(([^)]+)\)$`),
			Expand:  expandShiftFallback,
		},
	}
}

// expandShiftFallback covers LSFT() around inner tokens the single-key rules
// rejected, e.g. LSFT(KC_TAB).
func expandShiftFallback(m []string) Legend {
	inner := m[1]
	if key, ok := strings.CutPrefix(inner, "KC_"); ok {
		if key == "TAB" {
			return Legend{Label: "⇧⇥", Hint: "Shift+Tab"}
		}
		return Legend{Label: "⇧" + truncate(key, 4), Hint: "Shift+" + key}
	}
	return Legend{Label: "⇧" + truncate(inner, 4), Hint: "Shift+" + inner}
}
