package keymap

import (
	"errors"
	"fmt"
)

// Keymap is the configuration model behind a QMK-style keymap document: a
// named layout plus an ordered stack of layers, each layer holding one
// key-code token per physical key position in row-major order.
type Keymap struct {
	Version  int        `json:"version" yaml:"version"`
	Keyboard string     `json:"keyboard" yaml:"keyboard"`
	Keymap   string     `json:"keymap" yaml:"keymap"`
	Layout   string     `json:"layout" yaml:"layout"`
	Author   string     `json:"author,omitempty" yaml:"author,omitempty"`
	Notes    string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	Layers   [][]string `json:"layers" yaml:"layers"`
}

// Validate checks the structural requirements the renderer depends on. It does
// not inspect individual key codes; unknown codes degrade at render time
// instead of failing here.
func (k Keymap) Validate() error {
	if k.Keymap == "" {
		return errors.New("keymap: keymap name is required")
	}
	if k.Layout == "" {
		return errors.New("keymap: layout identifier is required")
	}
	if len(k.Layers) == 0 {
		return errors.New("keymap: at least one layer is required")
	}

	width := len(k.Layers[0])
	for i, layer := range k.Layers {
		if len(layer) == 0 {
			return fmt.Errorf("keymap: layer %d is empty", i)
		}
		if len(layer) != width {
			return fmt.Errorf("keymap: layer %d has %d positions, layer 0 has %d", i, len(layer), width)
		}
	}
	return nil
}

// Positions returns the per-layer key count. Call Validate first; an invalid
// keymap may report a misleading width.
func (k Keymap) Positions() int {
	if len(k.Layers) == 0 {
		return 0
	}
	return len(k.Layers[0])
}
