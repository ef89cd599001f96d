package svg_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phreed/preonic-keyboard/pkg/keymap"
	"github.com/phreed/preonic-keyboard/pkg/render"
	"github.com/phreed/preonic-keyboard/pkg/renderers/svg"
)

const testTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200">
  <title>{{LAYER_TITLE}}</title>
  <desc>{{LAYER_SUBTITLE}}</desc>
  <text id="key-0">{{KEY_0}}</text><text id="sub-0">{{SUB_0}}</text>
  <text id="key-1">{{KEY_1}}</text><text id="sub-1">{{SUB_1}}</text>
  <text id="key-2">{{KEY_2}}</text><text id="sub-2">{{SUB_2}}</text>
  <text id="key-3">{{KEY_3}}</text><text id="sub-3">{{SUB_3}}</text>
</svg>`

func testKeymap() keymap.Keymap {
	return keymap.Keymap{
		Version:  1,
		Keyboard: "preonic/rev3",
		Keymap:   "phreedom",
		Layout:   "LAYOUT_ortho_2x2",
		Layers: [][]string{
			{"KC_A", "KC_AMPR", "LT(5,KC_S)", "KC_TRNS"},
			{"MO(3)", "KC_UNKNOWN_999", "S(KC_Q)", "KC_NO"},
		},
	}
}

func templateDoc(t *testing.T, raw string) keymap.Document {
	t.Helper()
	return keymap.MustNewDocument(keymap.SourceFromFile("template.svg"), []byte(raw))
}

func TestRender_AllLayers(t *testing.T) {
	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	set, err := renderer.Render(context.Background(), testKeymap(), templateDoc(t, testTemplate), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(set.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(set.Layers))
	}

	wantNames := []string{"phreedom_layer_0.svg", "phreedom_layer_1.svg"}
	var gotNames []string
	for _, layer := range set.Layers {
		gotNames = append(gotNames, layer.Filename)
	}
	if diff := cmp.Diff(wantNames, gotNames); diff != "" {
		t.Errorf("filenames mismatch (-want +got):\n%s", diff)
	}

	for _, layer := range set.Layers {
		content := string(layer.Content)
		if strings.Contains(content, "{{") || strings.Contains(content, "}}") {
			t.Errorf("layer %d: unreplaced placeholders remain:\n%s", layer.Index, content)
		}
	}

	layer0 := string(set.Layers[0].Content)
	for _, want := range []string{
		"phreedom - Layer 0",
		"Layout: LAYOUT_ortho_2x2",
		">A</text>",
		"&amp;",
		">S</text>",
		"L5/Tap",
		"▽",
		"Transparent",
	} {
		if !strings.Contains(layer0, want) {
			t.Errorf("layer 0 missing %q:\n%s", want, layer0)
		}
	}

	layer1 := string(set.Layers[1].Content)
	for _, want := range []string{
		"phreedom - Layer 1",
		"MO3",
		"Momentary L3",
		"UNKNOW",
		"⇧Q",
	} {
		if !strings.Contains(layer1, want) {
			t.Errorf("layer 1 missing %q:\n%s", want, layer1)
		}
	}
}

func TestRender_UnknownCodeWarns(t *testing.T) {
	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	set, err := renderer.Render(context.Background(), testKeymap(), templateDoc(t, testTemplate), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(set.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(set.Warnings), set.Warnings)
	}
	if !strings.Contains(set.Warnings[0], "KC_UNKNOWN_999") || !strings.Contains(set.Warnings[0], "layer 1") {
		t.Errorf("warning does not identify the unknown code: %q", set.Warnings[0])
	}
}

func TestRender_OmitHints(t *testing.T) {
	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	set, err := renderer.Render(context.Background(), testKeymap(), templateDoc(t, testTemplate), render.RenderOptions{OmitHints: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, layer := range set.Layers {
		if strings.Contains(string(layer.Content), "L5/Tap") {
			t.Errorf("layer %d still carries hints with OmitHints set", layer.Index)
		}
	}
}

func TestRender_PositionCountMismatch(t *testing.T) {
	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	km := testKeymap()
	km.Layers = [][]string{{"KC_A", "KC_B", "KC_C"}}

	_, err = renderer.Render(context.Background(), km, templateDoc(t, testTemplate), render.RenderOptions{})
	if err == nil {
		t.Fatal("expected position-count mismatch error")
	}
	if !strings.Contains(err.Error(), "expects 4") {
		t.Errorf("error does not report the expected count: %v", err)
	}
}

func TestRender_TemplateWithoutPlaceholders(t *testing.T) {
	renderer, err := svg.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, err = renderer.Render(context.Background(), testKeymap(), templateDoc(t, "<svg></svg>"), render.RenderOptions{})
	if err == nil {
		t.Fatal("expected error for template without KEY placeholders")
	}
}
