package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phreed/preonic-keyboard/pkg/keymap"
	"github.com/phreed/preonic-keyboard/pkg/orchestrator"
	"github.com/phreed/preonic-keyboard/pkg/testsupport"
)

func fixtureRequest() orchestrator.Request {
	return orchestrator.Request{
		ConfigSource:   keymap.SourceFromFile(filepath.Join("testdata", "phreedom.json")),
		TemplateSource: keymap.SourceFromFile(filepath.Join("testdata", "template.svg")),
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	gen := orchestrator.New()

	set, err := gen.Generate(context.Background(), fixtureRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
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
		if strings.Contains(string(layer.Content), "{{") {
			t.Errorf("layer %d has unreplaced placeholders", layer.Index)
		}
	}

	if len(set.Warnings) != 1 || !strings.Contains(set.Warnings[0], "KC_UNKNOWN_999") {
		t.Errorf("expected a single unknown-code warning, got %v", set.Warnings)
	}
}

func TestGenerateAndWrite(t *testing.T) {
	gen := orchestrator.New()

	set, err := gen.Generate(context.Background(), fixtureRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	dir := t.TempDir()
	paths, err := orchestrator.Write(dir, set)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 written files, got %d", len(paths))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Errorf("%s does not look like an SVG document", path)
		}
	}
}

func TestGenerate_DocumentBypass(t *testing.T) {
	gen := orchestrator.New()

	km := testsupport.LoadKeymap(t, filepath.Join("testdata", "phreedom.json"))
	template := testsupport.LoadDocument(t, filepath.Join("testdata", "template.svg"))

	set, err := gen.Generate(context.Background(), orchestrator.Request{
		Keymap:   &km,
		Template: &template,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(set.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(set.Layers))
	}
}

func TestGenerate_MissingConfig(t *testing.T) {
	gen := orchestrator.New()

	req := fixtureRequest()
	req.ConfigSource = keymap.SourceFromFile(filepath.Join("testdata", "missing.json"))

	_, err := gen.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected missing-file error")
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("error does not name the missing file: %v", err)
	}
}

func TestGenerate_PositionMismatchProducesNoOutput(t *testing.T) {
	gen := orchestrator.New()

	km := testsupport.LoadKeymap(t, filepath.Join("testdata", "phreedom.json"))
	km.Layers = [][]string{{"KC_A", "KC_B"}}
	template := testsupport.LoadDocument(t, filepath.Join("testdata", "template.svg"))

	set, err := gen.Generate(context.Background(), orchestrator.Request{
		Keymap:   &km,
		Template: &template,
	})
	if err == nil {
		t.Fatal("expected position-count mismatch error")
	}
	if len(set.Layers) != 0 {
		t.Errorf("expected no rendered layers on mismatch, got %d", len(set.Layers))
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	gen := orchestrator.New()

	req := fixtureRequest()
	req.Renderer = "png"

	_, err := gen.Generate(context.Background(), req)
	if err == nil {
		t.Fatal("expected unknown-renderer error")
	}
	if !strings.Contains(err.Error(), `"png"`) {
		t.Errorf("error does not name the renderer: %v", err)
	}
}
