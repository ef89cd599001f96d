package layergen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	layergen "github.com/phreed/preonic-keyboard"
)

func TestGenerateLayersAndWrite(t *testing.T) {
	configPath := filepath.Join("pkg", "orchestrator", "testdata", "phreedom.json")
	templatePath := filepath.Join("pkg", "orchestrator", "testdata", "template.svg")

	set, err := layergen.GenerateLayers(context.Background(), configPath, templatePath)
	if err != nil {
		t.Fatalf("generate layers: %v", err)
	}
	if len(set.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(set.Layers))
	}

	dir := t.TempDir()
	paths, err := layergen.WriteLayers(dir, set)
	if err != nil {
		t.Fatalf("write layers: %v", err)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output file: %v", err)
		}
	}
}

func TestGenerateLayers_MissingConfig(t *testing.T) {
	_, err := layergen.GenerateLayers(context.Background(), "no-such.json", "no-such.svg")
	if err == nil {
		t.Fatal("expected error for missing inputs")
	}
}
