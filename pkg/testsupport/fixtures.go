// Package testsupport holds fixture helpers shared by package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	internalparser "github.com/phreed/preonic-keyboard/internal/keymap/parser"
	pkgkeymap "github.com/phreed/preonic-keyboard/pkg/keymap"
)

// LoadDocument reads a fixture and builds a Document using a file source.
func LoadDocument(t *testing.T, path string) pkgkeymap.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgkeymap.Document, error) {
	if path == "" {
		return pkgkeymap.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgkeymap.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgkeymap.NewDocument(pkgkeymap.SourceFromFile(path), data)
	if err != nil {
		return pkgkeymap.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// LoadKeymap reads and parses a keymap configuration fixture.
func LoadKeymap(t *testing.T, path string) pkgkeymap.Keymap {
	t.Helper()

	doc := LoadDocument(t, path)
	parser := internalparser.New(pkgkeymap.NewParserOptions())
	km, err := parser.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse keymap: %v", err)
	}
	return km
}
