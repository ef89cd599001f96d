package parser

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	pkgkeymap "github.com/phreed/preonic-keyboard/pkg/keymap"
)

// Parser implements pkgkeymap.Parser. The canonical QMK keymap export is JSON;
// decoding with yaml.v3 covers both it and hand-written YAML keymaps since
// JSON is a YAML subset.
type Parser struct {
	sanitizeNotes bool
	policy        *bluemonday.Policy
}

// Ensure the implementation satisfies the public interface.
var _ pkgkeymap.Parser = (*Parser)(nil)

// New constructs a Parser from pre-resolved options.
func New(options pkgkeymap.ParserOptions) pkgkeymap.Parser {
	p := &Parser{sanitizeNotes: options.SanitizeNotes}
	if p.sanitizeNotes {
		p.policy = bluemonday.StrictPolicy()
	}
	return p
}

// Parse decodes a keymap document and validates its structure.
func (p *Parser) Parse(ctx context.Context, doc pkgkeymap.Document) (pkgkeymap.Keymap, error) {
	select {
	case <-ctx.Done():
		return pkgkeymap.Keymap{}, ctx.Err()
	default:
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return pkgkeymap.Keymap{}, errors.New("keymap parser: document is empty")
	}

	var km pkgkeymap.Keymap
	if err := yaml.Unmarshal(raw, &km); err != nil {
		return pkgkeymap.Keymap{}, fmt.Errorf("keymap parser: decode %s: %w", describe(doc), err)
	}

	if err := km.Validate(); err != nil {
		return pkgkeymap.Keymap{}, fmt.Errorf("keymap parser: %s: %w", describe(doc), err)
	}

	if p.sanitizeNotes && km.Notes != "" {
		// StrictPolicy entity-escapes its output; unescape so the model holds
		// plain text and the renderer escapes exactly once.
		km.Notes = strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(km.Notes)))
	}

	return km, nil
}

func describe(doc pkgkeymap.Document) string {
	if src := doc.Source(); src != nil {
		return fmt.Sprintf("%q", src.Location())
	}
	return "document"
}
