package keymap

import "errors"

// Document wraps a raw input payload and its origin. Both the keymap
// configuration and the SVG template travel through the pipeline as Documents
// so loaders stay format-agnostic.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("keymap: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("keymap: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the underlying payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}
