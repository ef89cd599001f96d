package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgkeymap "github.com/phreed/preonic-keyboard/pkg/keymap"
)

// Loader implements pkgkeymap.Loader by delegating to file or fs.FS
// strategies.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgkeymap.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgkeymap.LoaderOptions) pkgkeymap.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgkeymap.Source) (pkgkeymap.Document, error) {
	if src == nil {
		return pkgkeymap.Document{}, errors.New("keymap loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgkeymap.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgkeymap.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("keymap loader: unsupported source kind")
	}
	if err != nil {
		return pkgkeymap.Document{}, err
	}

	return pkgkeymap.NewDocument(src, data)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("keymap loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("keymap loader: %q does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("keymap loader: read %q: %w", path, err)
	}
	return data, nil
}
