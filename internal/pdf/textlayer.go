package pdf

import (
	"context"
	"strings"

	"github.com/Abhixnav0x1x/Converto/internal/convert"
)

// TextLayerBackend extracts embedded text through ledongthuc/pdf. It satisfies
// convert.Backend; every call opens its own Document, so concurrent workers
// never share a parser state.
type TextLayerBackend struct{}

// NewTextLayerBackend creates the embedded-text extraction backend.
func NewTextLayerBackend() *TextLayerBackend {
	return &TextLayerBackend{}
}

func (b *TextLayerBackend) Name() string {
	return "text-layer"
}

// PageCount reports the page count using the same reader Extract uses.
func (b *TextLayerBackend) PageCount(_ context.Context, path string, p convert.Params) (int, error) {
	doc, err := Open(path, p.Password)
	if err != nil {
		return 0, err
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// Extract returns the embedded text of exactly the pages in r, in index order.
func (b *TextLayerBackend) Extract(ctx context.Context, path string, r convert.PageRange, p convert.Params) (string, error) {
	doc, err := Open(path, p.Password)
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return doc.PageText(ctx, r.Pages())
}

// Join concatenates range chunks directly: the text layer self-delimits, so no
// separator is inserted between units.
func (b *TextLayerBackend) Join(chunks []string) string {
	return strings.Join(chunks, "")
}
