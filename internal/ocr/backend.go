package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abhixnav0x1x/Converto/internal/convert"
)

// RecognitionBackend rasterizes pages and feeds them to a recognition Engine.
// It satisfies convert.Backend; each Extract call opens its own renderer, so
// concurrent workers never share a document handle.
type RecognitionBackend struct {
	engine Engine
}

// NewRecognitionBackend builds a backend around engine. Passing nil selects
// the engine per call: an ExecEngine when the conversion parameters carry a
// tool path override, the library-backed TesseractEngine otherwise.
func NewRecognitionBackend(engine Engine) *RecognitionBackend {
	return &RecognitionBackend{engine: engine}
}

func (b *RecognitionBackend) Name() string {
	return "recognition"
}

func (b *RecognitionBackend) engineFor(p convert.Params) Engine {
	if b.engine != nil {
		return b.engine
	}
	if p.ToolPath != "" {
		return NewExecEngine(p.ToolPath)
	}
	return NewTesseractEngine()
}

// PageCount reports the page count using the same renderer Extract uses.
func (b *RecognitionBackend) PageCount(_ context.Context, path string, _ convert.Params) (int, error) {
	rend, err := OpenRenderer(path)
	if err != nil {
		return 0, err
	}
	defer rend.Close()
	return rend.NumPage(), nil
}

// Extract renders and recognizes the pages of r strictly in index order,
// failing fast on the first page that cannot be recognized. Page texts are
// joined with a blank line: rasterized pages carry no boundary markers of
// their own.
func (b *RecognitionBackend) Extract(ctx context.Context, path string, r convert.PageRange, p convert.Params) (string, error) {
	rend, err := OpenRenderer(path)
	if err != nil {
		return "", err
	}
	defer rend.Close()

	engine := b.engineFor(p)
	chunks := make([]string, 0, r.Count())
	for _, idx := range r.Pages() {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		img, err := rend.RenderGray(idx)
		if err != nil {
			return "", err
		}
		text, err := engine.Recognize(ctx, img, p.Language)
		if err != nil {
			return "", fmt.Errorf("recognition failed on page %d: %w", idx+1, err)
		}
		chunks = append(chunks, strings.TrimRight(text, " \t\r\n"))
	}
	return strings.Join(chunks, "\n\n"), nil
}

// Join separates range chunks with a blank line, matching the per-page
// separator inside each range, and terminates the output with a newline.
func (b *RecognitionBackend) Join(chunks []string) string {
	return strings.Join(chunks, "\n\n") + "\n"
}
