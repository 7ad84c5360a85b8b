package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes text through the linked Tesseract library via
// gosseract. A fresh client per call keeps the engine safe for concurrent
// workers; gosseract clients are not goroutine-safe.
type TesseractEngine struct {
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs the default Tesseract-backed engine.
func NewTesseractEngine() *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient}
}

func (e *TesseractEngine) Name() string {
	return "tesseract"
}

// Recognize runs Tesseract over a single page image. language accepts the
// tesseract multi-language syntax, e.g. "eng" or "eng+hin".
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if language != "" {
		if err := c.SetLanguage(strings.Split(language, "+")...); err != nil {
			return "", fmt.Errorf("set language %q: %w", language, err)
		}
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
