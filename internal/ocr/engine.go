// Package ocr provides the recognition-based extraction backend: pages are
// rasterized with go-fitz and recognized by a pluggable Engine, by default the
// Tesseract bindings.
package ocr

import "context"

// Engine is the recognition provider contract: one rendered page image in,
// recognized text out. Images arrive PNG-encoded and grayscale.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte, language string) (string, error)
}
