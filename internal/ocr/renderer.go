package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// renderDPI is the rasterization resolution for recognition. 200 DPI balances
// recognition quality against render time; PDF native units are 72 DPI.
const renderDPI = 200

// Renderer rasterizes document pages for recognition. One Renderer owns one
// document handle and must not be shared across workers.
type Renderer struct {
	doc *fitz.Document
}

// OpenRenderer opens the document at path for rasterization.
func OpenRenderer(path string) (*Renderer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for rendering: %w", path, err)
	}
	return &Renderer{doc: doc}, nil
}

// NumPage returns the document's page count.
func (r *Renderer) NumPage() int {
	return r.doc.NumPage()
}

// RenderGray rasterizes the zero-based page at the recognition DPI and returns
// it as a PNG-encoded grayscale image. Single-channel input is more robust for
// recognition engines than full color.
func (r *Renderer) RenderGray(pageIndex int) ([]byte, error) {
	img, err := r.doc.ImageDPI(pageIndex, renderDPI)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageIndex+1, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, toGray(img)); err != nil {
		return nil, fmt.Errorf("failed to encode page %d: %w", pageIndex+1, err)
	}
	return buf.Bytes(), nil
}

// Close releases the document handle.
func (r *Renderer) Close() error {
	return r.doc.Close()
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}
