package convert

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects how text is obtained from a document.
type Mode string

const (
	// ModeNever reads only the embedded text layer.
	ModeNever Mode = "never"
	// ModeAuto reads the text layer first and falls back to recognition when
	// the document yields no usable text.
	ModeAuto Mode = "auto"
	// ModeAlways recognizes every page, ignoring any text layer.
	ModeAlways Mode = "always"
)

// ParseMode converts a user-supplied mode string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNever:
		return ModeNever, nil
	case ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	default:
		return "", fmt.Errorf("unknown ocr mode %q (want never, auto or always)", s)
	}
}

// Request describes one conversion call.
type Request struct {
	Path     string
	Password string
	Mode     Mode
	Language string
	ToolPath string
	Workers  int
}

// Converter composes strategy selection with the parallel dispatcher. The
// recognition backend is an injected capability and may be nil when the mode
// never requests it; a Converter used in never mode carries no recognition
// dependency at all.
type Converter struct {
	text        Backend
	recognition Backend
}

// NewConverter builds a Converter around the given backends.
func NewConverter(text, recognition Backend) *Converter {
	return &Converter{text: text, recognition: recognition}
}

// Convert runs the full pipeline and returns the document's text.
//
// In auto mode the text-layer pass runs first; when its output is empty or
// whitespace-only the attempt is discarded and a full recognition pass runs
// instead. That second pass doubles the work in the worst case, which is the
// intended trade: image-only documents must still produce their text. When
// both passes come back empty the conversion still succeeds with empty output.
func (c *Converter) Convert(ctx context.Context, req Request) (string, error) {
	switch req.Mode {
	case ModeNever:
		return c.run(ctx, req, c.text)
	case ModeAlways:
		return c.run(ctx, req, c.recognition)
	case ModeAuto:
		text, err := c.run(ctx, req, c.text)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
		return c.run(ctx, req, c.recognition)
	default:
		return "", fmt.Errorf("unknown extraction mode %q", req.Mode)
	}
}

func (c *Converter) run(ctx context.Context, req Request, backend Backend) (string, error) {
	if backend == nil {
		return "", fmt.Errorf("recognition backend not configured")
	}
	p := Params{Password: req.Password, Language: req.Language, ToolPath: req.ToolPath}
	total, err := backend.PageCount(ctx, req.Path, p)
	if err != nil {
		return "", fmt.Errorf("counting pages with %s backend: %w", backend.Name(), err)
	}
	return Dispatch(ctx, req.Path, total, p, req.Workers, backend)
}
