package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExecEngine shells out to an external tesseract binary instead of linking the
// library. It backs the --tesseract-path override for installations where the
// bundled bindings do not match the locally installed Tesseract.
type ExecEngine struct {
	// Path is the tesseract executable to invoke.
	Path string
}

// NewExecEngine builds an engine around the executable at path.
func NewExecEngine(path string) *ExecEngine {
	return &ExecEngine{Path: path}
}

func (e *ExecEngine) Name() string {
	return "tesseract-exec"
}

// Recognize writes the page image to a temp file and runs
// `tesseract <image> stdout [-l lang]`.
func (e *ExecEngine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	dir, err := os.MkdirTemp("", "converto-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	imgPath := filepath.Join(dir, "page.png")
	if err := os.WriteFile(imgPath, image, 0o600); err != nil {
		return "", fmt.Errorf("write page image: %w", err)
	}

	args := []string{imgPath, "stdout"}
	if language != "" {
		args = append(args, "-l", language)
	}

	cmd := exec.CommandContext(ctx, e.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", e.Path, err, msg)
		}
		return "", fmt.Errorf("%s: %w", e.Path, err)
	}
	return stdout.String(), nil
}
