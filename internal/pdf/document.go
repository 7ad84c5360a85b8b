package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document wraps an open PDF file and its parsed reader. Every worker opens
// its own Document; handles are never shared across goroutines.
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open parses the PDF at path. For encrypted files the password is tried
// exactly once; a wrong or missing password surfaces as an error, never as a
// silently empty document.
func Open(path, password string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	attempted := false
	reader, err := pdf.NewReaderEncrypted(f, info.Size(), func() string {
		// The reader retries until the callback returns ""; one attempt is
		// enough to distinguish a wrong password from a missing one.
		if attempted || password == "" {
			return ""
		}
		attempted = true
		return password
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Document{file: f, reader: reader}, nil
}

// NumPage returns the document's page count.
func (d *Document) NumPage() int {
	return d.reader.NumPage()
}

// PageText returns the embedded text of the given zero-based pages, in the
// order given, with no separators added: the text layer carries its own page
// breaks. Pages without a text layer contribute nothing.
func (d *Document) PageText(ctx context.Context, pages []int) (string, error) {
	var sb strings.Builder
	for _, idx := range pages {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		page := d.reader.Page(idx + 1) // ledongthuc pages are 1-based
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", idx+1, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}
