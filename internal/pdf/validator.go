package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Info summarizes a validated input document.
type Info struct {
	Path      string
	FileSize  int64
	PageCount int
	Encrypted bool
}

// Validator checks that an input path points at a readable PDF within the
// configured size limit. It runs once before any conversion work starts so
// obviously broken inputs fail early instead of mid-dispatch.
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a validator with the specified size limit. A limit of
// zero disables the size check.
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile validates the file at path and returns its basic properties.
// The password is applied when the document is encrypted.
func (v *Validator) ValidateFile(path, password string) (*Info, error) {
	if path == "" {
		return nil, fmt.Errorf("input path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("input PDF not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access input file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("input path is not a file: %s", path)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, fmt.Errorf("input file must be a .pdf: %s", path)
	}
	if fileInfo.Size() == 0 {
		return nil, fmt.Errorf("input file is empty: %s", path)
	}
	if v.maxFileSize > 0 && fileInfo.Size() > v.maxFileSize {
		return nil, fmt.Errorf("input file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("cannot determine page count: %w", err)
	}

	return &Info{
		Path:      path,
		FileSize:  fileInfo.Size(),
		PageCount: ctx.PageCount,
		Encrypted: ctx.Encrypt != nil,
	}, nil
}
