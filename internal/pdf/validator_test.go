package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidator_ValidateFile(t *testing.T) {
	validator := NewValidator(1024 * 1024) // 1MB limit
	tempDir := t.TempDir()

	// A text file posing as a PDF.
	fakePDF := filepath.Join(tempDir, "fake.pdf")
	if err := os.WriteFile(fakePDF, []byte("this is not a pdf"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	// An empty file with the right extension.
	emptyPDF := filepath.Join(tempDir, "empty.pdf")
	if err := os.WriteFile(emptyPDF, nil, 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	// A file that exceeds a tiny validator's limit.
	bigPDF := filepath.Join(tempDir, "big.pdf")
	if err := os.WriteFile(bigPDF, []byte(strings.Repeat("x", 64)), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	wrongExt := filepath.Join(tempDir, "doc.txt")
	if err := os.WriteFile(wrongExt, []byte("text"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name      string
		validator *Validator
		path      string
		wantErr   string
	}{
		{
			name:      "empty path",
			validator: validator,
			path:      "",
			wantErr:   "cannot be empty",
		},
		{
			name:      "non-existent file",
			validator: validator,
			path:      filepath.Join(tempDir, "missing.pdf"),
			wantErr:   "not found",
		},
		{
			name:      "wrong extension",
			validator: validator,
			path:      wrongExt,
			wantErr:   "must be a .pdf",
		},
		{
			name:      "empty file",
			validator: validator,
			path:      emptyPDF,
			wantErr:   "is empty",
		},
		{
			name:      "file too large",
			validator: NewValidator(16),
			path:      bigPDF,
			wantErr:   "too large",
		},
		{
			name:      "not actually a PDF",
			validator: validator,
			path:      fakePDF,
			wantErr:   "invalid PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.validator.ValidateFile(tt.path, "")
			if err == nil {
				t.Fatalf("expected error containing %q, got info %+v", tt.wantErr, info)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidator_DirectoryPath(t *testing.T) {
	tempDir := t.TempDir()
	dirWithExt := filepath.Join(tempDir, "folder.pdf")
	if err := os.Mkdir(dirWithExt, 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	validator := NewValidator(0)
	_, err := validator.ValidateFile(dirWithExt, "")
	if err == nil {
		t.Fatal("expected error for directory input")
	}
	if !strings.Contains(err.Error(), "not a file") {
		t.Errorf("expected 'not a file' error, got %q", err.Error())
	}
}

func TestOpen_InvalidFile(t *testing.T) {
	tempDir := t.TempDir()
	fakePDF := filepath.Join(tempDir, "fake.pdf")
	if err := os.WriteFile(fakePDF, []byte("%PDF-garbage"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	doc, err := Open(fakePDF, "")
	if err == nil {
		doc.Close()
		t.Fatal("expected error opening a corrupt file")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"), "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
