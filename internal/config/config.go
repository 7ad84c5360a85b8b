package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// OCR mode constants
	OCRNever  = "never"
	OCRAuto   = "auto"
	OCRAlways = "always"

	// Default values
	DefaultOCRMode     = OCRNever
	DefaultOCRLanguage = "eng"
	DefaultWorkers     = 1
	DefaultMaxFileSize = 500 * 1024 * 1024 // 500MB
)

// Config holds all settings for one conversion run.
type Config struct {
	// Input/output
	InputPath  string
	OutputPath string
	Overwrite  bool

	// Extraction
	Password      string
	OCRMode       string
	OCRLanguage   string
	TesseractPath string
	Workers       int

	// Application
	MaxFileSize int64
	Verbose     bool
	ShowVersion bool
	Version     string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OCRMode:     DefaultOCRMode,
		OCRLanguage: DefaultOCRLanguage,
		Workers:     DefaultWorkers,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// Load parses command line flags and environment variables into a Config.
// Environment variables use the CONVERTO_ prefix with dashes mapped to
// underscores (e.g. CONVERTO_OCR_LANG); explicit flags win over environment
// values.
func Load(version string, args []string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Version = version

	v := viper.New()
	v.SetEnvPrefix("CONVERTO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("converto", pflag.ContinueOnError)
	fs.StringP("output", "o", "", "path or filename for the output TXT (defaults to <input>.txt next to the input)")
	fs.Bool("overwrite", false, "allow overwriting the output file if it already exists")
	fs.String("password", "", "password for encrypted PDFs")
	fs.String("ocr", DefaultOCRMode, "OCR mode: never (embedded text only), auto (fallback when no text is found) or always")
	fs.String("ocr-lang", DefaultOCRLanguage, "Tesseract language(s), e.g. 'eng' or 'eng+hin'")
	fs.String("tesseract-path", "", "full path to the tesseract executable if not in PATH")
	fs.IntP("workers", "w", DefaultWorkers, "number of parallel workers; pages are split across workers and concatenated in order")
	fs.Int64("max-file-size", DefaultMaxFileSize, "maximum input file size in bytes")
	fs.Bool("verbose", false, "enable verbose logging")
	fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: converto [flags] <input.pdf>\n\nConvert a PDF to a single TXT file.\n\nFlags:\n%s", fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg.OutputPath = v.GetString("output")
	cfg.Overwrite = v.GetBool("overwrite")
	cfg.Password = v.GetString("password")
	cfg.OCRMode = v.GetString("ocr")
	cfg.OCRLanguage = v.GetString("ocr-lang")
	cfg.TesseractPath = v.GetString("tesseract-path")
	cfg.Workers = v.GetInt("workers")
	cfg.MaxFileSize = v.GetInt64("max-file-size")
	cfg.Verbose = v.GetBool("verbose")
	cfg.ShowVersion = v.GetBool("version")

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if positional := fs.Args(); len(positional) > 0 {
		if len(positional) > 1 {
			return nil, fmt.Errorf("expected exactly one input PDF, got %d arguments", len(positional))
		}
		path := positional[0]
		if expanded, err := filepath.Abs(path); err == nil {
			path = expanded
		}
		cfg.InputPath = path
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input PDF path is required")
	}
	switch c.OCRMode {
	case OCRNever, OCRAuto, OCRAlways:
	default:
		return fmt.Errorf("invalid ocr mode %q (want %s, %s or %s)", c.OCRMode, OCRNever, OCRAuto, OCRAlways)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("max file size must not be negative")
	}
	return nil
}

// ResolveOutputPath determines where the output TXT lands. With no explicit
// output the file is written next to the input as <input>.txt; a directory
// target resolves to <dir>/<input stem>.txt; anything else gets a .txt suffix
// forced.
func (c *Config) ResolveOutputPath() string {
	if strings.TrimSpace(c.OutputPath) == "" {
		return strings.TrimSuffix(c.InputPath, filepath.Ext(c.InputPath)) + ".txt"
	}

	out := c.OutputPath
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		stem := strings.TrimSuffix(filepath.Base(c.InputPath), filepath.Ext(c.InputPath))
		return filepath.Join(out, stem+".txt")
	}
	if !strings.EqualFold(filepath.Ext(out), ".txt") {
		out = strings.TrimSuffix(out, filepath.Ext(out)) + ".txt"
	}
	return out
}
