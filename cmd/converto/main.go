// Command converto converts a PDF's text content into a single TXT file,
// optionally falling back to OCR when the document carries no text layer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/Abhixnav0x1x/Converto/internal/config"
	"github.com/Abhixnav0x1x/Converto/internal/convert"
	"github.com/Abhixnav0x1x/Converto/internal/ocr"
	"github.com/Abhixnav0x1x/Converto/internal/output"
	"github.com/Abhixnav0x1x/Converto/internal/pdf"
)

var (
	version   = "dev"     // set by build flags
	buildTime = "unknown" // set by build flags
)

const (
	exitOK          = 0
	exitUsage       = 2
	exitConversion  = 3
	exitInterrupted = 130
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(version, args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	if cfg.ShowVersion {
		fmt.Printf("converto %s (built %s)\n", cfg.Version, buildTime)
		return exitOK
	}

	setupLogging(cfg)

	mode, err := convert.ParseMode(cfg.OCRMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	// Fail early on anything knowable before dispatch: broken input,
	// missing output directory, overwrite conflicts.
	validator := pdf.NewValidator(cfg.MaxFileSize)
	info, err := validator.ValidateFile(cfg.InputPath, cfg.Password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	outPath := cfg.ResolveOutputPath()
	sink := output.NewSink(cfg.Overwrite)
	if err := sink.CheckTarget(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	log.Printf("converting %s (%d pages, encrypted=%t, ocr=%s, workers=%d)",
		cfg.InputPath, info.PageCount, info.Encrypted, mode, cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The recognition backend is only wired up when a mode can reach it.
	var recognition convert.Backend
	if mode != convert.ModeNever {
		recognition = ocr.NewRecognitionBackend(nil)
	}
	converter := convert.NewConverter(pdf.NewTextLayerBackend(), recognition)

	text, err := converter.Convert(ctx, convert.Request{
		Path:     cfg.InputPath,
		Password: cfg.Password,
		Mode:     mode,
		Language: cfg.OCRLanguage,
		ToolPath: cfg.TesseractPath,
		Workers:  cfg.Workers,
	})
	if err != nil {
		if convert.IsCanceled(err) {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			return exitInterrupted
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConversion
	}

	if err := sink.Write(outPath, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConversion
	}

	fmt.Printf("Success: wrote text to %s\n", outPath)
	return exitOK
}

// setupLogging routes progress logging to stderr, quiet unless requested, so
// stdout carries nothing but the final status line.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags)
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
	}
}
