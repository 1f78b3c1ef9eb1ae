package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"imgconv/encoder"
	"imgconv/logger"

	"github.com/nfnt/resize"
)

// ConvertStatus classifies the outcome of a single file conversion.
type ConvertStatus int

const (
	StatusConverted ConvertStatus = iota
	StatusUnsupported
	StatusNotFound
	StatusFailed
)

type ConvertResult struct {
	Status     ConvertStatus
	OutputPath string
	Err        error
}

type Processor struct {
	Config  *Config
	Console *logger.Console
}

func NewProcessor(cfg *Config, console *logger.Console) *Processor {
	return &Processor{
		Config:  cfg,
		Console: console,
	}
}

// ConvertFile re-encodes one image into the output directory. Every
// failure is reported as a status line and folded into the result so
// the batch keeps going; a file is written only on success.
func (p *Processor) ConvertFile(inputPath string) ConvertResult {
	encode, ok := encoder.Get(p.Config.Format)
	if !ok {
		p.Console.Warn("Unsupported output format: %s", p.Config.Format)
		return ConvertResult{Status: StatusUnsupported}
	}

	img, _, err := encoder.Decode(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.Console.Error("Input file '%s' not found", inputPath)
			return ConvertResult{Status: StatusNotFound, Err: err}
		}
		p.Console.Error("An error occurred while processing '%s': %v", inputPath, err)
		return ConvertResult{Status: StatusFailed, Err: err}
	}

	if p.Config.MaxWidth > 0 && img.Bounds().Dx() > p.Config.MaxWidth {
		img = resize.Resize(uint(p.Config.MaxWidth), 0, img, resize.Lanczos3)
	}

	outputPath := filepath.Join(p.Config.OutputDir, outputFileName(inputPath, p.Config.Format))

	// Existing files are overwritten; no collision detection.
	out, err := os.Create(outputPath)
	if err != nil {
		p.Console.Error("An error occurred while processing '%s': %v", inputPath, err)
		return ConvertResult{Status: StatusFailed, Err: err}
	}

	err = encode(out, img, encoder.EncodeOptions{Quality: p.Config.Quality})
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(outputPath)
		p.Console.Error("An error occurred while processing '%s': %v", inputPath, err)
		return ConvertResult{Status: StatusFailed, Err: err}
	}

	p.Console.Success("Converted '%s' to '%s'", inputPath, outputPath)
	return ConvertResult{Status: StatusConverted, OutputPath: outputPath}
}

// outputFileName derives the target name: the source base name with
// its extension replaced by the lowercased format.
func outputFileName(inputPath, format string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + strings.ToLower(format)
}
