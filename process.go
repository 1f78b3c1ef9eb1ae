package main

import (
	"fmt"
	"os"
	"path/filepath"

	"imgconv/encoder"
)

type ProcessStats struct {
	TotalFiles      int
	Converted       int
	Skipped         int
	Unsupported     int
	NotFound        int
	Failed          int
	TotalInputSize  int64
	TotalOutputSize int64
}

// ProcessDirectory converts every image directly inside the input
// directory, one file at a time. Subdirectories are not descended
// into. Per-file failures never abort the batch.
func (p *Processor) ProcessDirectory() error {
	cfg := p.Config

	if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
		p.Console.Info("Created output directory: %s", cfg.OutputDir)
	}

	p.Console.Info("Processing directory: %s (format: %s, quality: %d)",
		cfg.InputDir, cfg.Format, cfg.Quality)

	spinner := p.Console.StartSpinner("Scanning input directory")
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		spinner.Stop(false, "Directory scan failed")
		return fmt.Errorf("cannot read input directory: %w", err)
	}
	spinner.Stop(true, fmt.Sprintf("Found %d directory entries", len(entries)))

	stats := &ProcessStats{}
	timer := p.Console.StartTimer("Batch conversion")
	bar := p.Console.NewProgressBar(int64(len(entries)), "Converting images")

	// ReadDir returns entries sorted by name, so output order is
	// stable across runs.
	for _, entry := range entries {
		path := filepath.Join(cfg.InputDir, entry.Name())

		if !entry.Type().IsRegular() {
			bar.Increment(1)
			continue
		}
		stats.TotalFiles++

		if _, err := encoder.Sniff(path); err != nil {
			p.Console.Warn("Skipping non-image file: '%s'", path)
			stats.Skipped++
			bar.Increment(1)
			continue
		}

		p.recordResult(stats, path, p.ConvertFile(path))
		bar.Increment(1)
	}

	bar.Complete()
	timer.End()
	p.displayResults(stats)

	return nil
}

func (p *Processor) recordResult(stats *ProcessStats, path string, res ConvertResult) {
	switch res.Status {
	case StatusConverted:
		stats.Converted++
		if fi, err := os.Stat(path); err == nil {
			stats.TotalInputSize += fi.Size()
		}
		if fi, err := os.Stat(res.OutputPath); err == nil {
			stats.TotalOutputSize += fi.Size()
		}
	case StatusUnsupported:
		stats.Unsupported++
	case StatusNotFound:
		stats.NotFound++
	default:
		stats.Failed++
	}
}

func (p *Processor) displayResults(stats *ProcessStats) {
	var sizeRatio float64
	if stats.TotalInputSize > 0 {
		sizeRatio = float64(stats.TotalOutputSize) / float64(stats.TotalInputSize) * 100
	}

	table := p.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Converted files", fmt.Sprintf("%d/%d", stats.Converted, stats.TotalFiles))
	table.AddRow("Skipped (not an image)", fmt.Sprintf("%d", stats.Skipped))
	table.AddRow("Unsupported format", fmt.Sprintf("%d", stats.Unsupported))
	table.AddRow("Vanished files", fmt.Sprintf("%d", stats.NotFound))
	table.AddRow("Failed files", fmt.Sprintf("%d", stats.Failed))
	table.AddRow("Original size", fmt.Sprintf("%.2f MB", float64(stats.TotalInputSize)/1024/1024))
	table.AddRow("Converted size", fmt.Sprintf("%.2f MB", float64(stats.TotalOutputSize)/1024/1024))
	table.AddRow("Size ratio", fmt.Sprintf("%.1f%%", sizeRatio))

	p.Console.Info("\nProcessing Summary:")
	table.Print()
}
