package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"imgconv/logger"
)

type Config struct {
	InputDir  string
	OutputDir string
	Format    string
	Quality   int
	MaxWidth  int
	Version   string
}

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func ParseConfig(console *logger.Console) (*Config, error) {
	return parseArgs(os.Args[1:], console)
}

func parseArgs(args []string, console *logger.Console) (*Config, error) {
	cfg := &Config{
		Version: Version,
	}

	fs := flag.NewFlagSet("imgconv", flag.ContinueOnError)
	fs.IntVar(&cfg.Quality, "quality", 80, "Quality for lossy formats (0-100, higher is better)")
	fs.IntVar(&cfg.MaxWidth, "max-width", 0, "Downscale images wider than this many pixels (0 disables)")

	showVersion := fs.Bool("version", false, "Show version information")

	var usage strings.Builder
	fs.SetOutput(&usage)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *showVersion {
		versionInfo := fmt.Sprintf(
			"Version: %s\nBuild date: %s\nGit commit: %s",
			cfg.Version, BuildDate, GitCommit,
		)
		console.Box("imgconv version information", versionInfo)
		os.Exit(0)
	}

	positional := fs.Args()

	// Options may also appear after the positional arguments.
	if len(positional) > 3 {
		if err := fs.Parse(positional[3:]); err != nil {
			return nil, err
		}
		if rest := fs.Args(); len(rest) > 0 {
			return nil, fmt.Errorf("unexpected argument: %s", rest[0])
		}
		positional = positional[:3]
	}

	if len(positional) != 3 {
		console.Info("Usage: imgconv [options] <input_dir> <output_dir> <output_format>")
		console.Info("Formats: webp, png, jpeg, jpg")
		console.Info("Options:")

		usage.Reset()
		fs.PrintDefaults()
		for _, line := range strings.Split(usage.String(), "\n") {
			if line != "" {
				console.Log("  %s", line)
			}
		}

		return nil, fmt.Errorf("need input_dir, output_dir and output_format")
	}

	cfg.InputDir = positional[0]
	cfg.OutputDir = positional[1]
	cfg.Format = strings.ToLower(positional[2])

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	fi, err := os.Stat(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("input directory '%s' does not exist", cfg.InputDir)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("input path '%s' is not a directory", cfg.InputDir)
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Quality < 0 || cfg.Quality > 100 {
		return fmt.Errorf("error: quality must be in range 0-100")
	}
	if cfg.MaxWidth < 0 {
		return fmt.Errorf("error: max-width must not be negative")
	}
	return nil
}
