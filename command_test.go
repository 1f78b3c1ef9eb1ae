package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"imgconv/logger"
)

func newTestConsole() *logger.Console {
	return logger.NewConsole(&logger.Options{
		Output:       io.Discard,
		EnableColors: false,
	})
}

func TestParseArgs_Defaults(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")

	cfg, err := parseArgs([]string{in, out, "WEBP"}, newTestConsole())
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}

	if cfg.InputDir != in {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, in)
	}
	if cfg.OutputDir != out {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, out)
	}
	if cfg.Format != "webp" {
		t.Errorf("Format = %q, want lowercased %q", cfg.Format, "webp")
	}
	if cfg.Quality != 80 {
		t.Errorf("Quality = %d, want default 80", cfg.Quality)
	}
	if cfg.MaxWidth != 0 {
		t.Errorf("MaxWidth = %d, want default 0", cfg.MaxWidth)
	}
}

func TestParseArgs_QualityFlag(t *testing.T) {
	in := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"flag before positionals", []string{"--quality", "50", in, "out", "webp"}},
		{"flag after positionals", []string{in, "out", "webp", "--quality", "50"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseArgs(tt.args, newTestConsole())
			if err != nil {
				t.Fatalf("parseArgs: %v", err)
			}
			if cfg.Quality != 50 {
				t.Errorf("Quality = %d, want 50", cfg.Quality)
			}
		})
	}
}

func TestParseArgs_MissingPositionals(t *testing.T) {
	if _, err := parseArgs([]string{"only", "two"}, newTestConsole()); err == nil {
		t.Error("parseArgs should fail with fewer than three positional args")
	}
	if _, err := parseArgs(nil, newTestConsole()); err == nil {
		t.Error("parseArgs should fail with no args")
	}
	if _, err := parseArgs([]string{"a", "b", "c", "d"}, newTestConsole()); err == nil {
		t.Error("parseArgs should fail with extra positional args")
	}
}

func TestParseArgs_MissingInputDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := parseArgs([]string{missing, "out", "webp"}, newTestConsole())
	if err == nil {
		t.Fatal("parseArgs should fail when the input directory does not exist")
	}
}

func TestParseArgs_InputNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := parseArgs([]string{file, "out", "webp"}, newTestConsole())
	if err == nil {
		t.Fatal("parseArgs should fail when the input path is a file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		quality  int
		maxWidth int
		wantErr  bool
	}{
		{"defaults", 80, 0, false},
		{"quality lower bound", 0, 0, false},
		{"quality upper bound", 100, 0, false},
		{"quality too low", -1, 0, true},
		{"quality too high", 101, 0, true},
		{"max-width negative", 80, -1, true},
		{"max-width set", 80, 1920, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Quality: tt.quality, MaxWidth: tt.maxWidth}
			err := cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
