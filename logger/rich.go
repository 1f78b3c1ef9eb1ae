package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
)

const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	BgRed   = "\033[41m"
)

type Options struct {
	Output       io.Writer
	TimeFormat   string
	Level        slog.Level
	AddSource    bool
	EnableColors bool
}

func DefaultOptions() *Options {
	return &Options{
		Level:        slog.LevelInfo,
		AddSource:    false,
		EnableColors: true,
		TimeFormat:   "2006-01-02 15:04:05.000",
		Output:       os.Stdout,
	}
}

type RichHandler struct {
	opts  *Options
	mu    sync.Mutex
	attrs []slog.Attr
}

func NewRichHandler(opts *Options) *RichHandler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = "2006-01-02 15:04:05.000"
	}

	return &RichHandler{opts: opts}
}

func (h *RichHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *RichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func (h *RichHandler) WithGroup(name string) slog.Handler {
	return h.clone()
}

func (h *RichHandler) clone() *RichHandler {
	h2 := &RichHandler{
		opts:  h.opts,
		attrs: make([]slog.Attr, len(h.attrs)),
	}
	copy(h2.attrs, h.attrs)
	return h2
}

func (h *RichHandler) Handle(ctx context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var builder strings.Builder

	levelColors := map[slog.Level]string{
		slog.LevelDebug: Cyan,
		slog.LevelInfo:  Green,
		slog.LevelWarn:  Yellow,
		slog.LevelError: Red,
	}

	levelColor := levelColors[record.Level]
	if !h.opts.EnableColors {
		levelColor = ""
	}

	timeStr := record.Time.Format(h.opts.TimeFormat)
	if h.opts.EnableColors {
		builder.WriteString(Blue)
	}
	builder.WriteString(timeStr)
	builder.WriteString(" ")
	if h.opts.EnableColors {
		builder.WriteString(Reset)
	}

	levelStr := fmt.Sprintf("%-5s", strings.ToUpper(record.Level.String()))
	if h.opts.EnableColors {
		builder.WriteString(levelColor)
		builder.WriteString(Bold)
	}
	builder.WriteString(levelStr)
	if h.opts.EnableColors {
		builder.WriteString(Reset)
	}
	builder.WriteString(" ")

	if h.opts.AddSource && record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := fs.Next()
		sourceFile := f.File
		if lastSlash := strings.LastIndex(sourceFile, "/"); lastSlash >= 0 {
			sourceFile = sourceFile[lastSlash+1:]
		}
		if h.opts.EnableColors {
			builder.WriteString(Magenta)
		}
		builder.WriteString(fmt.Sprintf("%s:%d", sourceFile, f.Line))
		if h.opts.EnableColors {
			builder.WriteString(Reset)
		}
		builder.WriteString(" ")
	}

	if h.opts.EnableColors {
		builder.WriteString(White)
		builder.WriteString(Bold)
	}
	builder.WriteString(record.Message)
	if h.opts.EnableColors {
		builder.WriteString(Reset)
	}

	_, err := fmt.Fprintln(h.opts.Output, builder.String())
	return err
}

func NewRichLogger(opts *Options) *slog.Logger {
	if opts == nil {
		opts = DefaultOptions()
	}
	handler := NewRichHandler(opts)
	return slog.New(handler)
}
