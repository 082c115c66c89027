package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// LogHandler renders records as a compact single line with a colourized
// level tag and an optional [module] prefix. Structured attributes are
// recovered from an inner JSON handler so that WithAttrs/WithGroup keep
// working the way slog expects.
type LogHandler struct {
	subHandler  slog.Handler
	out         io.Writer
	buffer      *bytes.Buffer
	bufferMutex *sync.Mutex
}

const (
	reset = "\033[0m"

	cyan        = 36
	lightGray   = 37
	darkGray    = 90
	lightRed    = 91
	lightYellow = 93
)

func colorize(colorCode int, v string) string {
	return fmt.Sprintf("\033[%sm%s%s", strconv.Itoa(colorCode), v, reset)
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.subHandler.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{subHandler: h.subHandler.WithAttrs(attrs), out: h.out, buffer: h.buffer, bufferMutex: h.bufferMutex}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{subHandler: h.subHandler.WithGroup(name), out: h.out, buffer: h.buffer, bufferMutex: h.bufferMutex}
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + " "

	switch r.Level {
	case slog.LevelDebug:
		level = colorize(darkGray, level)
	case slog.LevelInfo:
		level = colorize(cyan, level)
	case slog.LevelWarn:
		level = colorize(lightYellow, level)
	case slog.LevelError:
		level = colorize(lightRed, level)
	}

	attrs, err := h.parseAttributes(ctx, r)
	if err != nil {
		return err
	}

	var line bytes.Buffer
	line.WriteString(colorize(lightGray, r.Time.Format("15:04:05.000 ")))
	line.WriteString(level)
	if attrs["module"] != nil {
		line.WriteString(colorize(lightGray, fmt.Sprintf("[%s] ", attrs["module"])))
	}
	line.WriteString(r.Message)
	line.WriteByte('\n')
	_, err = h.out.Write(line.Bytes())
	return err
}

func (h *LogHandler) parseAttributes(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.bufferMutex.Lock()
	defer func() {
		h.buffer.Reset()
		h.bufferMutex.Unlock()
	}()
	if err := h.subHandler.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any
	err := json.Unmarshal(h.buffer.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}
	return attrs, nil
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	b := &bytes.Buffer{}
	return &LogHandler{
		out:    out,
		buffer: b,
		subHandler: slog.NewJSONHandler(b, &slog.HandlerOptions{
			Level:       opts.Level,
			AddSource:   opts.AddSource,
			ReplaceAttr: opts.ReplaceAttr,
		}),
		bufferMutex: &sync.Mutex{},
	}
}

// Setup installs the handler as the slog default. Debug drops the level
// floor to slog.LevelDebug.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(NewHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}

// Module returns a logger whose records carry the given module name,
// rendered as a [name] prefix by the handler.
func Module(name string) *slog.Logger {
	return slog.Default().With(slog.String("module", name))
}

// Fatalf reports a startup failure there is no recovering from and
// terminates the process.
func Fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
