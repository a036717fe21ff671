package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

type textHandler struct {
	writer    io.Writer
	attrs     []slog.Attr
	isColored bool
	level     slog.Level
}

func newTextHandler(writer io.Writer, isColored bool, level slog.Level) slog.Handler {
	return &textHandler{
		writer:    writer,
		isColored: isColored,
		level:     level,
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	levelStr := getLevelName(r.Level)
	if h.isColored {
		levelStr = colorize(levelStr, r.Level)
	}

	_, _ = fmt.Fprintf(h.writer, "%s %s", levelStr, r.Message)

	for _, a := range h.attrs {
		_, _ = fmt.Fprintf(h.writer, " %s=%q", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "" || a.Equal(slog.Attr{}) {
			return true
		}
		_, _ = fmt.Fprintf(h.writer, " %s=%q", a.Key, a.Value)
		return true
	})

	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &textHandler{
		writer:    h.writer,
		attrs:     merged,
		isColored: h.isColored,
		level:     h.level,
	}
}

func (h *textHandler) WithGroup(string) slog.Handler {
	return h
}

func colorize(levelStr string, level slog.Level) string {
	const (
		reset  = "\033[0m"
		blue   = "\033[34m"
		cyan   = "\033[36m"
		green  = "\033[32m"
		yellow = "\033[33m"
		red    = "\033[31m"
		white  = "\033[37m"
		redBg  = "\033[41m"
	)

	switch {
	case level <= levelTrace:
		return cyan + levelStr + reset
	case level < slog.LevelInfo:
		return blue + levelStr + reset
	case level < slog.LevelWarn:
		return green + levelStr + reset
	case level < slog.LevelError:
		return yellow + levelStr + reset
	case level < levelCritical:
		return red + levelStr + reset
	default:
		return redBg + white + levelStr + reset
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
