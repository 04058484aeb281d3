package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/ui/output"
	"go.trai.ch/texcache/internal/ui/style"
)

// PrettyHandler writes one plain line per record for terminals and pipes.
//
// Progress lines that start with a digest show the digest dimmed and the
// annotation text unstyled. Warnings, mostly tool stderr, are prefixed with
// "!" and errors with a cross.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stdout
	}

	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var line string
	switch {
	case r.Level >= slog.LevelError:
		line = h.paint(style.Cross+" "+r.Message, style.Red)
	case r.Level >= slog.LevelWarn:
		line = h.paint(style.Warning+" "+r.Message, style.Yellow)
	default:
		line = h.progress(r.Message)
	}

	if suffix := h.attrSuffix(r); suffix != "" {
		line += " " + h.paint(suffix, style.Slate)
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

// progress renders an info line, dimming a leading digest.
func (h *PrettyHandler) progress(msg string) string {
	head, rest, ok := strings.Cut(msg, " ")
	if ok && domain.Digest(head).Valid() {
		return h.paint(head, style.Slate) + " " + rest
	}
	return h.paint(msg, style.Slate)
}

func (h *PrettyHandler) paint(s string, color lipgloss.Color) string {
	return h.out.String(s).Foreground(h.out.Color(string(color))).String()
}

func (h *PrettyHandler) attrSuffix(r slog.Record) string {
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		parts = append(parts, formatAttr(h.group, attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, formatAttr(h.group, attr))
		return true
	})
	return strings.Join(parts, " ")
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clone(h.attrs), attrs...)
	return &clone
}

// WithGroup returns a new Handler whose attribute keys are prefixed with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}
