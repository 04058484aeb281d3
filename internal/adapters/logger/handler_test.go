package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColorHandler(buf *bytes.Buffer) *PrettyHandler {
	return &PrettyHandler{
		out:   termenv.NewOutput(buf, termenv.WithProfile(termenv.TrueColor)),
		level: slog.LevelInfo,
	}
}

func TestPrettyHandler_DigestLineKeepsTextUnstyled(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newColorHandler(&buf))

	log.Info("7046d961a8144b7b2c2da6066849a9f889ff2ac9 x^2")

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "\x1b["), got)
	assert.Contains(t, got, "7046d961a8144b7b2c2da6066849a9f889ff2ac9")
	assert.True(t, strings.HasSuffix(got, "\x1b[0m x^2\n"), got)
}

func TestPrettyHandler_PlainInfoIsDimmed(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newColorHandler(&buf))

	log.Info("not-a-digest x^2")

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "\x1b["), got)
	assert.True(t, strings.HasSuffix(got, "not-a-digest x^2\x1b[0m\n"), got)
}

func TestPrettyHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	h := &PrettyHandler{
		out:   termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)),
		level: slog.LevelWarn,
	}
	log := slog.New(h)

	log.Info("hidden")
	log.Warn("Overfull \\hbox")
	log.Error("boom")

	assert.Equal(t, "! Overfull \\hbox\n✗ boom\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)

	log := slog.New(h.WithGroup("render").WithAttrs([]slog.Attr{slog.String("digest", "abc")}))
	log.Info("done", "exit_code", 0)

	assert.Equal(t, "done render.digest=abc render.exit_code=0\n", buf.String())
}

func TestPrettyHandler_WithAttrsDoesNotShare(t *testing.T) {
	var buf bytes.Buffer
	base := NewPrettyHandler(&buf, nil).WithAttrs([]slog.Attr{slog.Int("a", 1)})
	left := base.WithAttrs([]slog.Attr{slog.Int("b", 2)})
	right := base.WithAttrs([]slog.Attr{slog.Int("c", 3)})

	require.NoError(t, left.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "l", 0)))
	require.NoError(t, right.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "r", 0)))

	assert.Equal(t, "l a=1 b=2\nr a=1 c=3\n", buf.String())
}
