package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with injected buffers for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (lg *logger.Logger, out, errOut *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}
	lg = logger.New().(*logger.Logger)
	lg.SetOutput(out, errOut)
	return lg, out, errOut
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "digest progress line", msg: "7046d961a8144b7b2c2da6066849a9f889ff2ac9 x^2", goldenName: "info_digest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, out, errOut := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, out.Bytes())
			assert.Empty(t, errOut.String())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, out, errOut := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", out.Bytes())
	assert.Empty(t, errOut.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: field cache_directory not found"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, out, errOut := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, errOut.Bytes())
			assert.Empty(t, out.String())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, out, errOut := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, _, errOut := newTestLogger(t)

	err := zerr.Wrap(
		zerr.Wrap(errors.New("exit status 1"), "command failed"),
		"LaTeX compilation failed",
	)
	lg.Error(err)

	got := errOut.String()
	assert.True(t, strings.HasPrefix(got, "✗ Error: LaTeX compilation failed"), got)
	assert.Contains(t, got, "Caused by:")
	assert.Contains(t, got, "→ exit status 1")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, out, errOut := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("boom"))

	var info map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "hello", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_SetOutput_NilDefaults(t *testing.T) {
	lg := logger.New().(*logger.Logger)
	assert.NotPanics(t, func() {
		lg.SetOutput(nil, nil)
	})
}
