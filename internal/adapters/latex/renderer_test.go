package latex_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/texcache/internal/adapters/latex"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRenderer(t *testing.T) (*latex.Renderer, *mocks.MockToolRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockRunner := mocks.NewMockToolRunner(ctrl)

	return latex.NewRenderer(mockRunner, mockLogger, domain.DefaultConfig()), mockRunner
}

func TestRenderer_Render(t *testing.T) {
	renderer, mockRunner := newRenderer(t)
	dir := t.TempDir()
	entry := domain.NewCacheEntry(dir, domain.NewDigest("x^2"))

	gomock.InOrder(
		mockRunner.EXPECT().
			Run(gomock.Any(), dir, []string{"pdflatex", entry.Source}).
			DoAndReturn(func(_ context.Context, _ string, _ []string) error {
				// The source must be on disk before the compiler runs.
				data, err := os.ReadFile(entry.SourcePath())
				require.NoError(t, err)
				assert.Contains(t, string(data), "\nx^2\n")
				return nil
			}),
		mockRunner.EXPECT().
			Run(gomock.Any(), dir, []string{
				"convert", "-density", "96", entry.Document, "-trim", "+repage", entry.Image,
			}).
			Return(nil),
	)

	require.NoError(t, renderer.Render(context.Background(), "x^2", entry))
}

func TestRenderer_Render_CompileFailureStops(t *testing.T) {
	renderer, mockRunner := newRenderer(t)
	dir := t.TempDir()
	entry := domain.NewCacheEntry(dir, domain.NewDigest(`\bad`))

	mockRunner.EXPECT().
		Run(gomock.Any(), dir, []string{"pdflatex", entry.Source}).
		Return(errors.New("exit status 1")).
		Times(1)

	err := renderer.Render(context.Background(), `\bad`, entry)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCompileFailed.Error())

	// The source stays behind for inspection.
	assert.FileExists(t, entry.SourcePath())
}

func TestRenderer_Render_RasterizeFailure(t *testing.T) {
	renderer, mockRunner := newRenderer(t)
	dir := t.TempDir()
	entry := domain.NewCacheEntry(dir, domain.NewDigest("x"))

	gomock.InOrder(
		mockRunner.EXPECT().Run(gomock.Any(), dir, gomock.Any()).Return(nil),
		mockRunner.EXPECT().Run(gomock.Any(), dir, gomock.Any()).Return(errors.New("exit status 1")),
	)

	err := renderer.Render(context.Background(), "x", entry)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRasterizeFailed.Error())
}

func TestRenderer_Render_SourceWriteFailure(t *testing.T) {
	renderer, _ := newRenderer(t)
	dir := filepath.Join(t.TempDir(), "missing")
	entry := domain.NewCacheEntry(dir, domain.NewDigest("x"))

	err := renderer.Render(context.Background(), "x", entry)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSourceWriteFailed.Error())
}

func TestRenderer_Render_OverwritesStaleSource(t *testing.T) {
	renderer, mockRunner := newRenderer(t)
	dir := t.TempDir()
	entry := domain.NewCacheEntry(dir, domain.NewDigest("y"))
	require.NoError(t, os.WriteFile(entry.SourcePath(), []byte("stale"), 0o600))

	mockRunner.EXPECT().Run(gomock.Any(), dir, gomock.Any()).Return(nil).Times(2)

	require.NoError(t, renderer.Render(context.Background(), "y", entry))

	data, err := os.ReadFile(entry.SourcePath())
	require.NoError(t, err)
	assert.Equal(t, latex.Document("y", domain.DefaultConfig().Document), string(data))
}
