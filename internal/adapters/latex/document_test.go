package latex_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/texcache/internal/adapters/latex"
	"go.trai.ch/texcache/internal/core/domain"
)

func TestDocument(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		opts       domain.DocumentOptions
		goldenName string
	}{
		{
			name:       "default preamble",
			text:       "x^2",
			opts:       domain.DefaultConfig().Document,
			goldenName: "document_default",
		},
		{
			name: "custom preamble",
			text: "$\\frac{1}{2}$\nsecond line",
			opts: domain.DocumentOptions{
				Class: "minimal",
			},
			goldenName: "document_custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(latex.Document(tt.text, tt.opts)))
		})
	}
}

func TestCompileCommand(t *testing.T) {
	entry := domain.NewCacheEntry("text", domain.NewDigest("x^2"))
	tc := domain.DefaultConfig().Toolchain

	assert.Equal(t,
		[]string{"pdflatex", "7046d961a8144b7b2c2da6066849a9f889ff2ac9.tex"},
		latex.CompileCommand(tc, entry),
	)

	tc.Compiler = []string{"lualatex", "-interaction=nonstopmode"}
	assert.Equal(t,
		[]string{"lualatex", "-interaction=nonstopmode", "7046d961a8144b7b2c2da6066849a9f889ff2ac9.tex"},
		latex.CompileCommand(tc, entry),
	)
}

func TestRasterizeCommand(t *testing.T) {
	entry := domain.NewCacheEntry("text", domain.NewDigest("x^2"))
	tc := domain.DefaultConfig().Toolchain

	assert.Equal(t, []string{
		"convert", "-density", "96",
		"7046d961a8144b7b2c2da6066849a9f889ff2ac9.pdf",
		"-trim", "+repage",
		"7046d961a8144b7b2c2da6066849a9f889ff2ac9.png",
	}, latex.RasterizeCommand(tc, entry))

	tc.Rasterizer = []string{"magick"}
	tc.Density = 192
	got := latex.RasterizeCommand(tc, entry)
	assert.Equal(t, "magick", got[0])
	assert.Equal(t, "192", got[2])
}
