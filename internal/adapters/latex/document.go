// Package latex renders annotation text to an image through pdflatex and a rasterizer.
package latex

import (
	"strconv"
	"strings"

	"go.trai.ch/texcache/internal/core/domain"
)

// Document returns a minimal LaTeX document that typesets text on an
// otherwise empty page.
func Document(text string, opts domain.DocumentOptions) string {
	var b strings.Builder

	b.WriteString(`\documentclass`)
	if opts.FontSize != "" {
		b.WriteString("[" + opts.FontSize + "]")
	}
	b.WriteString("{" + opts.Class + "}\n")

	if len(opts.Packages) > 0 {
		b.WriteString(`\usepackage{` + strings.Join(opts.Packages, ",") + "}\n")
	}

	b.WriteString(`\begin{document}` + "\n")
	b.WriteString(`\thispagestyle{empty}` + "\n")
	b.WriteString(text + "\n")
	b.WriteString(`\end{document}` + "\n")

	return b.String()
}

// CompileCommand returns the compiler invocation for entry.
func CompileCommand(tc domain.Toolchain, entry domain.CacheEntry) []string {
	argv := make([]string, 0, len(tc.Compiler)+1)
	argv = append(argv, tc.Compiler...)
	return append(argv, entry.Source)
}

// RasterizeCommand returns the rasterizer invocation for entry.
// The arguments follow ImageMagick convert: density, input, trim, repage, output.
func RasterizeCommand(tc domain.Toolchain, entry domain.CacheEntry) []string {
	argv := make([]string, 0, len(tc.Rasterizer)+6)
	argv = append(argv, tc.Rasterizer...)
	return append(argv,
		"-density", strconv.Itoa(tc.Density),
		entry.Document,
		"-trim",
		"+repage",
		entry.Image,
	)
}
