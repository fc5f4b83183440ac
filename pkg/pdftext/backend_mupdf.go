//go:build cgo && !nopdf

package pdftext

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/go-fitz"
)

func init() {
	registerBuiltin(MethodMuPDF, extractMuPDF)
}

// extractMuPDF uses the MuPDF bindings. First in the hybrid chain because
// it is by far the fastest and copes best with real-world files.
func extractMuPDF(path string) ([]Result, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("mupdf: failed to open %s: %w", path, err)
	}
	defer doc.Close()

	var results []Result
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			// Image-only or damaged page, keep going with the rest.
			slog.Warn("[PDF] Page extraction failed", "method", MethodMuPDF, "path", path, "page", i+1, "error", err)
			continue
		}
		if res, ok := pageResult(text, i+1, MethodMuPDF, path); ok {
			results = append(results, res)
		}
	}
	return results, nil
}
