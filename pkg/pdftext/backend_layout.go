//go:build !nopdf

package pdftext

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

func init() {
	registerBuiltin(MethodLayout, extractLayout)
}

// extractLayout reads pages row by row, which keeps columns and tables in a
// more useful order than a raw content-stream dump.
func extractLayout(path string) ([]Result, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: failed to open %s: %w", path, err)
	}
	defer f.Close()

	var results []Result
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		rows, err := p.GetTextByRow()
		if err != nil {
			slog.Warn("[PDF] Page extraction failed", "method", MethodLayout, "path", path, "page", pageIndex, "error", err)
			continue
		}

		var b strings.Builder
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}

		if res, ok := pageResult(b.String(), pageIndex, MethodLayout, path); ok {
			results = append(results, res)
		}
	}
	return results, nil
}
