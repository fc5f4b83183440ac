//go:build !nopdf

package pdftext

import (
	"fmt"
	"strings"

	rpdf "rsc.io/pdf"
)

func init() {
	registerBuiltin(MethodPlain, extractPlain)
}

// extractPlain concatenates the raw text objects of each page. Last in the
// hybrid chain: it handles fewer encodings than the others but has no
// dependency on cgo or row reconstruction.
func extractPlain(path string) ([]Result, error) {
	r, err := rpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("plain: failed to open %s: %w", path, err)
	}

	var results []Result
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		var b strings.Builder
		var lastY float64
		for _, t := range p.Content().Text {
			// New baseline means a new line in the source layout.
			if lastY != 0 && t.Y != lastY {
				b.WriteByte('\n')
			}
			b.WriteString(t.S)
			lastY = t.Y
		}

		if res, ok := pageResult(b.String(), pageIndex, MethodPlain, path); ok {
			results = append(results, res)
		}
	}
	return results, nil
}
