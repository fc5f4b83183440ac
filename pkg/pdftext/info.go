package pdftext

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Info holds basic facts about a PDF file, gathered without extracting text.
type Info struct {
	Pages int   `json:"pages"`
	Size  int64 `json:"size"`
}

// ReadInfo returns the page count and file size for the PDF at path.
// It goes through pdfcpu, so it works even when no text backend is
// compiled in.
func ReadInfo(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to read page count of %s: %w", path, err)
	}

	return Info{Pages: pages, Size: fi.Size()}, nil
}
