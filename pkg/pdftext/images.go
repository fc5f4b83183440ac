package pdftext

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Image is one embedded image pulled out of a PDF and saved under the
// assets directory. Name is derived from the content hash, so the same
// logo appearing on every page is stored once.
type Image struct {
	Name   string `json:"name"`
	Ext    string `json:"ext"`
	Path   string `json:"path"`
	Source string `json:"source"`
}

// ExtractImages extracts every embedded image from the PDF at path into
// outDir. pdfcpu writes into a temp dir first; files are then renamed by
// content hash and moved, which deduplicates repeated images across pages.
func ExtractImages(path, outDir string) ([]Image, error) {
	tempDir, err := os.MkdirTemp("", "docload_img_*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	// Plenty of real-world PDFs fail strict validation but extract fine.
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ExtractImagesFile(path, tempDir, nil, conf); err != nil {
		return nil, fmt.Errorf("pdfcpu image extraction failed for %s: %w", path, err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create assets dir: %w", err)
	}

	var images []Image
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(tempDir, entry.Name()))
		if err != nil {
			continue
		}

		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		hash := sha256.Sum256(data)
		name := fmt.Sprintf("%x.%s", hash[:8], ext)
		target := filepath.Join(outDir, name)

		if _, err := os.Stat(target); os.IsNotExist(err) {
			if err := os.WriteFile(target, data, 0o644); err != nil {
				slog.Warn("[PDF] Failed to save asset", "file", name, "error", err)
				continue
			}
		}

		images = append(images, Image{Name: name, Ext: ext, Path: target, Source: path})
	}

	// Hash names carry no page order, sort for stable output.
	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })

	if len(images) > 0 {
		slog.Debug("[PDF] Images extracted", "path", path, "count", len(images))
	}
	return images, nil
}
