// Package docload loads heterogeneous document sources (plain text and PDF
// files, single or whole directory trees) into a flat ordered list of text
// strings plus per-unit metadata, ready for a chunking/embedding pipeline.
//
// A loader instance accumulates the results of one load call and is not
// safe for concurrent use; run parallel loads on separate instances and
// merge outside.
package docload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sanonone/docload/pkg/metrics"
	"github.com/sanonone/docload/pkg/pdftext"
)

// DocumentLoader resolves a path to source files and flattens their text
// content into ordered document/metadata collections.
type DocumentLoader struct {
	cfg       Config
	extractor *pdftext.Extractor

	documents []string
	metadata  []pdftext.Result
	images    []pdftext.Image
}

// NewDocumentLoader builds a loader with the builtin PDF backends.
func NewDocumentLoader(cfg Config) *DocumentLoader {
	return &DocumentLoader{
		cfg:       cfg.withDefaults(),
		extractor: pdftext.NewExtractor(),
	}
}

// LoadDocuments loads every supported document reachable from path, which
// may be a single file or a directory tree, and returns the accumulated
// document strings in discovery order (walk order, then page order).
//
// The configured PDF strategy is validated up front, so a bad strategy
// string fails regardless of what is on disk.
func (l *DocumentLoader) LoadDocuments(path string) ([]string, error) {
	if err := l.extractor.ValidStrategy(l.cfg.PDFStrategy); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, path, err)
	}

	switch {
	case info.IsDir():
		err = l.loadDirectory(path)
	case info.Mode().IsRegular():
		err = l.loadFile(path)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	if err != nil {
		return nil, err
	}
	return l.documents, nil
}

// Metadata returns the per-page records accumulated so far. Only PDF
// extraction produces metadata; text files contribute documents without a
// record, so in mixed directory loads the two collections are not
// positionally aligned.
func (l *DocumentLoader) Metadata() []pdftext.Result {
	return l.metadata
}

// Documents returns the accumulated document strings.
func (l *DocumentLoader) Documents() []string {
	return l.documents
}

// Images returns the assets extracted from PDFs when Config.ExtractImages
// is set.
func (l *DocumentLoader) Images() []pdftext.Image {
	return l.images
}

// loadFile dispatches a single file by extension. Unlike the directory
// walk, everything here is fatal: the caller named this exact file.
func (l *DocumentLoader) loadFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case l.isTextExt(ext):
		return l.loadTextDocument(path)
	case ext == ".pdf":
		if !l.extractor.Supported() {
			return fmt.Errorf("%w: cannot load %s", ErrPDFUnavailable, path)
		}
		return l.loadPDF(path)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// loadDirectory walks the tree under root, applying the same per-extension
// dispatch to every file. Hidden entries and unsupported extensions are
// skipped without complaint; PDFs are skipped when no backend is compiled
// in. A text decode failure aborts the whole walk.
func (l *DocumentLoader) loadDirectory(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}
		if !l.allowed(info.Name()) {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		switch {
		case l.isTextExt(ext):
			return l.loadTextDocument(path)
		case ext == ".pdf":
			if !l.extractor.Supported() {
				slog.Debug("[LOAD] Skipping PDF, no backend available", "path", path)
				return nil
			}
			return l.loadPDF(path)
		default:
			return nil
		}
	})
}

func (l *DocumentLoader) loadTextDocument(path string) error {
	start := time.Now()
	text, err := readTextFile(path, l.cfg.Encoding)
	if err != nil {
		return err
	}
	l.documents = append(l.documents, text)

	metrics.DocumentsLoaded.WithLabelValues("text").Inc()
	metrics.LoadDuration.WithLabelValues("text").Observe(time.Since(start).Seconds())
	return nil
}

func (l *DocumentLoader) loadPDF(path string) error {
	start := time.Now()
	results, err := l.extractor.Extract(path, l.cfg.PDFStrategy)
	if err != nil {
		return err
	}

	for _, res := range results {
		l.documents = append(l.documents, res.Text)
	}
	l.metadata = append(l.metadata, results...)

	metrics.DocumentsLoaded.WithLabelValues("pdf").Add(float64(len(results)))
	metrics.LoadDuration.WithLabelValues("pdf").Observe(time.Since(start).Seconds())

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		if info, err := pdftext.ReadInfo(path); err == nil {
			slog.Debug("[LOAD] PDF processed", "path", path, "pages", info.Pages, "extracted", len(results))
		}
	}

	if l.cfg.ExtractImages && l.cfg.AssetsDir != "" {
		imgs, err := pdftext.ExtractImages(path, l.cfg.AssetsDir)
		if err != nil {
			slog.Warn("[LOAD] Image extraction failed", "path", path, "error", err)
		} else {
			l.images = append(l.images, imgs...)
		}
	}
	return nil
}

func (l *DocumentLoader) isTextExt(ext string) bool {
	for _, e := range l.cfg.TextExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// allowed applies the include (whitelist) and exclude (blacklist) glob
// patterns against the bare file name, the way filepath.Match expects.
func (l *DocumentLoader) allowed(name string) bool {
	if len(l.cfg.IncludePatterns) > 0 {
		matched := false
		for _, pattern := range l.cfg.IncludePatterns {
			if ok, _ := filepath.Match(pattern, name); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pattern := range l.cfg.ExcludePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return false
		}
	}
	return true
}
