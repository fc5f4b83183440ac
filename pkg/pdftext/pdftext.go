// Package pdftext extracts plain text from PDF files, one result per page.
//
// Text extraction quality varies a lot between PDF libraries depending on how
// the document was produced, so pdftext wraps several independent backends
// behind one call. The "hybrid" strategy tries them in a fixed priority order
// (fastest and most reliable first) and returns the output of the first one
// that produces anything. A failing backend is never fatal: it is logged and
// the chain moves on.
//
// Builtin backends are registered at init time from build-tag guarded files.
// Building with the "nopdf" tag (or without cgo, for the MuPDF backend)
// leaves them out entirely; callers can check Supported before relying on
// PDF extraction.
package pdftext

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sanonone/docload/pkg/metrics"
)

// Method names for the builtin backends, in hybrid priority order.
const (
	MethodMuPDF  = "mupdf"  // gen2brain/go-fitz, fast and reliable (cgo)
	MethodLayout = "layout" // ledongthuc/pdf row-based extraction
	MethodPlain  = "plain"  // rsc.io/pdf basic extraction

	// StrategyHybrid tries the builtin backends in order and keeps the
	// first non-empty result.
	StrategyHybrid = "hybrid"
)

var (
	// ErrUnknownStrategy is returned for a strategy string that names
	// neither a registered backend nor the hybrid chain.
	ErrUnknownStrategy = errors.New("unknown extraction strategy")
	// ErrBackendUnavailable is returned when a strategy names a builtin
	// backend that was not compiled into this binary.
	ErrBackendUnavailable = errors.New("extraction backend not available in this build")
)

// Result is one page of extracted text. Text is always non-empty and
// trimmed; Page is 1-based within Source.
type Result struct {
	Text   string `json:"text"`
	Page   int    `json:"page"`
	Method string `json:"method"`
	Source string `json:"source"`
}

// ExtractFunc reads one PDF file and returns its non-empty pages in order.
type ExtractFunc func(path string) ([]Result, error)

// hybridOrder is the fallback priority for the hybrid strategy.
var hybridOrder = []string{MethodMuPDF, MethodLayout, MethodPlain}

// builtins collects the backends compiled into this binary. The build-tag
// guarded backend files add themselves here from init().
var builtins = map[string]ExtractFunc{}

func registerBuiltin(method string, fn ExtractFunc) {
	builtins[method] = fn
}

// builtinMethod reports whether name is a known builtin method, compiled in
// or not. Used to tell "unavailable" apart from "unknown".
func builtinMethod(name string) bool {
	for _, m := range hybridOrder {
		if m == name {
			return true
		}
	}
	return false
}

// Extractor dispatches extraction calls to named backends.
// The zero value has no backends; use NewExtractor for the builtins.
type Extractor struct {
	backends map[string]ExtractFunc
}

// NewExtractor returns an Extractor loaded with every builtin backend
// compiled into this binary.
func NewExtractor() *Extractor {
	e := &Extractor{backends: make(map[string]ExtractFunc, len(builtins))}
	for method, fn := range builtins {
		e.backends[method] = fn
	}
	return e
}

// Register adds or replaces a backend under the given method name.
// Registered names become valid strategy strings for Extract.
func (e *Extractor) Register(method string, fn ExtractFunc) {
	if e.backends == nil {
		e.backends = make(map[string]ExtractFunc)
	}
	e.backends[method] = fn
}

// Supported reports whether any backend is available. When false, PDF
// extraction is structurally unavailable and only text loading works.
func (e *Extractor) Supported() bool {
	return len(e.backends) > 0
}

// Methods returns the available backend names, sorted.
func (e *Extractor) Methods() []string {
	methods := make([]string, 0, len(e.backends))
	for m := range e.backends {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// ValidStrategy checks a strategy string without touching any file.
// It accepts every registered backend name plus "hybrid".
func (e *Extractor) ValidStrategy(strategy string) error {
	if strategy == StrategyHybrid {
		return nil
	}
	if _, ok := e.backends[strategy]; ok {
		return nil
	}
	if builtinMethod(strategy) {
		return fmt.Errorf("%w: %q (build without the nopdf tag, mupdf also needs cgo)", ErrBackendUnavailable, strategy)
	}
	return fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// Extract runs the named strategy against the file at path.
//
// For a single named backend the call is best effort: extraction failures
// are logged and whatever pages were produced before the failure are
// returned with a nil error. Only a bad strategy string is an error.
func (e *Extractor) Extract(path, strategy string) ([]Result, error) {
	if strategy == StrategyHybrid {
		return e.extractHybrid(path), nil
	}

	fn, ok := e.backends[strategy]
	if !ok {
		return nil, e.ValidStrategy(strategy)
	}

	results, err := safeExtract(strategy, fn, path)
	if err != nil {
		slog.Error("[PDF] Extraction failed", "method", strategy, "path", path, "error", err)
		metrics.PDFBackendFailures.WithLabelValues(strategy).Inc()
	}
	metrics.PDFPagesExtracted.WithLabelValues(strategy).Add(float64(len(results)))
	return results, nil
}

// extractHybrid walks the priority chain and stops at the first backend
// that yields at least one page. Results never mix backends. If everything
// fails or comes back empty the result is an empty list, not an error.
func (e *Extractor) extractHybrid(path string) []Result {
	for _, method := range hybridOrder {
		fn, ok := e.backends[method]
		if !ok {
			continue
		}
		results, err := safeExtract(method, fn, path)
		if err != nil {
			slog.Warn("[PDF] Backend failed, trying next", "method", method, "path", path, "error", err)
			metrics.PDFBackendFailures.WithLabelValues(method).Inc()
			continue
		}
		if len(results) > 0 {
			metrics.PDFPagesExtracted.WithLabelValues(method).Add(float64(len(results)))
			return results
		}
		slog.Debug("[PDF] Backend returned no text", "method", method, "path", path)
	}
	return nil
}

// safeExtract shields callers from panicking backends. The rsc.io/pdf
// derived readers panic on malformed cross reference tables instead of
// returning an error.
func safeExtract(method string, fn ExtractFunc, path string) (results []Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic while reading %s: %v", method, path, r)
		}
	}()
	return fn(path)
}

// pageResult trims raw page text and builds a Result, or reports that the
// page held nothing worth keeping.
func pageResult(text string, page int, method, source string) (Result, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, false
	}
	return Result{Text: trimmed, Page: page, Method: method, Source: source}, true
}
