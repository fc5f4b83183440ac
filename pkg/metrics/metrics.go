package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Define global variables for metrics.
// We use 'promauto' which automatically registers metrics without complex initialization.
// Exposing them over HTTP is left to the embedding application.

var (
	// 1. Documents Loaded (Counter)
	// Counts documents appended to the output collection, labeled by source format.
	DocumentsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docload_documents_loaded_total",
			Help: "Total number of documents loaded",
		},
		[]string{"format"}, // "text" or "pdf"
	)

	// 2. Load Duration (Histogram)
	// Measures per-file load time. PDFs that fall through the whole backend
	// chain sit at the far end of these buckets.
	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docload_file_load_duration_seconds",
			Help:    "Duration of single file loads in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"format"},
	)

	// 3. PDF Pages Extracted (Counter)
	// Tracks which backend actually produced the text.
	PDFPagesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docload_pdf_pages_extracted_total",
			Help: "Total number of non-empty PDF pages extracted",
		},
		[]string{"method"},
	)

	// 4. PDF Backend Failures (Counter)
	// A high ratio of failures to pages on one backend usually means the
	// input corpus needs a different hybrid order.
	PDFBackendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docload_pdf_backend_failures_total",
			Help: "Total number of PDF backend extraction failures",
		},
		[]string{"method"},
	)
)
