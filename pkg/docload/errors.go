package docload

import "errors"

// Sentinel errors returned by DocumentLoader. All of them are wrapped with
// the offending path, match with errors.Is.
var (
	// ErrInvalidPath means the input path is neither a regular file nor a
	// directory.
	ErrInvalidPath = errors.New("path is neither a valid directory nor a file")

	// ErrUnsupportedFormat means a single-file load was asked for an
	// extension outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrPDFUnavailable means a PDF load was requested but no extraction
	// backend is compiled into this binary (nopdf build tag, or mupdf
	// without cgo).
	ErrPDFUnavailable = errors.New("pdf support not available in this build")

	// ErrDecode means a text file's bytes are not valid under the
	// declared encoding.
	ErrDecode = errors.New("invalid bytes for declared encoding")

	// ErrUnknownEncoding means the configured encoding name is not a
	// recognized IANA charset.
	ErrUnknownEncoding = errors.New("unknown text encoding")
)
