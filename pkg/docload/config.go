package docload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sanonone/docload/pkg/pdftext"
)

// Config holds all parameters for a DocumentLoader.
type Config struct {
	// PDFStrategy selects the extraction backend: one of the pdftext
	// method names, or "hybrid" to fall through them in priority order.
	PDFStrategy string `yaml:"pdf_strategy"`

	// Encoding is the declared charset for text files (IANA name).
	// Defaults to utf-8, which is validated strictly.
	Encoding string `yaml:"encoding"`

	// TextExtensions lists the extensions read as plain text
	// (lowercase, with dot). Defaults to just ".txt".
	TextExtensions []string `yaml:"text_extensions"`

	// --- Directory walk filtering ---
	// Glob patterns matched against file names. Empty include list means
	// every supported file is accepted.
	IncludePatterns []string `yaml:"include_patterns"`
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// --- Optional PDF asset extraction ---
	ExtractImages bool   `yaml:"extract_images"`
	AssetsDir     string `yaml:"assets_dir"`
}

// DefaultConfig returns the configuration used when nothing is overridden:
// hybrid PDF extraction, strict UTF-8 text, .txt only.
func DefaultConfig() Config {
	return Config{
		PDFStrategy:    pdftext.StrategyHybrid,
		Encoding:       "utf-8",
		TextExtensions: []string{".txt"},
	}
}

// withDefaults fills the zero fields so a partially filled Config behaves
// like DefaultConfig for everything it does not mention.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PDFStrategy == "" {
		c.PDFStrategy = def.PDFStrategy
	}
	if c.Encoding == "" {
		c.Encoding = def.Encoding
	}
	if len(c.TextExtensions) == 0 {
		c.TextExtensions = def.TextExtensions
	}
	return c
}

// LoadConfig reads and parses a YAML configuration file. It uses Strict
// Mode (KnownFields) to prevent silent errors due to typos, and expands
// environment variables before decoding. An empty path yields defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	decoder := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}

	return cfg.withDefaults(), nil
}
