package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/sanonone/docload/pkg/docload"
	"github.com/sanonone/docload/pkg/pdftext"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	strategy := flag.String("strategy", "", "PDF extraction strategy (mupdf, layout, plain, hybrid)")
	textEncoding := flag.String("encoding", "", "Declared encoding for text files (IANA name, default utf-8)")
	assetsDir := flag.String("assets-dir", "", "Directory for extracted PDF images (enables image extraction)")
	asJSON := flag.Bool("json", false, "Emit documents and metadata as JSON")
	withMeta := flag.Bool("meta", false, "Print per-page metadata after the documents")
	verbose := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: docload [flags] <file-or-directory>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := docload.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// Flags win over the config file.
	if *strategy != "" {
		cfg.PDFStrategy = *strategy
	}
	if *textEncoding != "" {
		cfg.Encoding = *textEncoding
	}
	if *assetsDir != "" {
		cfg.ExtractImages = true
		cfg.AssetsDir = *assetsDir
	}

	loader := docload.NewDocumentLoader(cfg)
	docs, err := loader.LoadDocuments(flag.Arg(0))
	if err != nil {
		log.Fatalf("Load failed: %v", err)
	}

	if *asJSON {
		out := struct {
			Documents []string         `json:"documents"`
			Metadata  []pdftext.Result `json:"metadata,omitempty"`
			Images    []pdftext.Image  `json:"images,omitempty"`
		}{docs, loader.Metadata(), loader.Images()}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("Failed to encode output: %v", err)
		}
		return
	}

	for i, doc := range docs {
		if i > 0 {
			fmt.Println("---")
		}
		fmt.Println(doc)
	}
	if *withMeta {
		for _, m := range loader.Metadata() {
			fmt.Fprintf(os.Stderr, "%s page %d via %s (%d chars)\n", m.Source, m.Page, m.Method, len(m.Text))
		}
	}
}
