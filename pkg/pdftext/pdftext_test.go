package pdftext

import (
	"errors"
	"fmt"
	"testing"
)

// fixed returns a backend that always yields the given pages.
func fixed(method string, pages ...string) ExtractFunc {
	return func(path string) ([]Result, error) {
		var out []Result
		for i, p := range pages {
			out = append(out, Result{Text: p, Page: i + 1, Method: method, Source: path})
		}
		return out, nil
	}
}

// failing returns a backend that always errors at the call boundary.
func failing(method string) ExtractFunc {
	return func(path string) ([]Result, error) {
		return nil, fmt.Errorf("%s: simulated failure", method)
	}
}

// tracking wraps a backend and records the call order.
func tracking(calls *[]string, method string, fn ExtractFunc) ExtractFunc {
	return func(path string) ([]Result, error) {
		*calls = append(*calls, method)
		return fn(path)
	}
}

func TestHybridFirstSuccessWins(t *testing.T) {
	var calls []string
	e := &Extractor{}
	e.Register(MethodMuPDF, tracking(&calls, MethodMuPDF, fixed(MethodMuPDF, "page one", "page two")))
	e.Register(MethodLayout, tracking(&calls, MethodLayout, fixed(MethodLayout, "should not be used")))
	e.Register(MethodPlain, tracking(&calls, MethodPlain, fixed(MethodPlain, "should not be used")))

	results, err := e.Extract("doc.pdf", StrategyHybrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Method != MethodMuPDF {
			t.Errorf("hybrid mixed backends: got method %q", r.Method)
		}
	}
	if len(calls) != 1 || calls[0] != MethodMuPDF {
		t.Errorf("expected only mupdf to run, got calls %v", calls)
	}
}

func TestHybridFallsThroughInPriorityOrder(t *testing.T) {
	var calls []string
	e := &Extractor{}
	e.Register(MethodMuPDF, tracking(&calls, MethodMuPDF, failing(MethodMuPDF)))
	e.Register(MethodLayout, tracking(&calls, MethodLayout, fixed(MethodLayout))) // empty result
	e.Register(MethodPlain, tracking(&calls, MethodPlain, fixed(MethodPlain, "rescued")))

	results, err := e.Extract("doc.pdf", StrategyHybrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Method != MethodPlain {
		t.Fatalf("expected single result from plain backend, got %+v", results)
	}

	want := []string{MethodMuPDF, MethodLayout, MethodPlain}
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("wrong fallback order: expected %v, got %v", want, calls)
		}
	}
}

func TestHybridAllBackendsEmptyOrFailing(t *testing.T) {
	e := &Extractor{}
	e.Register(MethodMuPDF, failing(MethodMuPDF))
	e.Register(MethodLayout, fixed(MethodLayout))
	e.Register(MethodPlain, failing(MethodPlain))

	results, err := e.Extract("doc.pdf", StrategyHybrid)
	if err != nil {
		t.Fatalf("hybrid must not error when everything fails, got: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestHybridRecoversFromPanickingBackend(t *testing.T) {
	e := &Extractor{}
	e.Register(MethodMuPDF, func(path string) ([]Result, error) {
		panic("malformed xref table")
	})
	e.Register(MethodLayout, fixed(MethodLayout, "still works"))

	results, err := e.Extract("doc.pdf", StrategyHybrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Text != "still works" {
		t.Fatalf("expected fallback result after panic, got %+v", results)
	}
}

func TestExtractSingleBackendKeepsPartialResults(t *testing.T) {
	e := &Extractor{}
	e.Register(MethodLayout, func(path string) ([]Result, error) {
		partial := []Result{{Text: "first page", Page: 1, Method: MethodLayout, Source: path}}
		return partial, errors.New("page 2 unreadable")
	})

	results, err := e.Extract("doc.pdf", MethodLayout)
	if err != nil {
		t.Fatalf("backend failure must not surface, got: %v", err)
	}
	if len(results) != 1 || results[0].Page != 1 {
		t.Fatalf("expected the partial page to survive, got %+v", results)
	}
}

func TestExtractStrategyValidation(t *testing.T) {
	e := &Extractor{}
	e.Register("custom", fixed("custom", "x"))

	testCases := []struct {
		name     string
		strategy string
		wantErr  error
	}{
		{name: "hybrid always valid", strategy: StrategyHybrid, wantErr: nil},
		{name: "registered backend valid", strategy: "custom", wantErr: nil},
		{name: "unknown strategy", strategy: "foo", wantErr: ErrUnknownStrategy},
		{name: "builtin not compiled in", strategy: MethodMuPDF, wantErr: ErrBackendUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := e.ValidStrategy(tc.strategy)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected valid strategy, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if _, extractErr := e.Extract("doc.pdf", tc.strategy); !errors.Is(extractErr, tc.wantErr) {
				t.Fatalf("Extract should agree with ValidStrategy, got %v", extractErr)
			}
		})
	}
}

func TestSupportedAndMethods(t *testing.T) {
	empty := &Extractor{}
	if empty.Supported() {
		t.Error("extractor without backends must report unsupported")
	}

	e := &Extractor{}
	e.Register(MethodPlain, fixed(MethodPlain))
	e.Register(MethodLayout, fixed(MethodLayout))
	if !e.Supported() {
		t.Error("extractor with backends must report supported")
	}

	methods := e.Methods()
	if len(methods) != 2 || methods[0] != MethodLayout || methods[1] != MethodPlain {
		t.Errorf("expected sorted method names, got %v", methods)
	}
}

func TestPageResultDropsWhitespaceOnlyPages(t *testing.T) {
	if _, ok := pageResult("   \n\t ", 1, MethodPlain, "doc.pdf"); ok {
		t.Error("whitespace-only page must be dropped")
	}

	res, ok := pageResult("  some text \n", 3, MethodPlain, "doc.pdf")
	if !ok {
		t.Fatal("non-empty page must be kept")
	}
	if res.Text != "some text" {
		t.Errorf("expected trimmed text, got %q", res.Text)
	}
	if res.Page != 3 || res.Method != MethodPlain || res.Source != "doc.pdf" {
		t.Errorf("unexpected result fields: %+v", res)
	}
}
