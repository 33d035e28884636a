// Package pipeline wires the processing stages for one datasheet:
// text extraction → prompt + model call → canonicalization → summary.
//
// The pipeline is synchronous and stateless: one PDF in, one result out,
// nothing shared between invocations. Stages fail fast — except summary
// generation, which always yields something renderable.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/solarstack/datasheet-api/internal/services/normalize"
	"github.com/solarstack/datasheet-api/internal/services/pdf"
)

// SpecExtractor is the model-client dependency: raw datasheet text in,
// parsed JSON object out.
// Go Pattern: Accept interfaces, return structs. The concrete implementation
// lives in the extraction package; tests substitute a fake.
type SpecExtractor interface {
	Extract(ctx context.Context, datasheetText string) (map[string]any, error)
}

// Output is everything one processing call produces.
type Output struct {
	Result    *normalize.Result // Canonical extraction result
	Summary   normalize.Outcome // Rendered report, or an error description
	PageCount int
	WordCount int
}

// Processor runs the extraction pipeline.
type Processor struct {
	llm SpecExtractor

	// extractText is swapped out in tests; production uses pdf.Extract.
	extractText func(data []byte) (*pdf.ExtractionResult, error)
}

// New creates a Processor backed by the given model client.
func New(llm SpecExtractor) *Processor {
	return &Processor{
		llm:         llm,
		extractText: pdf.Extract,
	}
}

// Process runs the full pipeline on in-memory PDF data.
func (p *Processor) Process(ctx context.Context, data []byte) (*Output, error) {
	extracted, err := p.extractText(data)
	if err != nil {
		return nil, fmt.Errorf("PDF extraction failed: %w", err)
	}
	return p.run(ctx, extracted)
}

// ProcessFile runs the full pipeline on a PDF at the given path.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*Output, error) {
	extracted, err := pdf.ExtractFile(path)
	if err != nil {
		return nil, fmt.Errorf("PDF extraction failed: %w", err)
	}
	return p.run(ctx, extracted)
}

// run is the shared tail of the pipeline: the text is extracted exactly once
// before this point.
func (p *Processor) run(ctx context.Context, extracted *pdf.ExtractionResult) (*Output, error) {
	log.Printf("📄 Extracted %d pages (%d words)", extracted.PageCount, extracted.WordCount)

	raw, err := p.llm.Extract(ctx, extracted.Text)
	if err != nil {
		return nil, err
	}

	result := normalize.Canonicalize(raw)
	summary := normalize.Summarize(result)
	if summary.Failed {
		log.Printf("⚠️  Summary generation failed, returning error text: %s", summary.Text)
	}

	return &Output{
		Result:    result,
		Summary:   summary,
		PageCount: extracted.PageCount,
		WordCount: extracted.WordCount,
	}, nil
}
