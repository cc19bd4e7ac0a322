package nlp

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/bgdnvk/archlens/internal/catalog"
	"github.com/bgdnvk/archlens/internal/model"
)

// ErrInvalidText is returned when the input is not valid UTF-8 and cannot be
// matched against the vocabularies.
var ErrInvalidText = errors.New("input text is not valid UTF-8")

// Pipeline is the public entry point of text inference: raw requirements
// text in, checked architecture record out. A pipeline is stateless between
// calls and safe for concurrent use once constructed.
type Pipeline struct {
	extractor  *Extractor
	recognizer *Recognizer
	analyzer   *Analyzer
	checker    *Checker
}

// NewPipeline wires the inference stages around one catalog.
func NewPipeline(c *catalog.Catalog) *Pipeline {
	return &Pipeline{
		extractor:  NewExtractor(c),
		recognizer: NewRecognizer(c),
		analyzer:   NewAnalyzer(),
		checker:    NewChecker(),
	}
}

// Analyze runs extraction, recognition, assembly, and the consistency
// checks. Any stage failure is wrapped once with a descriptive message and
// returned; substituting the fixed fallback record is the caller's decision,
// typically via AnalyzeOrFallback.
func (p *Pipeline) Analyze(text string) (*model.Architecture, error) {
	arch, err := p.run(text)
	if err != nil {
		return nil, fmt.Errorf("requirements analysis failed: %w", err)
	}
	return arch, nil
}

func (p *Pipeline) run(text string) (*model.Architecture, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidText
	}

	entities := p.extractor.Extract(text)
	intents := p.recognizer.Recognize(text)
	arch := p.analyzer.Assemble(text, entities, intents)
	p.checker.Check(arch)

	return arch, nil
}

// AnalyzeOrFallback runs Analyze and substitutes the fixed low-confidence
// basic record when analysis fails. The returned error reports what went
// wrong but the record is always usable; callers must treat the fallback as
// a legitimate result, not an exception.
func (p *Pipeline) AnalyzeOrFallback(text string) (*model.Architecture, error) {
	arch, err := p.Analyze(text)
	if err != nil {
		return model.FallbackArchitecture(), err
	}
	return arch, nil
}
