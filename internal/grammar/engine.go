package grammar

import (
	"sync"

	"github.com/elvin52/quran-quiz-sub001/internal/domain/entities"
)

// Detector is a stateless rule engine for one construction type.
type Detector interface {
	Type() entities.ConstructionType
	Detect(segments []entities.Segment) []entities.Construction
}

// Engine dispatches the four construction detectors. It holds no mutable
// state, so any number of engines can run concurrently; construct one
// explicitly instead of sharing a global.
type Engine struct {
	detectors []Detector
}

// NewEngine creates an engine with the four standard detectors.
func NewEngine() *Engine {
	return &Engine{
		detectors: []Detector{
			NewIdafaDetector(),
			NewJarMajrurDetector(),
			NewFilFailDetector(),
			NewHarfNasbDetector(),
		},
	}
}

// DetectAll runs every detector over the sequence and concatenates their
// outputs. The detectors are independent and run concurrently; results are
// collected per detector slot, so the final list is deterministic for a
// given input regardless of scheduling.
func (e *Engine) DetectAll(segments []entities.Segment) []entities.Construction {
	results := make([][]entities.Construction, len(e.detectors))

	var wg sync.WaitGroup
	for i, d := range e.detectors {
		wg.Add(1)
		go func(i int, d Detector) {
			defer wg.Done()
			results[i] = d.Detect(segments)
		}(i, d)
	}
	wg.Wait()

	var out []entities.Construction
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// DetectType runs only the detector for the given construction type.
// Unknown types yield nil.
func (e *Engine) DetectType(segments []entities.Segment, t entities.ConstructionType) []entities.Construction {
	for _, d := range e.detectors {
		if d.Type() == t {
			return d.Detect(segments)
		}
	}
	return nil
}

// Chains assembles possession chains from a detection result. Non-idafa
// constructions are ignored.
func (e *Engine) Chains(constructions []entities.Construction) []entities.Chain {
	return AssembleChains(constructions)
}
