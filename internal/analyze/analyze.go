// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze orchestrates the ingredient analysis pipeline:
// evidence retrieval, scoring and selection, then verdict synthesis.
// One pass, fail-fast; a stage failure stops the run and surfaces to
// the caller tagged with the stage that produced it.
package analyze

import (
	"context"
	"fmt"
	"io"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/search"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/verdict"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// Stage identifies which pipeline stage produced a failure.
type Stage string

const (
	StageRetrieval Stage = "retrieval"
	StageSynthesis Stage = "synthesis"
)

// StageError wraps a stage failure with its origin. The wrapped error
// keeps its kind (credential, upstream status, parse) for errors.Is.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Pipeline wires the analysis stages together. Collaborators are
// injected so tests can substitute mocks; the pipeline owns no state
// across invocations and is safe for concurrent use.
type Pipeline struct {
	backend search.Backend
	gen     verdict.Generator
	cfg     types.SearchConfig
	diag    io.Writer
}

// New builds a Pipeline. diag receives progress and diagnostic lines;
// nil discards them.
func New(backend search.Backend, gen verdict.Generator, cfg types.SearchConfig, diag io.Writer) *Pipeline {
	if diag == nil {
		diag = io.Discard
	}
	return &Pipeline{backend: backend, gen: gen, cfg: cfg, diag: diag}
}

// Analyze runs the three stages for one ingredient list and profile
// and returns one SafetyVerdict per input ingredient, in input order.
// No partial results: any stage failure aborts the run.
func (p *Pipeline) Analyze(ctx context.Context, ingredients []string, profile types.UserProfile) ([]types.SafetyVerdict, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("ingredient list is empty")
	}

	fmt.Fprintf(p.diag, "analyzing %d ingredients\n", len(ingredients))

	results, err := search.Retrieve(ctx, p.backend, ingredients, p.cfg)
	if err != nil {
		return nil, &StageError{Stage: StageRetrieval, Err: err}
	}
	fmt.Fprintf(p.diag, "retrieved %d search results\n", len(results))

	scored := search.Score(results, ingredients)
	prioritized := search.SelectTop(scored, p.cfg.TopIngredients)
	for _, ev := range prioritized {
		fmt.Fprintf(p.diag, "prioritized %s (score %.1f, %d snippets)\n",
			ev.Ingredient, ev.TotalScore, len(ev.Snippets))
	}

	verdicts, err := verdict.Synthesize(ctx, p.gen, prioritized, ingredients, profile, p.diag)
	if err != nil {
		return nil, &StageError{Stage: StageSynthesis, Err: err}
	}

	fmt.Fprintf(p.diag, "analysis complete: %d verdicts\n", len(verdicts))
	return verdicts, nil
}
