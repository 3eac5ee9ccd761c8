// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package verdict synthesizes per-ingredient safety verdicts: it
// composes a prompt from the user profile and weighted search evidence,
// invokes a generative model once, and parses the structured response.
package verdict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// ErrMalformedResponse reports that the model's output could not be
// parsed into the expected verdict structure after fence stripping.
// The raw output goes to the diagnostic writer, never to the caller.
var ErrMalformedResponse = errors.New("model response is not valid verdict JSON")

// ErrUpstream reports a failed generative model call. The wrapping
// error carries the upstream HTTP status.
var ErrUpstream = errors.New("generative model call failed")

// Generator abstracts the generative model so tests can supply a
// deterministic fake returning canned structured output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// modelResponse is the JSON document the model is instructed to return.
type modelResponse struct {
	Ingredients []types.SafetyVerdict `json:"ingredients"`
}

// Synthesize produces exactly one SafetyVerdict per ingredient in
// allIngredients, in input order. Prioritized evidence records get
// their top snippets quoted in the prompt; the rest of the list is
// handed to the model for general-knowledge treatment. The whole call
// fails on a malformed response; there is no per-ingredient fallback.
func Synthesize(ctx context.Context, gen Generator, prioritized []types.IngredientEvidence, allIngredients []string, profile types.UserProfile, diag io.Writer) ([]types.SafetyVerdict, error) {
	prompt, err := BuildPrompt(prioritized, allIngredients, profile)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating analysis: %w", err)
	}

	var parsed modelResponse
	if err := json.Unmarshal([]byte(StripFences(raw)), &parsed); err != nil {
		fmt.Fprintf(diag, "unparseable model response: %s\n", raw)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return reorder(parsed.Ingredients, allIngredients, diag)
}

// StripFences removes markdown code-fence delimiters the model may wrap
// around its JSON payload. Stripping a fenced payload yields the same
// bytes as an unfenced one.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// reorder maps model-order verdicts back to input order. The model's
// output order is not contractually stable, so callers always see
// verdicts in the order they submitted ingredients. A verdict missing
// for any input ingredient makes the whole response malformed; verdicts
// for unknown names are dropped with a diagnostic line.
func reorder(verdicts []types.SafetyVerdict, allIngredients []string, diag io.Writer) ([]types.SafetyVerdict, error) {
	byName := make(map[string]types.SafetyVerdict, len(verdicts))
	known := make(map[string]bool, len(allIngredients))
	for _, ing := range allIngredients {
		known[strings.ToLower(strings.TrimSpace(ing))] = true
	}

	for _, v := range verdicts {
		key := strings.ToLower(strings.TrimSpace(v.Name))
		if !known[key] {
			fmt.Fprintf(diag, "dropping verdict for unknown ingredient %q\n", v.Name)
			continue
		}
		byName[key] = v
	}

	ordered := make([]types.SafetyVerdict, 0, len(allIngredients))
	for _, ing := range allIngredients {
		v, ok := byName[strings.ToLower(strings.TrimSpace(ing))]
		if !ok {
			return nil, fmt.Errorf("%w: no verdict for ingredient %q", ErrMalformedResponse, ing)
		}
		// Keep the caller's spelling of the name.
		v.Name = ing
		ordered = append(ordered, v)
	}
	return ordered, nil
}
