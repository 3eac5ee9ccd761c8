// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ingredient
// analysis pipeline: search evidence, user skin profiles, safety
// verdicts, and stage configuration.
package types

// SearchResult is one raw result from the web search provider. The
// scorer matches results against ingredient names; results themselves
// carry no ingredient association.
type SearchResult struct {
	// Title is the result title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// Snippet is the short text excerpt shown for the result.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Link is the full URL of the result.
	Link string `json:"link" yaml:"link"`

	// DisplayDomain is the provider's display host (e.g.
	// "pubmed.ncbi.nlm.nih.gov"), used for trusted-domain scoring.
	DisplayDomain string `json:"display_domain" yaml:"display_domain"`
}

// Snippet is one search-result fragment attributed to a single
// ingredient, with its computed relevance weight.
type Snippet struct {
	// Text is the snippet body quoted in the synthesis prompt.
	Text string `json:"text" yaml:"text"`

	// Source is the display host the snippet came from.
	Source string `json:"source" yaml:"source"`

	// Link is the full URL of the originating result.
	Link string `json:"link" yaml:"link"`

	// Weight is the relevance weight assigned by the scorer. Positive
	// and unbounded; higher means stronger evidence.
	Weight float64 `json:"weight" yaml:"weight"`
}

// IngredientEvidence aggregates all matching snippets for one
// ingredient. Snippets keep discovery order; TotalScore is the sum of
// snippet weights.
type IngredientEvidence struct {
	Ingredient string    `json:"ingredient" yaml:"ingredient"`
	Snippets   []Snippet `json:"snippets" yaml:"snippets"`
	TotalScore float64   `json:"total_score" yaml:"total_score"`
}
