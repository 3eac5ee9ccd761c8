// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search retrieves web evidence for candidate ingredients and
// scores it for the analysis pipeline: one disjunctive search call per
// analysis, then per-ingredient snippet weighting and top-K selection.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// ErrCredentialsMissing reports absent search credentials. It surfaces
// before any network call is made.
var ErrCredentialsMissing = errors.New("search API credentials not configured")

// ErrBadStatus reports a non-success response from the search provider.
// The wrapping error carries the upstream HTTP status.
var ErrBadStatus = errors.New("search API returned non-success status")

// Backend issues a single web search. Implementations (Google Custom
// Search) are substituted with mocks in tests per the Strategy pattern.
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error)
}

// BuildQuery constructs the disjunctive search query for a batch of
// ingredients: each name quoted and scoped to the skincare domain,
// joined by logical OR.
func BuildQuery(ingredients []string) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		parts = append(parts, fmt.Sprintf("%q skincare", strings.TrimSpace(ing)))
	}
	return strings.Join(parts, " OR ")
}

// Retrieve issues one search call covering the whole ingredient list.
// An empty list is a caller error. An empty result list is a normal
// outcome, not an error.
func Retrieve(ctx context.Context, backend Backend, ingredients []string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("ingredient list is empty")
	}
	results, err := backend.Search(ctx, BuildQuery(ingredients), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", backend.Name(), err)
	}
	return results, nil
}
