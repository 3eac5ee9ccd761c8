// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// score.go assigns relevance weights to search results per ingredient,
// aggregates them into evidence records, and selects the top scorers.

package search

import (
	"sort"
	"strings"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// trustedDomains are publisher host substrings presumed authoritative
// for health claims. A match boosts the snippet weight.
var trustedDomains = []string{"pubmed", "ncbi", "dermatology", "medscape", "webmd", "healthline"}

// skinKeywords reward topical specificity in a snippet.
var skinKeywords = []string{"acne", "sensitive", "dry", "oily", "aging", "pigmentation", "eczema"}

// safetyKeywords reward evidentially decisive language in a snippet.
var safetyKeywords = []string{"safe", "beneficial", "avoid", "irritating", "comedogenic", "non-comedogenic"}

// Weight increments. Base weight is 1 per matching snippet.
const (
	titleBoost         = 2.0
	trustedDomainBoost = 3.0
	skinKeywordBoost   = 0.5
	safetyKeywordBoost = 1.5
)

// Score builds one IngredientEvidence record per ingredient that has at
// least one matching result, sorted descending by total score. A result
// matches an ingredient when the lowercased title+snippet contains the
// lowercased ingredient name as a substring; one result can feed every
// ingredient it mentions. Ingredients with zero matches are dropped.
//
// Substring matching is a known heuristic: short names ("Acid") match
// unrelated text. Kept for compatibility with the scoring behavior the
// rest of the pipeline was tuned against.
func Score(results []types.SearchResult, ingredients []string) []types.IngredientEvidence {
	byName := make(map[string]*types.IngredientEvidence, len(ingredients))
	order := make([]string, 0, len(ingredients))

	for _, ing := range ingredients {
		key := strings.ToLower(ing)
		if _, ok := byName[key]; ok {
			continue
		}
		byName[key] = &types.IngredientEvidence{Ingredient: ing}
		order = append(order, key)
	}

	for _, r := range results {
		combined := strings.ToLower(r.Title + " " + r.Snippet)
		for _, key := range order {
			if !strings.Contains(combined, key) {
				continue
			}
			w := snippetWeight(combined, key, r)
			ev := byName[key]
			ev.Snippets = append(ev.Snippets, types.Snippet{
				Text:   r.Snippet,
				Source: r.DisplayDomain,
				Link:   r.Link,
				Weight: w,
			})
			ev.TotalScore += w
		}
	}

	var scored []types.IngredientEvidence
	for _, key := range order {
		if len(byName[key].Snippets) > 0 {
			scored = append(scored, *byName[key])
		}
	}

	// Stable sort: ties keep aggregation (input) order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	return scored
}

// snippetWeight computes the weight of one (result, ingredient) pair.
// Every boost is additive, so adding a title match, a trusted domain,
// or a keyword never lowers the score.
func snippetWeight(combined, ingredient string, r types.SearchResult) float64 {
	weight := 1.0

	if strings.Contains(strings.ToLower(r.Title), ingredient) {
		weight += titleBoost
	}

	domain := strings.ToLower(r.DisplayDomain)
	for _, d := range trustedDomains {
		if strings.Contains(domain, d) {
			weight += trustedDomainBoost
			break
		}
	}

	for _, kw := range skinKeywords {
		if strings.Contains(combined, kw) {
			weight += skinKeywordBoost
		}
	}
	for _, kw := range safetyKeywords {
		if strings.Contains(combined, kw) {
			weight += safetyKeywordBoost
		}
	}

	return weight
}

// SelectTop returns up to max evidence records from the front of the
// scored slice. When max is not positive the default (5) applies.
func SelectTop(scored []types.IngredientEvidence, max int) []types.IngredientEvidence {
	if max <= 0 {
		max = 5
	}
	if len(scored) > max {
		return scored[:max]
	}
	return scored
}
