// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"math"
	"strings"
	"testing"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --- snippetWeight ---

func TestSnippetWeight(t *testing.T) {
	tests := []struct {
		name       string
		result     types.SearchResult
		ingredient string
		want       float64
	}{
		{
			name: "base weight for snippet-only match",
			result: types.SearchResult{
				Title:         "Moisturizer roundup",
				Snippet:       "contains glycerin among other things",
				DisplayDomain: "example.com",
			},
			ingredient: "glycerin",
			want:       1.0,
		},
		{
			name: "title match adds 2",
			result: types.SearchResult{
				Title:         "Glycerin in cosmetics",
				Snippet:       "a humectant",
				DisplayDomain: "example.com",
			},
			ingredient: "glycerin",
			want:       3.0,
		},
		{
			name: "trusted domain adds 3",
			result: types.SearchResult{
				Title:         "Study",
				Snippet:       "glycerin tolerance",
				DisplayDomain: "www.healthline.com",
			},
			ingredient: "glycerin",
			want:       4.0,
		},
		{
			name: "full stack: title, trusted domain, one skin and one safety keyword",
			result: types.SearchResult{
				Title:         "Retinol and acne",
				Snippet:       "patients with acne should avoid overuse",
				DisplayDomain: "pubmed.ncbi.nlm.nih.gov",
			},
			ingredient: "retinol",
			want:       8.0, // 1 + 2 + 3 + 0.5 + 1.5
		},
		{
			name: "distinct keywords each count once",
			result: types.SearchResult{
				Title:         "niacinamide",
				Snippet:       "safe for dry and oily skin, safe overall",
				DisplayDomain: "blog.example.com",
			},
			ingredient: "niacinamide",
			// 1 + 2 (title) + 0.5*2 (dry, oily) + 1.5 (safe, counted once)
			want: 5.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined := lowerCombined(tt.result)
			got := snippetWeight(combined, tt.ingredient, tt.result)
			if !almostEqual(got, tt.want) {
				t.Errorf("snippetWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func lowerCombined(r types.SearchResult) string {
	return strings.ToLower(r.Title + " " + r.Snippet)
}

// Boosts are additive, so any extra signal may only raise the weight.
func TestSnippetWeightMonotonic(t *testing.T) {
	plain := types.SearchResult{
		Title:         "ingredient overview",
		Snippet:       "mentions squalane briefly",
		DisplayDomain: "example.com",
	}
	boosted := types.SearchResult{
		Title:         "squalane overview",
		Snippet:       "squalane is safe for acne prone skin",
		DisplayDomain: "www.webmd.com",
	}

	base := snippetWeight(lowerCombined(plain), "squalane", plain)
	more := snippetWeight(lowerCombined(boosted), "squalane", boosted)
	if more <= base {
		t.Errorf("boosted weight %v should exceed base weight %v", more, base)
	}
}

// --- Score ---

func TestScoreAggregatesAndSorts(t *testing.T) {
	results := []types.SearchResult{
		{
			Title:         "Niacinamide benefits",
			Snippet:       "niacinamide is safe and beneficial",
			DisplayDomain: "www.healthline.com",
		},
		{
			Title:         "General skincare",
			Snippet:       "glycerin appears in most moisturizers",
			DisplayDomain: "example.com",
		},
		{
			Title:         "More on niacinamide",
			Snippet:       "niacinamide for oily skin",
			DisplayDomain: "example.com",
		},
	}

	scored := Score(results, []string{"Glycerin", "Niacinamide", "Unobtainium"})

	if len(scored) != 2 {
		t.Fatalf("len(scored) = %d, want 2 (zero-match ingredient dropped)", len(scored))
	}
	if scored[0].Ingredient != "Niacinamide" {
		t.Errorf("top ingredient = %q, want Niacinamide", scored[0].Ingredient)
	}
	if len(scored[0].Snippets) != 2 {
		t.Errorf("niacinamide snippets = %d, want 2", len(scored[0].Snippets))
	}

	var sum float64
	for _, s := range scored[0].Snippets {
		sum += s.Weight
	}
	if !almostEqual(sum, scored[0].TotalScore) {
		t.Errorf("TotalScore = %v, want sum of snippet weights %v", scored[0].TotalScore, sum)
	}
}

func TestScoreManyToMany(t *testing.T) {
	// One result mentioning two ingredients feeds both records.
	results := []types.SearchResult{
		{
			Title:         "Comparing glycerin and squalane",
			Snippet:       "glycerin and squalane are both humectants",
			DisplayDomain: "example.com",
		},
	}

	scored := Score(results, []string{"Glycerin", "Squalane"})
	if len(scored) != 2 {
		t.Fatalf("len(scored) = %d, want 2", len(scored))
	}
	for _, ev := range scored {
		if len(ev.Snippets) != 1 {
			t.Errorf("%s snippets = %d, want 1", ev.Ingredient, len(ev.Snippets))
		}
	}
}

func TestScoreEmptyResults(t *testing.T) {
	scored := Score(nil, []string{"Water", "Alcohol Denat"})
	if len(scored) != 0 {
		t.Errorf("len(scored) = %d, want 0", len(scored))
	}
}

func TestScoreTieKeepsInputOrder(t *testing.T) {
	// Two ingredients with identical evidence score stay in input order.
	results := []types.SearchResult{
		{Title: "a", Snippet: "ceramide cream", DisplayDomain: "example.com"},
		{Title: "b", Snippet: "panthenol cream", DisplayDomain: "example.com"},
	}

	scored := Score(results, []string{"Panthenol", "Ceramide"})
	if len(scored) != 2 {
		t.Fatalf("len(scored) = %d, want 2", len(scored))
	}
	if scored[0].Ingredient != "Panthenol" || scored[1].Ingredient != "Ceramide" {
		t.Errorf("tie order = %q, %q; want input order Panthenol, Ceramide",
			scored[0].Ingredient, scored[1].Ingredient)
	}
}

// --- SelectTop ---

func TestSelectTop(t *testing.T) {
	scored := []types.IngredientEvidence{
		{Ingredient: "a", TotalScore: 5},
		{Ingredient: "b", TotalScore: 4},
		{Ingredient: "c", TotalScore: 3},
	}

	if got := SelectTop(scored, 2); len(got) != 2 || got[0].Ingredient != "a" {
		t.Errorf("SelectTop(2) = %v", got)
	}
	if got := SelectTop(scored, 10); len(got) != 3 {
		t.Errorf("SelectTop(10) len = %d, want all 3", len(got))
	}
	if got := SelectTop(scored, 0); len(got) != 3 {
		t.Errorf("SelectTop(0) len = %d, want default cap to pass all 3", len(got))
	}
}

// --- BuildQuery ---

func TestBuildQuery(t *testing.T) {
	got := BuildQuery([]string{"Hyaluronic Acid", " Retinol "})
	want := `"Hyaluronic Acid" skincare OR "Retinol" skincare`
	if got != want {
		t.Errorf("BuildQuery() = %q, want %q", got, want)
	}
}
