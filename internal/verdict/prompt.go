// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package verdict

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// topSnippetsPerIngredient caps how many snippets a prioritized
// ingredient contributes to the prompt.
const topSnippetsPerIngredient = 3

// analysisPromptTmpl is the prompt sent to the generative model. It
// instructs the model to rate every listed ingredient for this user and
// to cite sources inline.
var analysisPromptTmpl = template.Must(template.New("analysis").Parse(`You are a dermatological AI assistant specializing in skincare ingredient analysis. Analyze the following ingredients for a user with the given skin profile.

User Skin Profile:
- Skin Type: {{.SkinType}}
- Primary Concerns: {{.Concerns}}
- Known Allergies/Sensitivities: {{.Allergies}}
- Lifestyle Factors: {{.Lifestyle}}
{{- if .AdditionalInfo}}
- Additional Info: {{.AdditionalInfo}}
{{- end}}
{{- if .Evidence}}

PRIORITY INGREDIENTS (with research context):
{{.Evidence}}
{{- end}}
{{- if .Remaining}}

OTHER INGREDIENTS (analyze based on general knowledge):
{{.Remaining}}
{{- end}}

For each ingredient, provide analysis in this exact JSON format:
{
  "ingredients": [
    {
      "name": "ingredient name",
      "safety": "excellent|good|notbad|bad",
      "explanation": "Detailed explanation with inline source citations. Each factual statement should end with (Source: website_link). Focus on compatibility with the user's skin type, concerns, and allergies.",
      "sources": ["list", "of", "unique", "source", "links"]
    }
  ]
}

SAFETY RATING GUIDELINES:
- "excellent": Perfect for the user's skin type and concerns, highly beneficial
- "good": Generally beneficial with minor considerations
- "notbad": Neutral or mixed effects, use with caution
- "bad": Avoid due to incompatibility with skin type/concerns or known irritants

ANALYSIS REQUIREMENTS:
1. Reference the user's specific skin type, concerns, and allergies
2. Include inline citations after each factual statement: (Source: website_link)
3. Use the research context provided for priority ingredients
4. For ingredients without research context, use established dermatological knowledge
5. Be specific about why each ingredient is rated as such for THIS user
6. Keep explanations comprehensive but concise

Provide analysis for ALL ingredients listed above. Respond with the JSON object only.
`))

// promptData feeds analysisPromptTmpl.
type promptData struct {
	SkinType       string
	Concerns       string
	Allergies      string
	Lifestyle      string
	AdditionalInfo string
	Evidence       string
	Remaining      string
}

// BuildPrompt composes the synthesis prompt: the labeled profile block,
// the weighted evidence for prioritized ingredients, and the plain
// remainder list (only when a remainder exists).
func BuildPrompt(prioritized []types.IngredientEvidence, allIngredients []string, profile types.UserProfile) (string, error) {
	data := promptData{
		SkinType:       string(profile.SkinType),
		Concerns:       strings.Join(profile.Concerns, ", "),
		Allergies:      strings.Join(profile.Allergies, ", "),
		Lifestyle:      strings.Join(profile.Lifestyle, ", "),
		AdditionalInfo: profile.AdditionalInfo,
		Evidence:       renderEvidence(prioritized),
		Remaining:      strings.Join(remainingIngredients(prioritized, allIngredients), ", "),
	}

	var buf bytes.Buffer
	if err := analysisPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderEvidence formats each prioritized ingredient with its top
// snippets by weight, quoted and attributed to their source links.
func renderEvidence(prioritized []types.IngredientEvidence) string {
	var blocks []string
	for _, ev := range prioritized {
		snippets := make([]types.Snippet, len(ev.Snippets))
		copy(snippets, ev.Snippets)
		sort.SliceStable(snippets, func(i, j int) bool {
			return snippets[i].Weight > snippets[j].Weight
		})
		if len(snippets) > topSnippetsPerIngredient {
			snippets = snippets[:topSnippetsPerIngredient]
		}

		var lines []string
		for _, s := range snippets {
			lines = append(lines, fmt.Sprintf("%q (Source: %s - %s)", s.Text, s.Source, s.Link))
		}
		blocks = append(blocks, fmt.Sprintf("Ingredient: %s\nResearch Context:\n%s",
			ev.Ingredient, strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n\n")
}

// remainingIngredients returns the input ingredients that did not make
// the prioritized set, preserving input order. Matching is
// case-insensitive, like everywhere else in the pipeline.
func remainingIngredients(prioritized []types.IngredientEvidence, allIngredients []string) []string {
	selected := make(map[string]bool, len(prioritized))
	for _, ev := range prioritized {
		selected[strings.ToLower(ev.Ingredient)] = true
	}

	var remaining []string
	for _, ing := range allIngredients {
		if !selected[strings.ToLower(ing)] {
			remaining = append(remaining, ing)
		}
	}
	return remaining
}
