// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// FormatTable writes verdicts as a human-readable table to w, followed
// by the full explanations with their citations.
func FormatTable(verdicts []types.SafetyVerdict, w io.Writer) {
	if len(verdicts) == 0 {
		fmt.Fprintln(w, "No verdicts.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-10s  %s\n", "No.", "Ingredient", "Safety", "Explanation")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, v := range verdicts {
		name := v.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		explanation := v.Explanation
		if len(explanation) > 50 {
			explanation = explanation[:47] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-30s  %-10s  %s\n", i+1, name, v.Safety, explanation)
	}

	fmt.Fprintf(w, "\n%d ingredients analyzed\n", len(verdicts))

	for _, v := range verdicts {
		fmt.Fprintf(w, "\n%s [%s]\n%s\n", v.Name, v.Safety, v.Explanation)
		for _, src := range v.Sources {
			fmt.Fprintf(w, "  - %s\n", src)
		}
	}
}

// FormatJSON writes verdicts as indented JSON to w.
func FormatJSON(verdicts []types.SafetyVerdict, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(verdicts)
}
