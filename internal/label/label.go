// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package label extracts candidate ingredient names from a photo of a
// product's ingredient label. A vision-capable model transcribes the
// label; ParseIngredients normalizes the transcript into a clean,
// ordered ingredient list for the analysis pipeline.
package label

import (
	"context"
	"strings"
)

// Vision abstracts the image-to-text model so tests can supply a
// deterministic fake.
type Vision interface {
	ReadLabel(ctx context.Context, image []byte, mimeType string) (string, error)
}

// ExtractIngredients transcribes the label image and returns the
// normalized ingredient list. An empty list means the model found no
// ingredient text on the image.
func ExtractIngredients(ctx context.Context, v Vision, image []byte, mimeType string) ([]string, error) {
	raw, err := v.ReadLabel(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}
	return ParseIngredients(raw), nil
}

// ParseIngredients normalizes raw label text into ingredient names:
// it drops an "Ingredients:" header, splits on commas, semicolons, and
// newlines, trims whitespace and trailing periods, and deduplicates
// case-insensitively while preserving first spelling and order.
func ParseIngredients(raw string) []string {
	raw = strings.TrimSpace(raw)

	// Labels (and model transcripts) usually open with a header.
	lower := strings.ToLower(raw)
	if idx := strings.Index(lower, "ingredients:"); idx >= 0 {
		raw = raw[idx+len("ingredients:"):]
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	seen := make(map[string]bool, len(fields))
	var ingredients []string
	for _, f := range fields {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(f), "."))
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		ingredients = append(ingredients, name)
	}
	return ingredients
}
