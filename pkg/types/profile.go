// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SkinType is the user's self-reported skin type.
type SkinType string

const (
	SkinNormal      SkinType = "normal"
	SkinDry         SkinType = "dry"
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
)

// ValidSkinType reports whether s is one of the accepted skin types.
func ValidSkinType(s SkinType) bool {
	switch s {
	case SkinNormal, SkinDry, SkinOily, SkinCombination, SkinSensitive:
		return true
	}
	return false
}

// UserProfile is the skin profile collected by the questionnaire. The
// pipeline treats it as immutable input; only the profile store
// mutates it.
type UserProfile struct {
	// UserID identifies the profile owner.
	UserID string `json:"user_id" yaml:"user_id"`

	// SkinType is one of the SkinType constants.
	SkinType SkinType `json:"skin_type" yaml:"skin_type"`

	// Concerns lists skin concerns (e.g. "acne", "aging").
	Concerns []string `json:"concerns" yaml:"concerns"`

	// Allergies lists known allergies and sensitivities.
	Allergies []string `json:"allergies" yaml:"allergies"`

	// Lifestyle lists lifestyle factors (e.g. "outdoor work", "makeup daily").
	Lifestyle []string `json:"lifestyle" yaml:"lifestyle"`

	// AdditionalInfo is an optional free-text note.
	AdditionalInfo string `json:"additional_info,omitempty" yaml:"additional_info,omitempty"`
}

// AnalysisRecord is one completed analysis saved to the history store.
type AnalysisRecord struct {
	ID          int64           `json:"id" yaml:"id"`
	UserID      string          `json:"user_id" yaml:"user_id"`
	ProductName string          `json:"product_name,omitempty" yaml:"product_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
	Ingredients []string        `json:"ingredients" yaml:"ingredients"`
	Verdicts    []SafetyVerdict `json:"verdicts" yaml:"verdicts"`
}
