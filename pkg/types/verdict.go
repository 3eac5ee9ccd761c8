// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SafetyTier is the personalized suitability rating for one
// ingredient. Tiers are ordered: excellent > good > notbad > bad.
type SafetyTier string

const (
	TierExcellent SafetyTier = "excellent"
	TierGood      SafetyTier = "good"
	TierNotBad    SafetyTier = "notbad"
	TierBad       SafetyTier = "bad"
)

// Rank returns the tier's position in the ordering, 0 for excellent
// down to 3 for bad. Unknown tiers rank below bad.
func (t SafetyTier) Rank() int {
	switch t {
	case TierExcellent:
		return 0
	case TierGood:
		return 1
	case TierNotBad:
		return 2
	case TierBad:
		return 3
	}
	return 4
}

// Valid reports whether t is one of the four defined tiers.
func (t SafetyTier) Valid() bool {
	return t.Rank() < 4
}

// SafetyVerdict is the pipeline's output unit: one per input
// ingredient. Sources lists the unique links cited inline in
// Explanation.
type SafetyVerdict struct {
	// Name is the ingredient name as submitted by the caller.
	Name string `json:"name" yaml:"name"`

	// Safety is the model-assigned tier for this user's profile.
	Safety SafetyTier `json:"safety" yaml:"safety"`

	// Explanation is the personalized rationale with inline
	// "(Source: link)" citations.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Sources are the unique links referenced by Explanation.
	Sources []string `json:"sources" yaml:"sources"`
}
