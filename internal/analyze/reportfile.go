// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// ReportFile is the on-disk representation of one completed analysis.
// A user can save an analysis to a file and review it later without
// re-running the pipeline.
type ReportFile struct {
	Profile     ReportProfile         `yaml:"profile"`
	ProductName string                `yaml:"product_name,omitempty"`
	Ingredients []string              `yaml:"ingredients"`
	Verdicts    []types.SafetyVerdict `yaml:"verdicts"`
	Summary     ReportSummary         `yaml:"summary"`
}

// ReportProfile stores the profile fields the verdicts were
// personalized against, for context when rereading a report.
type ReportProfile struct {
	SkinType  types.SkinType `yaml:"skin_type"`
	Concerns  []string       `yaml:"concerns,omitempty"`
	Allergies []string       `yaml:"allergies,omitempty"`
	Lifestyle []string       `yaml:"lifestyle,omitempty"`
}

// ReportSummary stores verdict statistics and a timestamp.
type ReportSummary struct {
	Total     int                      `yaml:"total"`
	ByTier    map[types.SafetyTier]int `yaml:"by_tier"`
	Timestamp time.Time                `yaml:"timestamp"`
}

// WriteReportFile saves an analysis result to a YAML file.
func WriteReportFile(path, productName string, profile types.UserProfile, ingredients []string, verdicts []types.SafetyVerdict) error {
	byTier := make(map[types.SafetyTier]int)
	for _, v := range verdicts {
		byTier[v.Safety]++
	}

	rf := ReportFile{
		Profile: ReportProfile{
			SkinType:  profile.SkinType,
			Concerns:  profile.Concerns,
			Allergies: profile.Allergies,
			Lifestyle: profile.Lifestyle,
		},
		ProductName: productName,
		Ingredients: ingredients,
		Verdicts:    verdicts,
		Summary: ReportSummary{
			Total:     len(verdicts),
			ByTier:    byTier,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling report file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadReportFile loads a previously saved analysis report from disk.
func ReadReportFile(path string) (*ReportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report file: %w", err)
	}
	var rf ReportFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing report file: %w", err)
	}
	return &rf, nil
}
