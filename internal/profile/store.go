// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile persists user skin profiles and past analyses. The
// analysis pipeline never touches the store; callers load a profile,
// run an analysis, and record the outcome here.
package profile

import (
	"context"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// Store is the profile and history persistence contract. A missing
// profile is a normal outcome: GetProfile returns (nil, nil), not an
// error.
type Store interface {
	// GetProfile returns the profile for userID, or nil when none exists.
	GetProfile(ctx context.Context, userID string) (*types.UserProfile, error)

	// PutProfile creates or replaces the profile for its UserID.
	PutProfile(ctx context.Context, p types.UserProfile) error

	// AddAnalysis records a completed analysis and returns its ID.
	AddAnalysis(ctx context.Context, rec types.AnalysisRecord) (int64, error)

	// ListAnalyses returns up to limit past analyses for userID,
	// most recent first. limit <= 0 means no limit.
	ListAnalyses(ctx context.Context, userID string, limit int) ([]types.AnalysisRecord, error)

	// Close releases store resources.
	Close() error
}
