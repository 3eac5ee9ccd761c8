// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// MemStore is an in-memory Store for tests and demo runs.
type MemStore struct {
	mu       sync.RWMutex
	profiles map[string]types.UserProfile
	analyses []types.AnalysisRecord
	nextID   int64
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		profiles: make(map[string]types.UserProfile),
		nextID:   1,
	}
}

// GetProfile returns the stored profile, or (nil, nil) when absent.
func (m *MemStore) GetProfile(_ context.Context, userID string) (*types.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// PutProfile creates or replaces the profile for its UserID.
func (m *MemStore) PutProfile(_ context.Context, p types.UserProfile) error {
	if p.UserID == "" {
		return fmt.Errorf("profile has no user ID")
	}
	if !types.ValidSkinType(p.SkinType) {
		return fmt.Errorf("invalid skin type %q", p.SkinType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p
	return nil
}

// AddAnalysis records a completed analysis and returns its ID.
func (m *MemStore) AddAnalysis(_ context.Context, rec types.AnalysisRecord) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.ID = m.nextID
	m.nextID++
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	m.analyses = append(m.analyses, rec)
	return rec.ID, nil
}

// ListAnalyses returns past analyses for userID, most recent first.
func (m *MemStore) ListAnalyses(_ context.Context, userID string, limit int) ([]types.AnalysisRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var records []types.AnalysisRecord
	for _, rec := range m.analyses {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error { return nil }
