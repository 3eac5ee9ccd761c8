// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

// storeFactories lets every contract test run against both
// implementations.
var storeFactories = map[string]func(t *testing.T) Store{
	"memory": func(t *testing.T) Store {
		return NewMemStore()
	},
	"sqlite": func(t *testing.T) Store {
		s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	},
}

func sampleProfile() types.UserProfile {
	return types.UserProfile{
		UserID:         "demo-user",
		SkinType:       types.SkinCombination,
		Concerns:       []string{"acne", "pigmentation"},
		Allergies:      []string{"fragrance"},
		Lifestyle:      []string{"makeup daily"},
		AdditionalInfo: "flares in winter",
	}
}

func TestProfileRoundTrip(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.PutProfile(ctx, sampleProfile()))

			got, err := s.GetProfile(ctx, "demo-user")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, sampleProfile(), *got)
		})
	}
}

func TestGetProfileNotFoundIsNotAnError(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			got, err := factory(t).GetProfile(context.Background(), "nobody")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestPutProfileReplacesExisting(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.PutProfile(ctx, sampleProfile()))

			updated := sampleProfile()
			updated.SkinType = types.SkinSensitive
			updated.Concerns = []string{"eczema"}
			require.NoError(t, s.PutProfile(ctx, updated))

			got, err := s.GetProfile(ctx, "demo-user")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, types.SkinSensitive, got.SkinType)
			assert.Equal(t, []string{"eczema"}, got.Concerns)
		})
	}
}

func TestPutProfileValidation(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			noID := sampleProfile()
			noID.UserID = ""
			assert.Error(t, s.PutProfile(ctx, noID))

			badType := sampleProfile()
			badType.SkinType = "reptilian"
			assert.Error(t, s.PutProfile(ctx, badType))
		})
	}
}

func TestAnalysisHistory(t *testing.T) {
	for name, factory := range storeFactories {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			for _, product := range []string{"Lotion A", "Serum B", "Cream C"} {
				_, err := s.AddAnalysis(ctx, types.AnalysisRecord{
					UserID:      "demo-user",
					ProductName: product,
					Ingredients: []string{"Water"},
					Verdicts: []types.SafetyVerdict{
						{Name: "Water", Safety: types.TierExcellent, Explanation: "inert", Sources: []string{"https://e.com"}},
					},
				})
				require.NoError(t, err)
			}
			_, err := s.AddAnalysis(ctx, types.AnalysisRecord{UserID: "other", ProductName: "X"})
			require.NoError(t, err)

			records, err := s.ListAnalyses(ctx, "demo-user", 0)
			require.NoError(t, err)
			require.Len(t, records, 3)
			// Most recent first.
			assert.Equal(t, "Cream C", records[0].ProductName)
			assert.Equal(t, "Lotion A", records[2].ProductName)
			assert.Equal(t, types.TierExcellent, records[0].Verdicts[0].Safety)

			limited, err := s.ListAnalyses(ctx, "demo-user", 2)
			require.NoError(t, err)
			assert.Len(t, limited, 2)
		})
	}
}
