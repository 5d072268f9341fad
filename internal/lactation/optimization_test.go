package lactation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

func TestOptimizationPotential_OptimalHasNone(t *testing.T) {
	profiles := []models.BreedProfile{referenceProfile(), {}, {TotalLactationLiters: 9000, AvgDailyPeakLiters: 40}}

	for _, p := range profiles {
		got := OptimizationPotential(p, models.ManagementOptimal)
		assert.False(t, got.HasPotential)
		assert.Zero(t, got.ImprovementLiters)
		assert.Zero(t, got.ImprovementPercentage)
		assert.Empty(t, got.Recommendations)
	}
}

func TestOptimizationPotential_Tiers(t *testing.T) {
	profile := referenceProfile()

	tests := []struct {
		level        models.ManagementLevel
		wantCurrent  float64
		wantLiters   float64
		wantPct      float64
		wantNext     models.ManagementLevel
		wantPriority bool
	}{
		{level: models.ManagementLow, wantCurrent: 840, wantLiters: 360, wantPct: 42.86, wantNext: models.ManagementMedium, wantPriority: true},
		{level: models.ManagementMedium, wantCurrent: 1020, wantLiters: 180, wantPct: 17.65, wantNext: models.ManagementHigh},
		{level: models.ManagementHigh, wantCurrent: 1140, wantLiters: 60, wantPct: 5.26, wantNext: models.ManagementOptimal},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got := OptimizationPotential(profile, tt.level)

			require.True(t, got.HasPotential)
			assert.Equal(t, tt.wantCurrent, got.CurrentTotal)
			assert.Equal(t, 1200.0, got.OptimalTotal)
			assert.Equal(t, tt.wantLiters, got.ImprovementLiters)
			assert.Equal(t, tt.wantPct, got.ImprovementPercentage)
			assert.Equal(t, tt.wantNext, got.NextLevel)

			if tt.wantPriority {
				assert.Len(t, got.Recommendations, 5)
				assert.Equal(t, highPriorityRecommendation, got.Recommendations[4])
			} else {
				assert.Len(t, got.Recommendations, 4)
			}
		})
	}
}

func TestOptimizationPotential_ZeroCurrentTotal(t *testing.T) {
	profile := referenceProfile()
	profile.TotalLactationLiters = 0

	got := OptimizationPotential(profile, models.ManagementLow)
	assert.True(t, got.HasPotential)
	assert.Zero(t, got.ImprovementPercentage)
	assert.Len(t, got.Recommendations, 4)
}

func TestRecommendations(t *testing.T) {
	assert.Equal(t, tierRecommendations[models.ManagementMedium], Recommendations(models.ManagementMedium, 20))
	assert.Len(t, Recommendations(models.ManagementMedium, 20.01), 5)
	assert.Empty(t, Recommendations(models.ManagementOptimal, 50))

	// The returned slice must not alias the shared tier list.
	got := Recommendations(models.ManagementLow, 0)
	got[0] = "changed"
	assert.NotEqual(t, "changed", tierRecommendations[models.ManagementLow][0])
}
