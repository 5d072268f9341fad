package breeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/lactation"
)

const sampleCatalog = `
# comment lines are allowed
{
  breeds: [
    {
      breed_name: Saanen
      avg_daily_peak_liters: 4.5
      peak_day: 45
      persistence_rate: 7
      standard_lactation_days: 305
      total_lactation_liters: 1200
      medium_management_multiplier: 0.85
      fat_percentage: 3.5
      protein_percentage: 3.0
      lactose_percentage: 4.5
      total_solids_percentage: 12.5
      optimal_dry_period_days: 60
      avg_calving_interval_days: 365
    }
    {
      breed_key: toggenburg
      breed_name: Toggenburg
      avg_daily_peak_liters: 3.6
      peak_day: 42
      persistence_rate: 7
      standard_lactation_days: 290
      total_lactation_liters: 900
      fat_percentage: 3.3
      protein_percentage: 2.9
      lactose_percentage: 4.4
      total_solids_percentage: 12.0
      optimal_dry_period_days: 60
      avg_calving_interval_days: 365
    }
  ]
}
`

func TestParseCatalog(t *testing.T) {
	profiles, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	saanen := profiles[0]
	assert.Equal(t, "saanen", saanen.Key)
	assert.Equal(t, 4.5, saanen.AvgDailyPeakLiters)
	assert.Equal(t, 45, saanen.PeakDay)
	assert.Equal(t, 12.5, saanen.TotalSolidsPercentage)
	require.NotNil(t, saanen.MediumManagementMultiplier)
	assert.Equal(t, 0.85, *saanen.MediumManagementMultiplier)
	assert.Nil(t, saanen.LowManagementMultiplier)

	assert.Equal(t, "toggenburg", profiles[1].Key)
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not hjson", data: "{ breeds: [ "},
		{name: "duplicate keys", data: "{breeds: [{breed_key: a, breed_name: A}, {breed_key: a, breed_name: B}]}"},
		{name: "anonymous breed", data: "{breeds: [{peak_day: 40}]}"},
		{name: "wrong type", data: "{breeds: [{breed_name: A, peak_day: early}]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestBreedKey(t *testing.T) {
	assert.Equal(t, "murciano_granadina", BreedKey("Murciano-Granadina"))
	assert.Equal(t, "la_mancha", BreedKey("  La Mancha! "))
	assert.Equal(t, "", BreedKey("--"))
}

func TestLoadCatalog_ShippedCatalogIsValid(t *testing.T) {
	profiles, err := LoadCatalog("../../../configs/breeds.hjson")
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	for _, p := range profiles {
		assert.NoError(t, lactation.ValidateProfile(p), p.Key)
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog("does-not-exist.hjson")
	assert.Error(t, err)
}
