package lactation

import (
	"math"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// Default multipliers for breeds that do not carry their own.
const (
	DefaultLowMultiplier    = 0.70
	DefaultMediumMultiplier = 0.85
	DefaultHighMultiplier   = 0.95
	OptimalMultiplier       = 1.0
)

// Multiplier returns the share of the breed's reference performance reached at level.
// A value outside the known tiers keeps the optimal multiplier.
func Multiplier(profile models.BreedProfile, level models.ManagementLevel) float64 {
	switch level {
	case models.ManagementLow:
		return multiplierOrDefault(profile.LowManagementMultiplier, DefaultLowMultiplier)
	case models.ManagementMedium:
		return multiplierOrDefault(profile.MediumManagementMultiplier, DefaultMediumMultiplier)
	case models.ManagementHigh:
		return multiplierOrDefault(profile.HighManagementMultiplier, DefaultHighMultiplier)
	default:
		return OptimalMultiplier
	}
}

// ApplyManagementAdjustment scales peak yield and lactation total by the level's multiplier.
func ApplyManagementAdjustment(profile models.BreedProfile, level models.ManagementLevel) models.AdjustedParameters {
	m := Multiplier(profile, level)

	return models.AdjustedParameters{
		Multiplier:             m,
		AdjustedPeakYield:      round2(profile.AvgDailyPeakLiters * m),
		AdjustedTotalLactation: round2(profile.TotalLactationLiters * m),
		PeakDay:                profile.PeakDay,
		PersistenceRate:        profile.PersistenceRate,
		Composition:            profile.Composition,
	}
}

func multiplierOrDefault(v *float64, fallback float64) float64 {
	if v == nil || math.IsNaN(*v) || *v <= 0 {
		return fallback
	}
	return *v
}
