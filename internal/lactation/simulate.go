package lactation

import (
	"errors"
	"fmt"
	"math"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// ErrInvalidBreedProfile indicates reference data that cannot drive the model.
var ErrInvalidBreedProfile = errors.New("invalid breed profile")

const daysPerYear = 365

// Options selects the management tier and herd parameters of a simulation.
// Zero LactationDays uses the breed's standard lactation; zero AnimalsCount means one animal.
type Options struct {
	Level         models.ManagementLevel
	LactationDays int
	AnimalsCount  int
}

// Simulate runs a complete lactation simulation for one breed. Invalid breed data or
// an unknown management level is rejected before any arithmetic runs.
func Simulate(profile models.BreedProfile, opts Options) (models.SimulationResult, error) {
	if !opts.Level.Valid() {
		return models.SimulationResult{}, fmt.Errorf("%w: %q", models.ErrUnknownManagementLevel, opts.Level)
	}

	lactationDays := opts.LactationDays
	if lactationDays <= 0 {
		lactationDays = profile.StandardLactationDays
	}
	animals := opts.AnimalsCount
	if animals <= 0 {
		animals = 1
	}

	if err := ValidateProfile(profile); err != nil {
		return models.SimulationResult{}, err
	}

	adjusted := ApplyManagementAdjustment(profile, opts.Level)

	curve := GenerateCurve(lactationDays, adjusted.AdjustedPeakYield, adjusted.PeakDay, adjusted.PersistenceRate)
	total := TotalLactation(lactationDays, adjusted.AdjustedPeakYield, adjusted.PeakDay, adjusted.PersistenceRate)
	mass := CalculateComposition(total, adjusted.Composition)

	n := float64(animals)

	return models.SimulationResult{
		BreedKey:        profile.Key,
		BreedName:       profile.Name,
		ManagementLevel: opts.Level,
		LactationDays:   lactationDays,
		AnimalsCount:    animals,

		PeakYield:            adjusted.AdjustedPeakYield,
		PeakDay:              adjusted.PeakDay,
		TotalLactationLiters: total,
		PersistenceRate:      adjusted.PersistenceRate,

		CompositionMass:   mass,
		FatPercentage:     adjusted.Composition.FatPercentage,
		ProteinPercentage: adjusted.Composition.ProteinPercentage,
		LactosePercentage: adjusted.Composition.LactosePercentage,
		SolidsPercentage:  adjusted.Composition.TotalSolidsPercentage,

		HerdTotals: models.HerdTotals{
			TotalProduction: round2(total * n),
			TotalFatKg:      round2(mass.FatKg * n),
			TotalProteinKg:  round2(mass.ProteinKg * n),
			TotalSolidsKg:   round2(mass.SolidsKg * n),
		},
		LactationCurve:        curve,
		CurveSummary:          SummarizeCurve(curve),
		OptimizationPotential: OptimizationPotential(profile, opts.Level),

		DryPeriodDays:       profile.OptimalDryPeriodDays,
		CalvingIntervalDays: profile.AvgCalvingIntervalDays,
		CyclesPerYear:       round2(float64(daysPerYear) / float64(profile.AvgCalvingIntervalDays)),
	}, nil
}

// ValidateProfile checks the fields the model divides by, raises to a power or
// iterates over. The returned error wraps ErrInvalidBreedProfile.
func ValidateProfile(p models.BreedProfile) error {
	invalid := func(field string, value any) error {
		return fmt.Errorf("%w: %s=%v", ErrInvalidBreedProfile, field, value)
	}

	switch {
	case !finite(p.AvgDailyPeakLiters) || p.AvgDailyPeakLiters <= 0:
		return invalid("avg_daily_peak_liters", p.AvgDailyPeakLiters)
	case p.PeakDay < 1:
		return invalid("peak_day", p.PeakDay)
	case !finite(p.PersistenceRate) || p.PersistenceRate <= 0:
		return invalid("persistence_rate", p.PersistenceRate)
	case p.StandardLactationDays < 1:
		return invalid("standard_lactation_days", p.StandardLactationDays)
	case p.PeakDay > p.StandardLactationDays:
		return invalid("peak_day", p.PeakDay)
	case !finite(p.TotalLactationLiters) || p.TotalLactationLiters < 0:
		return invalid("total_lactation_liters", p.TotalLactationLiters)
	case p.AvgCalvingIntervalDays <= 0:
		return invalid("avg_calving_interval_days", p.AvgCalvingIntervalDays)
	case p.OptimalDryPeriodDays < 0:
		return invalid("optimal_dry_period_days", p.OptimalDryPeriodDays)
	}

	percentages := []struct {
		name  string
		value float64
	}{
		{"fat_percentage", p.FatPercentage},
		{"protein_percentage", p.ProteinPercentage},
		{"lactose_percentage", p.LactosePercentage},
		{"total_solids_percentage", p.TotalSolidsPercentage},
	}
	for _, pct := range percentages {
		if !finite(pct.value) || pct.value < 0 || pct.value > 100 {
			return invalid(pct.name, pct.value)
		}
	}

	multipliers := []struct {
		name  string
		value *float64
	}{
		{"low_management_multiplier", p.LowManagementMultiplier},
		{"medium_management_multiplier", p.MediumManagementMultiplier},
		{"high_management_multiplier", p.HighManagementMultiplier},
	}
	for _, m := range multipliers {
		if m.value != nil && *m.value > 1 {
			return invalid(m.name, *m.value)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
