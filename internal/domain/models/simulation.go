package models

import "time"

// AdjustedParameters are a breed's reference figures scaled by a management multiplier.
// Peak day, persistence and composition are breed-intrinsic and copied unscaled.
type AdjustedParameters struct {
	Multiplier             float64     `json:"multiplier"`
	AdjustedPeakYield      float64     `json:"adjusted_peak_yield"`
	AdjustedTotalLactation float64     `json:"adjusted_total_lactation"`
	PeakDay                int         `json:"peak_day"`
	PersistenceRate        float64     `json:"persistence_rate"`
	Composition            Composition `json:"composition"`
}

// CurvePoint is the modelled yield in liters for one day in milk.
type CurvePoint struct {
	Day   int     `json:"day" bson:"day"`
	Yield float64 `json:"yield" bson:"yield"`
}

// CompositionMass is the mass of each milk component in kilograms.
type CompositionMass struct {
	FatKg     float64 `json:"fat_kg" bson:"fat_kg"`
	ProteinKg float64 `json:"protein_kg" bson:"protein_kg"`
	LactoseKg float64 `json:"lactose_kg" bson:"lactose_kg"`
	SolidsKg  float64 `json:"solids_kg" bson:"solids_kg"`
}

// HerdTotals are per-animal figures multiplied by the number of animals.
type HerdTotals struct {
	TotalProduction float64 `json:"total_production" bson:"total_production"`
	TotalFatKg      float64 `json:"total_fat_kg" bson:"total_fat_kg"`
	TotalProteinKg  float64 `json:"total_protein_kg" bson:"total_protein_kg"`
	TotalSolidsKg   float64 `json:"total_solids_kg" bson:"total_solids_kg"`
}

// OptimizationPotential compares the current management tier against optimal.
type OptimizationPotential struct {
	HasPotential          bool            `json:"has_potential" bson:"has_potential"`
	Message               string          `json:"message,omitempty" bson:"message,omitempty"`
	CurrentTotal          float64         `json:"current_total,omitempty" bson:"current_total,omitempty"`
	OptimalTotal          float64         `json:"optimal_total,omitempty" bson:"optimal_total,omitempty"`
	ImprovementLiters     float64         `json:"improvement_liters" bson:"improvement_liters"`
	ImprovementPercentage float64         `json:"improvement_percentage" bson:"improvement_percentage"`
	NextLevel             ManagementLevel `json:"next_level,omitempty" bson:"next_level,omitempty"`
	Recommendations       []string        `json:"recommendations,omitempty" bson:"recommendations,omitempty"`
}

// CurveSummary describes the shape of a generated lactation curve.
type CurveSummary struct {
	MeanDailyYield    float64 `json:"mean_daily_yield" bson:"mean_daily_yield"`
	StdDevDailyYield  float64 `json:"stddev_daily_yield" bson:"stddev_daily_yield"`
	ObservedPeakDay   int     `json:"observed_peak_day" bson:"observed_peak_day"`
	ObservedPeakYield float64 `json:"observed_peak_yield" bson:"observed_peak_yield"`
}

// SimulationResult is the complete output of one lactation simulation.
type SimulationResult struct {
	BreedKey        string          `json:"breed_key" bson:"breed_key"`
	BreedName       string          `json:"breed_name" bson:"breed_name"`
	ManagementLevel ManagementLevel `json:"management_level" bson:"management_level"`
	LactationDays   int             `json:"lactation_days" bson:"lactation_days"`
	AnimalsCount    int             `json:"animals_count" bson:"animals_count"`

	PeakYield            float64 `json:"peak_yield" bson:"peak_yield"`
	PeakDay              int     `json:"peak_day" bson:"peak_day"`
	TotalLactationLiters float64 `json:"total_lactation_liters" bson:"total_lactation_liters"`
	PersistenceRate      float64 `json:"persistence_rate" bson:"persistence_rate"`

	CompositionMass   `bson:",inline"`
	FatPercentage     float64 `json:"fat_percentage" bson:"fat_percentage"`
	ProteinPercentage float64 `json:"protein_percentage" bson:"protein_percentage"`
	LactosePercentage float64 `json:"lactose_percentage" bson:"lactose_percentage"`
	SolidsPercentage  float64 `json:"solids_percentage" bson:"solids_percentage"`

	HerdTotals            HerdTotals            `json:"herd_totals" bson:"herd_totals"`
	LactationCurve        []CurvePoint          `json:"lactation_curve" bson:"lactation_curve"`
	CurveSummary          CurveSummary          `json:"curve_summary" bson:"curve_summary"`
	OptimizationPotential OptimizationPotential `json:"optimization_potential" bson:"optimization_potential"`

	DryPeriodDays       int     `json:"dry_period_days" bson:"dry_period_days"`
	CalvingIntervalDays int     `json:"calving_interval_days" bson:"calving_interval_days"`
	CyclesPerYear       float64 `json:"cycles_per_year" bson:"cycles_per_year"`
}

// SimulationRecord is a persisted simulation, as stored in the history collection.
type SimulationRecord struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	ScenarioID string           `json:"scenario_id,omitempty" bson:"scenario_id,omitempty"`
	Result     SimulationResult `json:"result" bson:"result"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
}
