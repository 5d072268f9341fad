package models

// Composition holds milk solids percentages. The values overlap (fat, protein and
// lactose are all part of total solids) and are not expected to sum to 100.
type Composition struct {
	FatPercentage         float64 `json:"fat_percentage" bson:"fat_percentage"`
	ProteinPercentage     float64 `json:"protein_percentage" bson:"protein_percentage"`
	LactosePercentage     float64 `json:"lactose_percentage" bson:"lactose_percentage"`
	TotalSolidsPercentage float64 `json:"total_solids_percentage" bson:"total_solids_percentage"`
}

// BreedProfile is the reference performance of a breed under optimal management.
type BreedProfile struct {
	Key      string `json:"breed_key" bson:"breed_key"`
	Name     string `json:"breed_name" bson:"breed_name"`
	Category string `json:"breed_category,omitempty" bson:"breed_category,omitempty"`
	Region   string `json:"region,omitempty" bson:"region,omitempty"`

	AvgDailyPeakLiters    float64 `json:"avg_daily_peak_liters" bson:"avg_daily_peak_liters"`
	PeakDay               int     `json:"peak_day" bson:"peak_day"`
	PersistenceRate       float64 `json:"persistence_rate" bson:"persistence_rate"`
	StandardLactationDays int     `json:"standard_lactation_days" bson:"standard_lactation_days"`
	TotalLactationLiters  float64 `json:"total_lactation_liters" bson:"total_lactation_liters"`

	// Nil multipliers fall back to the engine defaults.
	LowManagementMultiplier    *float64 `json:"low_management_multiplier,omitempty" bson:"low_management_multiplier,omitempty"`
	MediumManagementMultiplier *float64 `json:"medium_management_multiplier,omitempty" bson:"medium_management_multiplier,omitempty"`
	HighManagementMultiplier   *float64 `json:"high_management_multiplier,omitempty" bson:"high_management_multiplier,omitempty"`

	Composition `bson:",inline"`

	OptimalDryPeriodDays   int `json:"optimal_dry_period_days" bson:"optimal_dry_period_days"`
	AvgCalvingIntervalDays int `json:"avg_calving_interval_days" bson:"avg_calving_interval_days"`
}

// Float64 returns a pointer to v, used for the optional multiplier fields.
func Float64(v float64) *float64 {
	return &v
}
