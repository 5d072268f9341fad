package models

// SimulationRequest is the HTTP payload for a single-breed simulation.
type SimulationRequest struct {
	BreedKey        string `json:"breed_key" binding:"required"`
	ManagementLevel string `json:"management_level" binding:"required"`
	LactationDays   int    `json:"lactation_days"`
	AnimalsCount    int    `json:"animals_count"`
	ScenarioID      string `json:"scenario_id"`
	Export          bool   `json:"export"`
}

// ComparisonRequest simulates several breeds under one management tier.
// Per-breed overrides take precedence over the shared lactation days and herd size.
type ComparisonRequest struct {
	BreedKeys       []string                      `json:"breed_keys" binding:"required,min=2"`
	ManagementLevel string                        `json:"management_level" binding:"required"`
	LactationDays   int                           `json:"lactation_days"`
	AnimalsCount    int                           `json:"animals_count"`
	Overrides       map[string]ComparisonOverride `json:"overrides"`
}

// ComparisonOverride adjusts one breed inside a comparison.
type ComparisonOverride struct {
	LactationDays int `json:"lactation_days"`
	AnimalsCount  int `json:"animals_count"`
}

// ComparisonResult holds simulations in request order.
type ComparisonResult struct {
	ManagementLevel ManagementLevel    `json:"management_level"`
	Results         []SimulationResult `json:"results"`
	BestBreedKey    string             `json:"best_breed_key"`
}

// RankingEntry places one breed in a ranking by per-animal lactation total.
type RankingEntry struct {
	Position              int     `json:"position"`
	BreedKey              string  `json:"breed_key"`
	BreedName             string  `json:"breed_name"`
	TotalLactationLiters  float64 `json:"total_lactation_liters"`
	PeakYield             float64 `json:"peak_yield"`
	SolidsKg              float64 `json:"solids_kg"`
	ImprovementPercentage float64 `json:"improvement_percentage"`
}
