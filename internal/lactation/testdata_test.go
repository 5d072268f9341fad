package lactation

import "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"

func referenceProfile() models.BreedProfile {
	return models.BreedProfile{
		Key:                        "saanen",
		Name:                       "Saanen",
		AvgDailyPeakLiters:         4.5,
		PeakDay:                    45,
		PersistenceRate:            7,
		StandardLactationDays:      305,
		TotalLactationLiters:       1200,
		MediumManagementMultiplier: models.Float64(0.85),
		Composition: models.Composition{
			FatPercentage:         3.5,
			ProteinPercentage:     3.0,
			LactosePercentage:     4.5,
			TotalSolidsPercentage: 12.5,
		},
		OptimalDryPeriodDays:   60,
		AvgCalvingIntervalDays: 365,
	}
}
