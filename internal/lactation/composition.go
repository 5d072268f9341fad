package lactation

import "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"

// MilkDensity is the kg per liter used to convert volume to mass.
const MilkDensity = 1.03

// CalculateComposition converts a volume of milk into the mass of each component.
// Each percentage is applied independently to the total mass.
func CalculateComposition(totalLiters float64, comp models.Composition) models.CompositionMass {
	totalKg := totalLiters * MilkDensity

	return models.CompositionMass{
		FatKg:     round2(totalKg * comp.FatPercentage / 100),
		ProteinKg: round2(totalKg * comp.ProteinPercentage / 100),
		LactoseKg: round2(totalKg * comp.LactosePercentage / 100),
		SolidsKg:  round2(totalKg * comp.TotalSolidsPercentage / 100),
	}
}
