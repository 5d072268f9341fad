package lactation

import "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"

// HighPriorityThreshold is the improvement percentage above which upgrades are flagged.
const HighPriorityThreshold = 20.0

const highPriorityRecommendation = "Significant improvement possible - prioritize management upgrades"

var tierRecommendations = map[models.ManagementLevel][]string{
	models.ManagementLow: {
		"Improve pasture quality and rotational grazing",
		"Implement basic mineral and vitamin supplementation",
		"Establish regular veterinary health protocols",
		"Improve water access and quality",
	},
	models.ManagementMedium: {
		"Implement Total Mixed Ration (TMR) or balanced feeding",
		"Enhance milking parlor hygiene and efficiency",
		"Implement genetic selection program",
		"Invest in cooling systems for heat stress management",
	},
	models.ManagementHigh: {
		"Fine-tune nutritional formulations based on production stages",
		"Implement precision feeding technologies",
		"Optimize reproductive management with timed AI protocols",
		"Advanced health monitoring and early disease detection",
	},
}

// OptimizationPotential compares the breed's lactation total at the current tier with
// the total under optimal management. The percentage is relative to the current total
// and is reported as 0 when the current total is 0.
func OptimizationPotential(profile models.BreedProfile, current models.ManagementLevel) models.OptimizationPotential {
	if current == models.ManagementOptimal {
		return models.OptimizationPotential{
			HasPotential: false,
			Message:      "Already at optimal management level",
		}
	}

	now := ApplyManagementAdjustment(profile, current)
	best := ApplyManagementAdjustment(profile, models.ManagementOptimal)

	improvement := best.AdjustedTotalLactation - now.AdjustedTotalLactation
	var pct float64
	if now.AdjustedTotalLactation != 0 {
		pct = improvement / now.AdjustedTotalLactation * 100
	}

	return models.OptimizationPotential{
		HasPotential:          true,
		CurrentTotal:          now.AdjustedTotalLactation,
		OptimalTotal:          best.AdjustedTotalLactation,
		ImprovementLiters:     round2(improvement),
		ImprovementPercentage: round2(pct),
		NextLevel:             current.Next(),
		Recommendations:       Recommendations(current, pct),
	}
}

// Recommendations lists the management actions for a tier, adding a priority flag
// when the available improvement exceeds HighPriorityThreshold percent. Optimal
// management has nothing to recommend.
func Recommendations(level models.ManagementLevel, improvementPct float64) []string {
	base, ok := tierRecommendations[level]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(base)+1)
	out = append(out, base...)

	if improvementPct > HighPriorityThreshold {
		out = append(out, highPriorityRecommendation)
	}
	return out
}
