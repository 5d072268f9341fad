package lactation

import (
	"math"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

const daysPerMonth = 30

// DailyYield evaluates Wood's curve at the given day in milk. The parameters are
// derived so that the curve peaks at exactly peakYield on peakDay; persistenceRate
// is the monthly percentage decline after the peak.
func DailyYield(day int, peakYield float64, peakDay int, persistenceRate float64) float64 {
	if day <= 0 {
		return 0
	}

	c := (persistenceRate / 100) / daysPerMonth
	b := c * float64(peakDay)
	a := peakYield / (math.Pow(float64(peakDay), b) * math.Exp(-c*float64(peakDay)))

	y := a * math.Pow(float64(day), b) * math.Exp(-c*float64(day))
	return math.Max(0, y)
}

// GenerateCurve returns the daily yields for days 1..lactationDays, rounded to 2 decimals.
func GenerateCurve(lactationDays int, peakYield float64, peakDay int, persistenceRate float64) []models.CurvePoint {
	if lactationDays <= 0 {
		return []models.CurvePoint{}
	}

	curve := make([]models.CurvePoint, 0, lactationDays)
	for day := 1; day <= lactationDays; day++ {
		curve = append(curve, models.CurvePoint{
			Day:   day,
			Yield: round2(DailyYield(day, peakYield, peakDay, persistenceRate)),
		})
	}
	return curve
}

// TotalLactation sums the unrounded daily yields over days 1..lactationDays and
// rounds only the final total.
func TotalLactation(lactationDays int, peakYield float64, peakDay int, persistenceRate float64) float64 {
	var total float64
	for day := 1; day <= lactationDays; day++ {
		total += DailyYield(day, peakYield, peakDay, persistenceRate)
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
