package lactation

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// SummarizeCurve reports the mean and standard deviation of the daily yields and
// where the curve actually peaks. An empty curve yields a zero summary.
func SummarizeCurve(curve []models.CurvePoint) models.CurveSummary {
	if len(curve) == 0 {
		return models.CurveSummary{}
	}

	yields := make([]float64, len(curve))
	for i, p := range curve {
		yields[i] = p.Yield
	}

	mean, std := stat.MeanStdDev(yields, nil)
	if len(yields) < 2 {
		std = 0
	}
	peak := floats.MaxIdx(yields)

	return models.CurveSummary{
		MeanDailyYield:    round2(mean),
		StdDevDailyYield:  round2(std),
		ObservedPeakDay:   curve[peak].Day,
		ObservedPeakYield: curve[peak].Yield,
	}
}
