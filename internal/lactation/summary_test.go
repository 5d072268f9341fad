package lactation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

func TestSummarizeCurve(t *testing.T) {
	curve := []models.CurvePoint{{Day: 1, Yield: 1}, {Day: 2, Yield: 3}, {Day: 3, Yield: 2}}

	got := SummarizeCurve(curve)
	assert.Equal(t, 2.0, got.MeanDailyYield)
	assert.Equal(t, 1.0, got.StdDevDailyYield)
	assert.Equal(t, 2, got.ObservedPeakDay)
	assert.Equal(t, 3.0, got.ObservedPeakYield)
}

func TestSummarizeCurve_Edges(t *testing.T) {
	assert.Equal(t, models.CurveSummary{}, SummarizeCurve(nil))

	single := SummarizeCurve([]models.CurvePoint{{Day: 1, Yield: 2.5}})
	assert.Equal(t, models.CurveSummary{MeanDailyYield: 2.5, ObservedPeakDay: 1, ObservedPeakYield: 2.5}, single)
}
