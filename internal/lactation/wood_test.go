package lactation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyYield_PeaksAtPeakDay(t *testing.T) {
	tests := []struct {
		name        string
		peakYield   float64
		peakDay     int
		persistence float64
	}{
		{name: "goat reference", peakYield: 4.5, peakDay: 45, persistence: 7},
		{name: "adjusted medium", peakYield: 3.83, peakDay: 45, persistence: 7},
		{name: "dairy cow", peakYield: 38, peakDay: 60, persistence: 9},
		{name: "early peak", peakYield: 2.1, peakDay: 1, persistence: 4},
		{name: "flat curve", peakYield: 12, peakDay: 120, persistence: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyYield(tt.peakDay, tt.peakYield, tt.peakDay, tt.persistence)
			assert.InDelta(t, tt.peakYield, got, 1e-6)

			before := DailyYield(tt.peakDay-1, tt.peakYield, tt.peakDay, tt.persistence)
			after := DailyYield(tt.peakDay+1, tt.peakYield, tt.peakDay, tt.persistence)
			assert.LessOrEqual(t, before, got)
			assert.LessOrEqual(t, after, got)
		})
	}
}

func TestDailyYield_NonPositiveDay(t *testing.T) {
	for _, day := range []int{0, -1, -365} {
		assert.Zero(t, DailyYield(day, 4.5, 45, 7), "day %d", day)
	}
}

func TestDailyYield_NeverNegative(t *testing.T) {
	for day := 0; day <= 1000; day++ {
		y := DailyYield(day, 4.5, 45, 7)
		require.False(t, math.IsNaN(y), "day %d", day)
		assert.GreaterOrEqual(t, y, 0.0, "day %d", day)
	}
}

func TestGenerateCurve_DaySequence(t *testing.T) {
	curve := GenerateCurve(305, 3.83, 45, 7)

	require.Len(t, curve, 305)
	for i, p := range curve {
		assert.Equal(t, i+1, p.Day)
		assert.Equal(t, round2(p.Yield), p.Yield)
	}
	assert.InDelta(t, 3.83, curve[44].Yield, 0.005)
}

func TestGenerateCurve_Restartable(t *testing.T) {
	first := GenerateCurve(120, 4.5, 45, 7)
	second := GenerateCurve(120, 4.5, 45, 7)
	assert.Equal(t, first, second)
}

func TestGenerateCurve_EmptyForNonPositiveDays(t *testing.T) {
	assert.Empty(t, GenerateCurve(0, 4.5, 45, 7))
	assert.Empty(t, GenerateCurve(-3, 4.5, 45, 7))
}

func TestTotalLactation_MatchesCurve(t *testing.T) {
	tests := []struct {
		days        int
		peakYield   float64
		peakDay     int
		persistence float64
	}{
		{days: 305, peakYield: 3.83, peakDay: 45, persistence: 7},
		{days: 240, peakYield: 4.5, peakDay: 45, persistence: 7},
		{days: 365, peakYield: 38, peakDay: 60, persistence: 9},
		{days: 1, peakYield: 2, peakDay: 1, persistence: 5},
	}

	for _, tt := range tests {
		total := TotalLactation(tt.days, tt.peakYield, tt.peakDay, tt.persistence)

		var sum float64
		for _, p := range GenerateCurve(tt.days, tt.peakYield, tt.peakDay, tt.persistence) {
			sum += p.Yield
		}

		assert.InDelta(t, sum, total, 0.01*float64(tt.days))
		assert.Equal(t, round2(total), total)
	}
}

func TestTotalLactation_RoundsOnlyAtTheEnd(t *testing.T) {
	var raw float64
	for day := 1; day <= 305; day++ {
		raw += DailyYield(day, 3.83, 45, 7)
	}
	assert.Equal(t, math.Round(raw*100)/100, TotalLactation(305, 3.83, 45, 7))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.83, round2(4.5*0.85))
	assert.Equal(t, 3.15, round2(4.5*0.70))
	assert.Equal(t, 1.0, round2(365.0/365.0))
	assert.Equal(t, 0.0, round2(0.004))
}
