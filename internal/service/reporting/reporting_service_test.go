package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

type stubRanker struct {
	entries []models.RankingEntry
	err     error
	level   models.ManagementLevel
}

func (s *stubRanker) Rank(_ context.Context, level models.ManagementLevel) ([]models.RankingEntry, error) {
	s.level = level
	return s.entries, s.err
}

func TestRankingDigest(t *testing.T) {
	ranker := &stubRanker{entries: []models.RankingEntry{
		{Position: 1, BreedName: "Saanen", TotalLactationLiters: 1008.43, PeakYield: 3.83, SolidsKg: 129.84, ImprovementPercentage: 17.65},
		{Position: 2, BreedName: "Nubian", TotalLactationLiters: 600.5, PeakYield: 2.5, SolidsKg: 90.1},
	}}
	svc := NewService(ranker, nil)

	digest, err := svc.RankingDigest(context.Background(), models.ManagementMedium, time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	want := "Breed ranking (2026-03-02, medium management)\n" +
		"1. Saanen: 1008.43 L/lactation, peak 3.83 L/day, 129.84 kg solids, +17.65% at optimal\n" +
		"2. Nubian: 600.50 L/lactation, peak 2.50 L/day, 90.10 kg solids\n" +
		"Spread: Saanen out-produces Nubian by 407.93 L per animal."
	assert.Equal(t, want, digest)
	assert.Equal(t, models.ManagementMedium, ranker.level)
}

func TestRankingDigest_SingleBreed(t *testing.T) {
	svc := NewService(&stubRanker{entries: []models.RankingEntry{{Position: 1, BreedName: "Alpine"}}}, nil)

	digest, err := svc.RankingDigest(context.Background(), models.ManagementOptimal, time.Now())
	require.NoError(t, err)
	assert.Contains(t, digest, "Only one breed on file.")
}

func TestRankingDigest_Error(t *testing.T) {
	boom := errors.New("store offline")
	svc := NewService(&stubRanker{err: boom}, nil)

	_, err := svc.RankingDigest(context.Background(), models.ManagementLow, time.Now())
	assert.ErrorIs(t, err, boom)
}
