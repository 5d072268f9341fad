package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Ranker orders breeds by simulated lactation output.
type Ranker interface {
	Rank(ctx context.Context, level models.ManagementLevel) ([]models.RankingEntry, error)
}

// Service turns breed rankings into plain-text digests.
type Service struct {
	ranker Ranker
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(ranker Ranker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{ranker: ranker, logger: logger}
}

// RankingDigest ranks every breed at level and formats the result, one line per breed.
func (s *Service) RankingDigest(ctx context.Context, level models.ManagementLevel, now time.Time) (string, error) {
	entries, err := s.ranker.Rank(ctx, level)
	if err != nil {
		return "", fmt.Errorf("rank breeds: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Breed ranking (%s, %s management)\n", now.Format(dateLayout), level)
	for _, e := range entries {
		fmt.Fprintf(&b, "%d. %s: %.2f L/lactation, peak %.2f L/day, %.2f kg solids",
			e.Position, e.BreedName, e.TotalLactationLiters, e.PeakYield, e.SolidsKg)
		if e.ImprovementPercentage > 0 {
			fmt.Fprintf(&b, ", +%.2f%% at optimal", e.ImprovementPercentage)
		}
		b.WriteByte('\n')
	}

	if len(entries) > 1 {
		top, last := entries[0], entries[len(entries)-1]
		fmt.Fprintf(&b, "Spread: %s out-produces %s by %.2f L per animal.",
			top.BreedName, last.BreedName, top.TotalLactationLiters-last.TotalLactationLiters)
	} else {
		b.WriteString("Only one breed on file.")
	}

	s.logger.Debug("ranking digest built", zap.String("management_level", string(level)), zap.Int("breeds", len(entries)))
	return b.String(), nil
}
