package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not yet support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

const helpText = "Commands:\n" +
	"/breeds\n" +
	"/simulate <breed> <level> [days] [animals]\n" +
	"/compare <level> <breed> <breed> [...]\n" +
	"/rank [level]"

// Simulator is the simulation behaviour the dispatcher drives.
type Simulator interface {
	Breeds(ctx context.Context) ([]models.BreedProfile, error)
	Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationRecord, error)
	Compare(ctx context.Context, req models.ComparisonRequest) (models.ComparisonResult, error)
}

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	RankingDigest(ctx context.Context, level models.ManagementLevel, now time.Time) (string, error)
}

// Service answers text commands with plain-text replies.
type Service struct {
	sim       Simulator
	reporting ReportingAdapter
	logger    *zap.Logger
	now       func() time.Time
}

// NewService constructs a command dispatcher.
func NewService(sim Simulator, reporting ReportingAdapter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sim:       sim,
		reporting: reporting,
		logger:    logger,
		now:       time.Now,
	}
}

// HandleText parses message and dispatches it.
func (s *Service) HandleText(ctx context.Context, message string) (string, error) {
	return s.HandleCommand(ctx, models.ParseCommand(message))
}

// HandleCommand runs cmd against the simulation services and renders a reply.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.Strings("args", cmd.Args))

	switch cmd.Type {
	case models.CommandHelp:
		return helpText, nil
	case models.CommandBreeds:
		profiles, err := s.sim.Breeds(ctx)
		if err != nil {
			return "", err
		}
		if len(profiles) == 0 {
			return "No breeds on file.", nil
		}
		lines := make([]string, 0, len(profiles))
		for _, p := range profiles {
			lines = append(lines, fmt.Sprintf("%s (%s): peak %.2f L/day at day %d, %d-day lactation",
				p.Name, p.Key, p.AvgDailyPeakLiters, p.PeakDay, p.StandardLactationDays))
		}
		return strings.Join(lines, "\n"), nil
	case models.CommandSimulate:
		req, err := buildSimulationRequest(cmd)
		if err != nil {
			return "", err
		}
		record, err := s.sim.Simulate(ctx, req)
		if err != nil {
			return "", err
		}
		return formatSimulation(record.Result), nil
	case models.CommandCompare:
		req, err := buildComparisonRequest(cmd)
		if err != nil {
			return "", err
		}
		result, err := s.sim.Compare(ctx, req)
		if err != nil {
			return "", err
		}
		return formatComparison(result), nil
	case models.CommandRank:
		level := models.ManagementMedium
		if len(cmd.Args) > 0 {
			parsed, err := models.ParseManagementLevel(cmd.Args[0])
			if err != nil {
				return "", err
			}
			level = parsed
		}
		if s.reporting == nil {
			return "", ErrUnsupportedCommand
		}
		return s.reporting.RankingDigest(ctx, level, s.now().UTC())
	default:
		return "", ErrUnsupportedCommand
	}
}

func buildSimulationRequest(cmd models.Command) (models.SimulationRequest, error) {
	if len(cmd.Args) < 2 {
		return models.SimulationRequest{}, ErrInvalidArguments
	}

	req := models.SimulationRequest{BreedKey: cmd.Args[0], ManagementLevel: cmd.Args[1]}

	if len(cmd.Args) > 2 {
		days, err := strconv.Atoi(cmd.Args[2])
		if err != nil {
			return models.SimulationRequest{}, ErrInvalidArguments
		}
		req.LactationDays = days
	}

	if len(cmd.Args) > 3 {
		animals, err := strconv.Atoi(cmd.Args[3])
		if err != nil {
			return models.SimulationRequest{}, ErrInvalidArguments
		}
		req.AnimalsCount = animals
	}

	return req, nil
}

func buildComparisonRequest(cmd models.Command) (models.ComparisonRequest, error) {
	if len(cmd.Args) < 3 {
		return models.ComparisonRequest{}, ErrInvalidArguments
	}

	return models.ComparisonRequest{
		ManagementLevel: cmd.Args[0],
		BreedKeys:       cmd.Args[1:],
	}, nil
}

func formatSimulation(r models.SimulationResult) string {
	message := fmt.Sprintf("%s, %s management, %d days: %.2f L per animal (peak %.2f L at day %d). Fat %.2f kg, protein %.2f kg.",
		r.BreedName, r.ManagementLevel, r.LactationDays, r.TotalLactationLiters, r.PeakYield, r.PeakDay, r.FatKg, r.ProteinKg)

	if r.AnimalsCount > 1 {
		message += fmt.Sprintf("\nHerd of %d: %.2f L.", r.AnimalsCount, r.HerdTotals.TotalProduction)
	}
	if op := r.OptimizationPotential; op.HasPotential {
		message += fmt.Sprintf("\nOptimal management adds %.2f L (+%.2f%%). Next step: %s.", op.ImprovementLiters, op.ImprovementPercentage, op.NextLevel)
	}
	return message
}

func formatComparison(c models.ComparisonResult) string {
	lines := make([]string, 0, len(c.Results)+1)
	for _, r := range c.Results {
		lines = append(lines, fmt.Sprintf("%s: %.2f L per animal, herd %.2f L", r.BreedName, r.TotalLactationLiters, r.HerdTotals.TotalProduction))
	}
	lines = append(lines, fmt.Sprintf("Best at %s management: %s", c.ManagementLevel, c.BestBreedKey))
	return strings.Join(lines, "\n")
}
