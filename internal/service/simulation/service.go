// Package simulation runs lactation simulations against stored breed profiles.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/lactation"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/metrics"
)

var (
	// ErrNoBreeds indicates the breed store holds nothing to rank.
	ErrNoBreeds = errors.New("no breeds available")
	// ErrExportUnavailable indicates an export was requested but no exporter is configured.
	ErrExportUnavailable = errors.New("spreadsheet export is not configured")
	// ErrInvalidComparison indicates a comparison with fewer than two breeds.
	ErrInvalidComparison = errors.New("comparison needs at least two breeds")
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
)

// BreedRepository is the subset of the breed store the service reads.
type BreedRepository interface {
	List(ctx context.Context) ([]models.BreedProfile, error)
	Get(ctx context.Context, key string) (models.BreedProfile, error)
}

// HistoryStore persists simulations.
type HistoryStore interface {
	SaveSimulation(ctx context.Context, record models.SimulationRecord) (string, error)
	ListSimulations(ctx context.Context, breedKey string, limit int) ([]models.SimulationRecord, error)
}

// Exporter publishes a simulation outside the service.
type Exporter interface {
	ExportSimulation(ctx context.Context, exportID string, result models.SimulationResult) error
}

// Service orchestrates breed lookup, the lactation engine and the optional side effects.
type Service struct {
	breeds      BreedRepository
	history     HistoryStore
	exporter    Exporter
	recorder    metrics.Recorder
	concurrency int
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires a new simulation service instance.
func NewService(breeds BreedRepository, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		breeds:      breeds,
		recorder:    metrics.Nop(),
		concurrency: 4,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate runs one breed simulation and returns it as a record. History and export
// failures are logged and do not fail the request.
func (s *Service) Simulate(ctx context.Context, req models.SimulationRequest) (models.SimulationRecord, error) {
	level, err := models.ParseManagementLevel(req.ManagementLevel)
	if err != nil {
		return models.SimulationRecord{}, err
	}
	if req.Export && s.exporter == nil {
		return models.SimulationRecord{}, ErrExportUnavailable
	}

	result, err := s.run(ctx, req.BreedKey, lactation.Options{
		Level:         level,
		LactationDays: req.LactationDays,
		AnimalsCount:  req.AnimalsCount,
	})
	if err != nil {
		return models.SimulationRecord{}, err
	}

	record := models.SimulationRecord{
		ScenarioID: req.ScenarioID,
		Result:     result,
		CreatedAt:  s.now().UTC(),
	}

	if s.history != nil {
		id, err := s.history.SaveSimulation(ctx, record)
		if err != nil {
			s.logger.Error("failed to save simulation", zap.String("breed_key", req.BreedKey), zap.Error(err))
		} else {
			record.ID = id
		}
	}

	if req.Export {
		exportID := record.ID
		if exportID == "" {
			exportID = fmt.Sprintf("%s-%d", result.BreedKey, record.CreatedAt.Unix())
		}
		if err := s.exporter.ExportSimulation(ctx, exportID, result); err != nil {
			s.logger.Error("failed to export simulation", zap.String("export_id", exportID), zap.Error(err))
		}
	}

	return record, nil
}

// Compare simulates several breeds under one management level. Results keep the
// request order; BestBreedKey names the highest herd production.
func (s *Service) Compare(ctx context.Context, req models.ComparisonRequest) (models.ComparisonResult, error) {
	if len(req.BreedKeys) < 2 {
		return models.ComparisonResult{}, ErrInvalidComparison
	}
	level, err := models.ParseManagementLevel(req.ManagementLevel)
	if err != nil {
		return models.ComparisonResult{}, err
	}

	s.recorder.ObserveComparison(len(req.BreedKeys))

	jobs := make([]job, len(req.BreedKeys))
	for i, key := range req.BreedKeys {
		opts := lactation.Options{Level: level, LactationDays: req.LactationDays, AnimalsCount: req.AnimalsCount}
		if o, ok := req.Overrides[key]; ok {
			if o.LactationDays > 0 {
				opts.LactationDays = o.LactationDays
			}
			if o.AnimalsCount > 0 {
				opts.AnimalsCount = o.AnimalsCount
			}
		}
		jobs[i] = job{key: key, opts: opts}
	}

	results, errs := s.runAll(ctx, jobs)
	for i, err := range errs {
		if err != nil {
			return models.ComparisonResult{}, fmt.Errorf("simulate %s: %w", jobs[i].key, err)
		}
	}

	best := 0
	for i := range results {
		if results[i].HerdTotals.TotalProduction > results[best].HerdTotals.TotalProduction {
			best = i
		}
	}

	return models.ComparisonResult{
		ManagementLevel: level,
		Results:         results,
		BestBreedKey:    results[best].BreedKey,
	}, nil
}

// Rank simulates every stored breed at level over its standard lactation and orders
// them by per-animal lactation total. Breeds with unusable reference data are skipped.
func (s *Service) Rank(ctx context.Context, level models.ManagementLevel) ([]models.RankingEntry, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownManagementLevel, level)
	}

	profiles, err := s.breeds.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNoBreeds
	}

	jobs := make([]job, len(profiles))
	for i, p := range profiles {
		p := p
		jobs[i] = job{key: p.Key, profile: &p, opts: lactation.Options{Level: level}}
	}

	results, errs := s.runAll(ctx, jobs)

	entries := make([]models.RankingEntry, 0, len(results))
	for i, r := range results {
		if errs[i] != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.logger.Warn("breed skipped from ranking", zap.String("breed_key", jobs[i].key), zap.Error(errs[i]))
			continue
		}
		entries = append(entries, models.RankingEntry{
			BreedKey:              r.BreedKey,
			BreedName:             r.BreedName,
			TotalLactationLiters:  r.TotalLactationLiters,
			PeakYield:             r.PeakYield,
			SolidsKg:              r.SolidsKg,
			ImprovementPercentage: r.OptimizationPotential.ImprovementPercentage,
		})
	}
	if len(entries) == 0 {
		return nil, ErrNoBreeds
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalLactationLiters == entries[j].TotalLactationLiters {
			return entries[i].BreedName < entries[j].BreedName
		}
		return entries[i].TotalLactationLiters > entries[j].TotalLactationLiters
	})
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, nil
}

// History returns stored simulations, newest first. Without a history store it is empty.
func (s *Service) History(ctx context.Context, breedKey string, limit int) ([]models.SimulationRecord, error) {
	if s.history == nil {
		return []models.SimulationRecord{}, nil
	}
	records, err := s.history.ListSimulations(ctx, breedKey, limit)
	if err != nil {
		return nil, fmt.Errorf("list simulations: %w", err)
	}
	return records, nil
}

// Breeds lists the stored breed profiles.
func (s *Service) Breeds(ctx context.Context) ([]models.BreedProfile, error) {
	return s.breeds.List(ctx)
}

// Breed returns one stored breed profile.
func (s *Service) Breed(ctx context.Context, key string) (models.BreedProfile, error) {
	return s.breeds.Get(ctx, key)
}

type job struct {
	key     string
	profile *models.BreedProfile
	opts    lactation.Options
}

// runAll executes jobs with at most s.concurrency in flight. Slots line up with jobs.
func (s *Service) runAll(ctx context.Context, jobs []job) ([]models.SimulationResult, []error) {
	results := make([]models.SimulationResult, len(jobs))
	errs := make([]error, len(jobs))

	swg := sizedwaitgroup.New(s.concurrency)
	var mu sync.Mutex

	for i := range jobs {
		if err := swg.AddWithContext(ctx); err != nil {
			mu.Lock()
			for j := i; j < len(jobs); j++ {
				errs[j] = err
			}
			mu.Unlock()
			break
		}

		go func(i int) {
			defer swg.Done()

			var (
				r   models.SimulationResult
				err error
			)
			if jobs[i].profile != nil {
				r, err = s.simulate(*jobs[i].profile, jobs[i].opts)
			} else {
				r, err = s.run(ctx, jobs[i].key, jobs[i].opts)
			}

			mu.Lock()
			results[i], errs[i] = r, err
			mu.Unlock()
		}(i)
	}

	swg.Wait()
	return results, errs
}

func (s *Service) run(ctx context.Context, breedKey string, opts lactation.Options) (models.SimulationResult, error) {
	if err := ctx.Err(); err != nil {
		return models.SimulationResult{}, err
	}

	profile, err := s.breeds.Get(ctx, breedKey)
	if err != nil {
		return models.SimulationResult{}, err
	}
	return s.simulate(profile, opts)
}

func (s *Service) simulate(profile models.BreedProfile, opts lactation.Options) (models.SimulationResult, error) {
	start := time.Now()
	result, err := lactation.Simulate(profile, opts)
	elapsed := time.Since(start)

	if err != nil {
		s.recorder.ObserveSimulation(string(opts.Level), outcomeInvalid, elapsed)
		s.logger.Warn("simulation rejected", zap.String("breed_key", profile.Key), zap.Error(err))
		return models.SimulationResult{}, err
	}

	s.recorder.ObserveSimulation(string(opts.Level), outcomeOK, elapsed)
	s.logger.Debug("simulation completed",
		zap.String("breed_key", profile.Key),
		zap.String("management_level", string(opts.Level)),
		zap.Int("lactation_days", result.LactationDays),
		zap.Float64("total_lactation_liters", result.TotalLactationLiters),
		zap.Duration("elapsed", elapsed))
	return result, nil
}
