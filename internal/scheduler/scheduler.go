package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/config"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/pkg/clients/webhook"
)

const digestKind = "breed_ranking"

// DigestBuilder renders the ranking digest text.
type DigestBuilder interface {
	RankingDigest(ctx context.Context, level models.ManagementLevel, now time.Time) (string, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	digests  DigestBuilder
	poster   webhook.Poster
	schedule string
	level    models.ManagementLevel
	loc      *time.Location
	logger   *zap.Logger
}

// NewScheduler creates a scheduler running the ranking digest in the configured timezone.
func NewScheduler(cfg config.RankingConfig, digests DigestBuilder, poster webhook.Poster, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	level, err := models.ParseManagementLevel(cfg.ManagementLevel)
	if err != nil {
		return nil, fmt.Errorf("RANKING_MANAGEMENT_LEVEL: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	// Standard 5-field cron expressions evaluated in loc.
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:     c,
		digests:  digests,
		poster:   poster,
		schedule: cfg.CronSchedule,
		level:    level,
		loc:      loc,
		logger:   logger,
	}, nil
}

// Start registers the digest job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule), zap.String("timezone", s.loc.String()))

	if _, err := s.cron.AddFunc(s.schedule, s.sendRankingDigest); err != nil {
		return fmt.Errorf("schedule ranking digest: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendRankingDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error("ranking digest failed", zap.Error(err))
		return
	}
	s.logger.Info("ranking digest sent successfully")
}

// RunOnce builds and posts one digest immediately.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	now := time.Now().In(s.loc)

	text, err := s.digests.RankingDigest(ctx, s.level, now)
	if err != nil {
		return fmt.Errorf("build ranking digest: %w", err)
	}

	digest := webhook.Digest{
		Kind:            digestKind,
		ManagementLevel: string(s.level),
		GeneratedAt:     now,
		Text:            text,
	}
	if err := s.poster.PostDigest(ctx, digest); err != nil {
		return fmt.Errorf("post ranking digest: %w", err)
	}
	return nil
}
