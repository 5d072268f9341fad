package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/config"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/metrics"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/repository/breeds"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/repository/mongodb"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/repository/sheets"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/scheduler"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/server/handlers"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/server/router"
	commandsvc "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/service/commands"
	reportingsvc "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/service/reporting"
	simulationsvc "github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/service/simulation"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/pkg/clients/webhook"
	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()

	breedRepo, err := breeds.Open(startCtx, cfg.BreedStore, baseLogger.Named("repo.breeds"))
	if err != nil {
		baseLogger.Fatal("failed to open breed store", zap.Error(err), zap.String("driver", cfg.BreedStore.Driver))
	}
	defer func() {
		if err := breedRepo.Close(); err != nil {
			baseLogger.Error("failed to close breed store", zap.Error(err))
		}
	}()

	m := metrics.New()
	opts := []simulationsvc.Option{
		simulationsvc.WithRecorder(m),
		simulationsvc.WithConcurrency(cfg.Simulation.CompareConcurrency),
	}

	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(startCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		opts = append(opts, simulationsvc.WithHistory(mongoRepo))
	} else {
		baseLogger.Warn("MONGODB_URI missing, simulation history disabled")
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(startCtx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		opts = append(opts, simulationsvc.WithExporter(sheets.NewExporter(sheetsRepo)))
		baseLogger.Info("google sheets export enabled")
	}

	simulationSvc := simulationsvc.NewService(breedRepo, baseLogger.Named("svc.simulation"), opts...)
	reportingSvc := reportingsvc.NewService(simulationSvc, baseLogger.Named("svc.reporting"))

	simulationHandler := handlers.NewSimulationHandler(simulationSvc, baseLogger.Named("handlers.simulation"))
	commandDispatcher := commandsvc.NewService(simulationSvc, reportingSvc, baseLogger.Named("svc.commands"))
	commandHandler := handlers.NewCommandHandler(commandDispatcher, baseLogger.Named("handlers.commands"))
	engine := router.New(simulationHandler, commandHandler, m.Handler(), baseLogger.Named("router"))

	if cfg.Digest.Enabled() {
		sched, err := scheduler.NewScheduler(cfg.Ranking, reportingSvc, webhook.NewClient(cfg.Digest), baseLogger.Named("scheduler"))
		if err != nil {
			baseLogger.Fatal("failed to init scheduler", zap.Error(err))
		}
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	} else {
		baseLogger.Warn("DIGEST_WEBHOOK_URL missing, ranking digest disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
