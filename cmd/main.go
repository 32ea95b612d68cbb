package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/redlinehq/redline/internal/adapters/storage"
	"github.com/redlinehq/redline/internal/catalog"
	"github.com/redlinehq/redline/internal/config"
	"github.com/redlinehq/redline/internal/domain/model"
	"github.com/redlinehq/redline/internal/domain/prestige"
	"github.com/redlinehq/redline/internal/engine"
	"github.com/redlinehq/redline/pkg/logger"
	"github.com/redlinehq/redline/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	demoRaceCount  = 5
	demoRaceGapSec = 30
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Error(ctx, "failed to load catalog", logger.Error(err))
		return
	}
	log.Info(ctx, "catalog loaded",
		logger.String("path", cfg.CatalogPath),
		logger.Int("vehicles", cat.VehicleCount()),
	)

	mtr := metrics.NewManager()

	eng, err := engine.New(cat,
		engine.WithLogger(log),
		engine.WithMetrics(mtr),
		engine.WithSeed(cfg.Seed),
		engine.WithHeatDecayRate(cfg.HeatDecayPerSecond),
		engine.WithPrestigeController(prestige.New(
			prestige.WithThresholds(cfg.PrestigeMoneyThreshold, cfg.PrestigeReputationThreshold, cfg.PrestigeCredThreshold),
			prestige.WithResetMoney(cfg.PrestigeResetMoney),
		)),
		engine.WithStore(storage.New(
			storage.WithPath(cfg.ProfilePath),
			storage.WithStartingMoney(cfg.StartingMoney),
		)),
	)
	if err != nil {
		log.Error(ctx, "failed to build engine", logger.Error(err))
		return
	}

	// Expose Prometheus metrics while the session runs.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		log.Info(ctx, "starting metrics server", logger.String("addr", cfg.MetricsAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("metrics server failed: " + err.Error() + "\n")
		}
	}()

	if err := runDemoSession(ctx, eng); err != nil {
		log.Error(ctx, "demo session failed", logger.Error(err))
	}

	<-ctx.Done()
	log.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
	}
}

// runDemoSession drives a small scripted session against the engine: restore
// the profile, make sure a car is owned, run a handful of street races with
// passive decay between them, and prestige if the ledger qualifies.
func runDemoSession(ctx context.Context, eng *engine.Engine) error {
	log := logger.Get()

	ledger, err := eng.LoadProfile(ctx)
	if err != nil {
		return err
	}

	if ledger.ActiveVehicle == "" {
		if err := eng.BuyVehicle(ctx, ledger, "hatch-mk1"); err != nil {
			return err
		}
	}

	skill := model.SkillInput{TimingA: 0.8, TimingB: 0.7, TimingC: 0.9}
	for i := 0; i < demoRaceCount; i++ {
		event := model.EventSpec{Venue: model.VenueStreet, OpponentTier: i % 3}
		report, err := eng.ResolveRace(ctx, ledger, event, skill)
		if err != nil {
			return err
		}
		if report.Police != nil && !report.Police.Escaped {
			log.Warn(ctx, "busted", logger.Int64("fine", report.FinePaid))
		}
		if err := eng.DecayHeat(ctx, ledger, demoRaceGapSec); err != nil {
			return err
		}
	}

	if eng.CanPrestige(ledger) {
		if err := eng.Prestige(ctx, ledger); err != nil {
			return err
		}
	}

	log.Info(ctx, "session complete",
		logger.Int64("money", ledger.Money),
		logger.Float64("heat", ledger.Heat),
		logger.Int("prestige", ledger.Prestige),
	)
	return nil
}
