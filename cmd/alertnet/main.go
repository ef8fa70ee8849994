package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/haitialert/alertnet/internal/adapter/ai"
	httpadapter "github.com/haitialert/alertnet/internal/adapter/http"
	kafkaadapter "github.com/haitialert/alertnet/internal/adapter/kafka"
	"github.com/haitialert/alertnet/internal/adapter/position"
	"github.com/haitialert/alertnet/internal/adapter/sim"
	"github.com/haitialert/alertnet/internal/adapter/ws"
	"github.com/haitialert/alertnet/internal/config"
	"github.com/haitialert/alertnet/internal/domain"
	"github.com/haitialert/alertnet/internal/maprender"
	"github.com/haitialert/alertnet/internal/news"
	"github.com/haitialert/alertnet/internal/notify"
	"github.com/haitialert/alertnet/internal/observability"
	"github.com/haitialert/alertnet/internal/pipeline"
	"github.com/haitialert/alertnet/internal/refdata"
	"github.com/haitialert/alertnet/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	st := store.New(clock, logger, metrics)
	now := clock.Now()
	st.LoadSeed(refdata.SeedReports(now), refdata.SeedResources(now), refdata.SeedZones(now))

	center := notify.NewCenter(clock, cfg.NotifyTTL, logger, metrics)

	hub := ws.NewHub(logger)
	reconciler := maprender.NewReconciler(hub, st, clock, cfg.AttentionWindow, logger, metrics)

	// Device positioning (feature-flagged via POSITION_ENDPOINT).
	var provider domain.PositionProvider
	if cfg.PositionEndpoint != "" {
		provider = position.NewProvider(cfg.PositionEndpoint, cfg.PositionTimeout, logger)
		logger.Info("position provider enabled", "endpoint", cfg.PositionEndpoint)
	} else {
		provider = position.Static{At: refdata.HomeCenter}
		logger.Info("position provider disabled, using static coordinate")
	}
	lock := maprender.NewLocationLock(hub, provider, center, logger, metrics)

	// Alert dispatch (feature-flagged via DISPATCH_ENABLED).
	var dispatcher domain.Dispatcher
	var kafkaDispatcher *kafkaadapter.Dispatcher
	if cfg.DispatchEnabled {
		kafkaDispatcher = kafkaadapter.NewDispatcher(cfg, logger)
		dispatcher = kafkaDispatcher
		logger.Info("kafka dispatch enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAlertTopic)
	} else {
		dispatcher = sim.NewDispatcher(logger)
		logger.Info("kafka dispatch disabled, using simulated dispatcher")
	}

	announcer := sim.NewAnnouncer(logger)
	submitter := pipeline.NewSubmitter(
		st, center, announcer, dispatcher,
		clock, cfg.SubmitDelay, cfg.DispatchRecipient, logger, metrics,
	)

	analyzer := ai.NewClient(cfg.AIAPIKey, cfg.AIEndpoint, cfg.AITimeout, clock, logger, metrics)

	newsSvc := news.NewService(clock, cfg.NewsRefreshInterval, func(ctx context.Context) ([]domain.NewsArticle, error) {
		return refdata.SeedNews(clock.Now()), nil
	}, logger)
	newsSvc.Load(refdata.SeedNews(now))

	handler := httpadapter.NewHandler(st, submitter, reconciler, lock, center, analyzer, newsSvc, hub, logger)
	srv := httpadapter.NewServer(cfg, handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go reconciler.Run(ctx)
	go newsSvc.Run(ctx)

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	submitter.Wait()
	st.Close()
	if kafkaDispatcher != nil {
		if err := kafkaDispatcher.Close(); err != nil {
			logger.Error("kafka dispatcher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
