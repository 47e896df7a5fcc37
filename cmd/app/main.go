package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/jobs"
	"storefront/internal/pkg/logger"
	"storefront/internal/telemetry"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	l, err := logger.New(os.Stdout, configs.LogLevel, configs.LogFormat)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}

	if err := run(configs, l); err != nil {
		l.Error("Storefront stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, l *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, configs.OTLPEndpoint, configs.ServiceName, version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownWithTimeout(l, "tracer provider", shutdownTracing)

	shutdownMetrics, err := telemetry.InitMeterProvider(prometheus.DefaultRegisterer, configs.ServiceName, version)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer shutdownWithTimeout(l, "meter provider", shutdownMetrics)

	if configs.DBAutoMigrate {
		if err := postgres.MigrateUp(configs.DatabaseURL()); err != nil {
			return err
		}
		l.Info("Database schema is up to date")
	}

	gormDB, err := postgres.Open(ctx, configs.DatabaseURL(), l, postgres.Options{
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		Debug:           configs.DBDebug,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(gormDB); err != nil {
			l.Error("Failed to close database", "error", err)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, gormDB, l)
	if err != nil {
		return err
	}

	if err := seed(ctx, app, configs); err != nil {
		return err
	}

	jobManager, err := startJobs(app, configs, l)
	if err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, l)
}

func seed(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config) error {
	cmdSeed, err := commands.NewSeedCommand(configs.AdminEmail, configs.AdminPassword, configs.DefaultQRISImageURL)
	if err != nil {
		return err
	}
	return app.CreateSeedCommandHandler().Handle(ctx, cmdSeed)
}

// startJobs schedules the outbox relay when a broker is configured. Without
// one, order events accumulate in the outbox until a relay runs.
func startJobs(app cmd.CompositionRoot, configs cmd.Config, l *slog.Logger) (*jobs.JobManager, error) {
	brokers := configs.KafkaBrokers()
	if len(brokers) == 0 {
		l.Warn("KAFKA_HOST is not set, order events stay in the outbox")
		return jobs.NewJobManager(), nil
	}

	producer := kafka.NewProducer(brokers, configs.KafkaOrderChangedTopic)
	relay, err := app.CreateOutboxRelayJob(producer)
	if err != nil {
		_ = producer.Close()
		return nil, err
	}

	jobManager := jobs.NewJobManager(closer{producer.Close}, relay)
	if err := jobManager.StartAll(); err != nil {
		return nil, err
	}
	return jobManager, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, l *slog.Logger) error {
	e, err := httpin.NewRouter(ctx, app.CreateServer(), httpin.RouterConfig{
		ServiceName: configs.ServiceName,
		Logger:      l,
		Tokens:      app.Tokens(),
		BodyLimit:   configs.BodyLimit,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.WARN)

	errCh := make(chan error, 1)
	go func() {
		l.Info("Starting HTTP server", "port", configs.HTTPPort, "version", version)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func shutdownWithTimeout(l *slog.Logger, name string, shutdown telemetry.ShutdownFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		l.Error("Failed to shut down "+name, "error", err)
	}
}

// closer adapts a Close func to jobs.Job. Registered before the relay, it is
// stopped after it.
type closer struct {
	close func() error
}

func (c closer) Start() error { return nil }
func (c closer) Stop()        { _ = c.close() }
