package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"pressekiosk/internal/config"
	"pressekiosk/internal/publisher"
	"pressekiosk/internal/rss"
	"pressekiosk/internal/scheduler"
	"pressekiosk/internal/scraper"
	"pressekiosk/internal/server"
	"pressekiosk/internal/service"
	"pressekiosk/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Stores
	sourceStore := postgres.NewMediaSourceStore(db)
	feedStore := postgres.NewFeedStore(db)
	publicationStore := postgres.NewPublicationStore(db)
	articleStore := postgres.NewArticleStore(db)
	fetchLogStore := postgres.NewFetchLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Optional article event publisher
	var articlePublisher service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbit.Close()
		articlePublisher = rabbit
	}

	feedClient := rss.NewClient(rss.Config{
		Timeout:   cfg.Fetch.RequestTimeout,
		UserAgent: cfg.Fetch.UserAgent,
	}, logger)

	scrapers := scraper.NewRegistry(logger)

	resolver := service.NewPublicationResolver(
		feedClient,
		scrapers,
		publicationStore,
		txManager,
		logger,
	)

	fetchService := service.NewFetchService(
		sourceStore,
		feedStore,
		articleStore,
		fetchLogStore,
		feedClient,
		resolver,
		articlePublisher,
		logger,
		cfg.Fetch,
	)

	sched := scheduler.New(fetchService, logger)
	if err := sched.Start(cfg.Fetch.IntervalMinutes); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		sched.Stop()
		os.Exit(0)
	}()

	logger.Info("starting pressekiosk ingestion service",
		"interval_minutes", cfg.Fetch.IntervalMinutes,
		"addr", cfg.Server.Addr,
	)

	srv := server.New(sched, fetchLogStore, logger)
	if err := srv.Run(cfg.Server.Addr); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
