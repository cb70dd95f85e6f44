package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"zenhealing/internal/api"
	"zenhealing/internal/auth"
	"zenhealing/internal/config"
	"zenhealing/internal/domain"
	"zenhealing/internal/netmon"
	"zenhealing/internal/publisher"
	"zenhealing/internal/storage"
	storagepg "zenhealing/internal/storage/postgres"
	storageredis "zenhealing/internal/storage/redis"
	"zenhealing/internal/store"
	"zenhealing/internal/transport"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	login := flag.String("login", "", "practitioner email to log in with")
	password := flag.String("password", "", "practitioner password")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	env := cfg.Active()
	logger = setupLogger(env.LogLevel)
	logger.Info("starting", "environment", cfg.Environment, "api_url", env.APIURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	kv, cleanup, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to set up storage", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	doctorSession := auth.NewSession(kv, storage.KeyAuthToken, storage.KeyDoctorInfo)
	userSession := auth.NewSession(kv, storage.KeyAuthToken, storage.KeyUserInfo)

	httpClient := transport.New(transport.Config{
		BaseURL: env.APIURL,
		Timeout: env.APITimeout,
		Verbose: env.Verbose,
	}, doctorSession, logger)
	backend := api.New(httpClient)

	var events store.EventPublisher
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
		events = rabbit
	}

	doctors := store.NewDoctorStore(backend, backend, doctorSession, logger, env.UseFallbackData)
	appointments := store.NewAppointmentStore(backend, events, logger)
	articles := store.NewArticleStore(backend, logger)
	users := store.NewAuthStore(backend, userSession, logger)
	app := store.NewAppStore(kv, backend, logger)

	if err := app.Load(ctx); err != nil {
		logger.Warn("failed to load persisted app state", "error", err)
	}

	monitor := netmon.NewMonitor(func(ctx context.Context) bool {
		_, err := backend.ListSpecialities(ctx)
		return err == nil
	}, cfg.Connectivity.ProbeInterval, logger)
	monitor.Subscribe(app.SetOnline)
	go func() {
		if err := monitor.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("connectivity monitor error", "error", err)
		}
	}()

	if restored := users.Restore(ctx); restored != nil {
		logger.Info("restored user session", "user_id", restored.ID)
	}
	if restored := doctors.Restore(ctx); restored != nil {
		logger.Info("restored practitioner session", "doctor_id", restored.ID)
	}

	if *login != "" {
		doctor, err := doctors.Login(ctx, domain.Credentials{Email: *login, Password: *password})
		if err != nil {
			logger.Error("practitioner login failed", "error", err)
			os.Exit(1)
		}
		logger.Info("logged in", "doctor_id", doctor.ID, "name", doctor.Name)
		appointments.FetchForDoctor(ctx, doctor.ID)
		logger.Info("practitioner schedule", "appointments", len(appointments.ForDoctor()))
	}

	browse(ctx, logger, doctors, articles)

	<-ctx.Done()
	logger.Info("stopped")
}

// browse warms every catalog and logs what the screens would render.
func browse(ctx context.Context, logger *slog.Logger, doctors *store.DoctorStore, articles *store.ArticleStore) {
	doctors.FetchSpecialities(ctx)
	doctors.FetchSymptoms(ctx)
	doctors.FetchLocations(ctx)
	doctors.FetchDoctors(ctx)
	articles.FetchAll(ctx)

	logger.Info("catalogs loaded",
		"doctors", len(doctors.Doctors()),
		"featured_doctors", len(doctors.FeaturedDoctors()),
		"specialities", len(doctors.Specialities()),
		"symptoms", len(doctors.Symptoms()),
		"locations", len(doctors.Locations()),
		"articles", len(articles.Articles()),
	)
}

func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := sqlx.Connect("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}
		pg := storagepg.NewStore(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("using postgres storage")
		return pg, func() { db.Close() }, nil
	case "redis":
		rd, err := storageredis.NewStore(ctx, storageredis.Config{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis storage")
		return rd, func() { rd.Close() }, nil
	default:
		logger.Info("using in-memory storage")
		return storage.NewMemory(), func() {}, nil
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
