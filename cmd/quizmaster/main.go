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

	"github.com/spf13/pflag"

	"github.com/letsssgooo/quizMaster/internal/auth"
	"github.com/letsssgooo/quizMaster/internal/client"
	"github.com/letsssgooo/quizMaster/internal/config"
	"github.com/letsssgooo/quizMaster/internal/httpapi"
	"github.com/letsssgooo/quizMaster/internal/lib/slogcustom"
	"github.com/letsssgooo/quizMaster/internal/questions"
	"github.com/letsssgooo/quizMaster/internal/quiz"
	"github.com/letsssgooo/quizMaster/internal/service"
	"github.com/letsssgooo/quizMaster/internal/storage"
	"github.com/letsssgooo/quizMaster/internal/storage/ledger"
	"github.com/letsssgooo/quizMaster/internal/storage/postgres"
	"github.com/letsssgooo/quizMaster/internal/storage/quizzes"
	"github.com/letsssgooo/quizMaster/internal/storage/redis"
	"github.com/letsssgooo/quizMaster/internal/storage/sqlite"
	"github.com/letsssgooo/quizMaster/internal/storage/users"
)

func main() {
	cfg := config.Load()

	pflag.StringVar(&cfg.Addr, "addr", cfg.Addr, "address of the http server")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pflag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	pflag.StringVar(&cfg.Store.Driver, "store", cfg.Store.Driver, "memory, sqlite, postgres or redis")
	pflag.StringVar(&cfg.Store.DSN, "store-dsn", cfg.Store.DSN, "sqlite path, postgres or redis url")
	pflag.BoolVar(&cfg.Offline, "offline", cfg.Offline, "use only the built-in question bank")
	pflag.Parse()

	log := setupLogger(cfg)
	slog.SetDefault(log)
	slog.Info("starting quiz master...", "addr", cfg.Addr, "store", cfg.Store.Driver)

	if err := run(cfg); err != nil {
		slog.Error("quiz master stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStorage(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	source, err := setupSource(cfg)
	if err != nil {
		return err
	}

	accounts := users.NewRepo(st)
	used := ledger.New(st)

	svc := service.New(service.Deps{
		Auth:     auth.NewService(accounts, auth.NewBcryptHasher(0)),
		Source:   source,
		Ledger:   used,
		Accounts: accounts,
		Quizzes:  quizzes.NewRepo(st),
		Settings: quiz.Settings{
			QuestionTime: cfg.Quiz.QuestionTime,
			TickInterval: time.Second,
			RevealPause:  cfg.Quiz.RevealPause,
			MaxQuestions: cfg.Quiz.MaxQuestions,
		},
	})
	defer svc.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(svc)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// openStorage открывает выбранное хранилище и оборачивает его повтором записи.
func openStorage(ctx context.Context, cfg config.StoreConfig) (storage.Storage, func(), error) {
	switch cfg.Driver {
	case "memory":
		return storage.NewRetrying(storage.NewMemoryStorage()), func() {}, nil
	case "sqlite":
		st, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return storage.NewRetrying(st), func() { _ = st.Close() }, nil
	case "postgres":
		st, err := postgres.NewStorage(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return storage.NewRetrying(st), st.Close, nil
	case "redis":
		st, err := redis.NewStorage(ctx, cfg.DSN, cfg.Prefix)
		if err != nil {
			return nil, nil, fmt.Errorf("open redis: %w", err)
		}
		return storage.NewRetrying(st), func() { _ = st.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Driver)
	}
}

func setupSource(cfg *config.Config) (questions.Source, error) {
	bank, err := questions.NewLocalBank()
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	var primary questions.Source
	if !cfg.Offline {
		primary = client.NewHTTPClient(cfg.Trivia.BaseURL, cfg.Trivia.Amount, cfg.Trivia.Timeout)
	}

	return questions.NewFallbackSource(primary, bank), nil
}

func setupLogger(cfg *config.Config) *slog.Logger {
	level := slogcustom.ParseLevel(cfg.LogLevel)

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogcustom.NewCustomHandler(os.Stdout, level))
}
