// @title Reflection Lesson API
// @version 1.0
// @description Serves the stages of the law-of-reflection lesson with their navigation metadata.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reflectionlesson/config"
	_ "reflectionlesson/docs"
	"reflectionlesson/internal/adapters/lesson"
	"reflectionlesson/internal/adapters/markup"
	deliveryhttp "reflectionlesson/internal/delivery/http"
	"reflectionlesson/internal/delivery/http/controllers"
	"reflectionlesson/internal/delivery/http/middleware"
	"reflectionlesson/internal/domain"
	"reflectionlesson/internal/repository/postgres"
	"reflectionlesson/internal/services"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBUrl != "" {
		openCtx, cancel := context.WithTimeout(ctx, startupTimeout)
		var err error
		db, err = postgres.Open(openCtx, cfg.DBUrl)
		cancel()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	slides, err := loadSequence(ctx, newSlideSource(cfg, db))
	if err != nil {
		return err
	}
	logger.Info("lesson loaded", "source", cfg.SlideSource(), "stages", slides.Len())

	stageService := services.NewStageService(slides, markup.NewSummarizer(cfg.SummaryMaxRunes))
	stageController := controllers.NewStageController(logger, stageService)

	var handler http.Handler = deliveryhttp.NewRouter(stageController)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSlideSource picks the lesson source: Postgres when db is set, then the
// configured JSON file, then the lesson embedded in the binary.
func newSlideSource(cfg *config.Config, db *sql.DB) domain.SlideSource {
	switch {
	case db != nil:
		return postgres.NewSlideRepository(db)
	case cfg.SlidesFile != "":
		return lesson.NewFileSource(cfg.SlidesFile)
	default:
		return lesson.NewEmbeddedSource()
	}
}

func loadSequence(ctx context.Context, src domain.SlideSource) (domain.SlideSequence, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()
	slides, err := src.LoadSlides(ctx)
	if err != nil {
		return domain.SlideSequence{}, fmt.Errorf("load slides: %w", err)
	}
	seq, err := domain.NewSlideSequence(slides)
	if err != nil {
		return domain.SlideSequence{}, fmt.Errorf("load slides: %w", err)
	}
	return seq, nil
}
