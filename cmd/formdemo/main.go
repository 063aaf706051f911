// Command formdemo runs a small HTTP server showing formkit as it would sit
// behind a real form: POSTed values become session fields, Validate gates the
// response, and Accept-Language picks the message catalog.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/formkit-go/formkit/translate"
)

type config struct {
	Addr            string        `env:"FORMDEMO_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"FORMDEMO_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		slog.Error("failed to parse config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	translator := translate.New(language.English, translate.DefaultCatalog())
	translator.Register(language.German, translate.Catalog{
		"validation.required":   "Pflichtfeld",
		"validation.min_length": "mindestens {{min}} Zeichen",
		"validation.email":      "keine gültige E-Mail-Adresse",
	})

	handlers, err := newHandlers(logger, translator)
	if err != nil {
		logger.Error("failed to build handlers", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/signup", handlers.signup)
	r.Post("/profile", handlers.profile)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("formdemo listening", slog.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
