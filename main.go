package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/internal/config"
	"github.com/moneyjournal/backend/pkg/controllers"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/notify"
	"github.com/moneyjournal/backend/pkg/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Variables from .env must be available before GIN_MODE is read
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("loading .env")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the directory for the SQLite database
	if !models.IsPostgres(cfg.DatabaseURL) && cfg.DatabaseURL != ":memory:" {
		err := os.MkdirAll(filepath.Dir(cfg.DatabaseURL), os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	db, err := models.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.EmailEnabled() {
		notifier = notify.Email{
			APIKey:     cfg.EmailAPIKey,
			URL:        cfg.EmailAPIURL,
			From:       cfg.EmailFrom,
			Recipients: cfg.EmailRecipients,
			Location:   cfg.Location,
		}
		log.Info().Strs("recipients", cfg.EmailRecipients).Msg("email notifications enabled")
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(cfg, controllers.Controller{
		DB:        db,
		Notifier:  notifier,
		OwnerRole: cfg.BudgetOwnerRole,
		Location:  cfg.Location,
	}, r.Group("/"))

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("backend startup complete")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
