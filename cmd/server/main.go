// Package main initializes and starts the Nexus HTTP server,
// setting up configuration, logging, the contacts database, services,
// handlers, and optional TLS.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/nexus/internal/config"
	"github.com/atinyakov/nexus/internal/db"
	"github.com/atinyakov/nexus/internal/logger"
	"github.com/atinyakov/nexus/internal/repository"
	"github.com/atinyakov/nexus/internal/server/handler/http"
	"github.com/atinyakov/nexus/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line, config file and environment configuration.
	options, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(2)
	}
	zapLogger := log.Log

	// A database that cannot be opened is logged, not fatal: the server
	// keeps running and storage requests fail one by one.
	sqlDB, dialect, err := db.Open(options.DatabaseDSN)
	if err != nil {
		zapLogger.Error("could not open database", zap.String("dsn", options.DatabaseDSN), zap.Error(err))
	} else {
		zapLogger.Info("database ready", zap.String("dialect", string(dialect)))
	}
	contactRepo := repository.NewContactRepository(sqlDB, dialect)
	defer func() { _ = contactRepo.Close() }()

	rnd, err := service.NewRandomSource()
	if err != nil {
		zapLogger.Fatal("cannot seed random source", zap.Error(err))
	}

	// Initialize business-logic services.
	authService := service.NewStaticAuthenticator(options.AdminEmail, options.AdminPassword, options.AdminToken)
	contactService := service.NewContactService(contactRepo)
	dashboardService := service.NewDashboardService(service.DefaultLines(), service.DefaultStats(), rnd)

	// Build the router with middleware and routes.
	router := http.NewRouter(http.Handlers{
		Auth:      &http.AuthHandler{Auth: authService},
		Contact:   &http.ContactHandler{ContactService: contactService, Logger: zapLogger},
		Dashboard: &http.DashboardHandler{Dashboard: dashboardService},
		StaticDir: options.StaticDir,
	}, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.Bool("tls", options.TLSEnabled()),
			zap.String("static_dir", options.StaticDir),
		)
		if options.TLSEnabled() {
			errCh <- server.ListenAndServeTLS(options.TLSCert, options.TLSKey)
			return
		}
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zapLogger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
