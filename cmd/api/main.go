package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/joho/godotenv"

	"github.com/riskibarqy/club-admin/internal/app"
	"github.com/riskibarqy/club-admin/internal/config"
	"github.com/riskibarqy/club-admin/internal/observability"
	"github.com/riskibarqy/club-admin/internal/platform/logging"
)

func main() {
	// Local development convenience; the file is absent in deployed envs.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	baseLogger := logging.NewJSON(cfg.LogLevel)

	logger, stopLogShipping, err := observability.InitBetterStackLogger(cfg, baseLogger)
	if err != nil {
		baseLogger.Error("init log shipping", "error", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	stopUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	srv, cleanup, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var shutdownErr error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "shutdown http server"))
	}
	cleanup()

	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "stop pprof server"))
	}
	if err := stopPyroscope(); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "stop pyroscope"))
	}
	if err := stopUptrace(shutdownCtx); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "stop uptrace"))
	}
	if err := stopLogShipping(shutdownCtx); err != nil {
		shutdownErr = crerr.CombineErrors(shutdownErr, crerr.Wrap(err, "stop log shipping"))
	}

	if shutdownErr != nil {
		logger.Error("graceful shutdown failed", "error", shutdownErr)
		os.Exit(1)
	}

	logger.Info("http server stopped")
}
