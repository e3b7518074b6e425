// Itemrec - Related Item Recommendations for Product Catalogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/itemrec

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/itemrec/internal/api"
	"github.com/tomtom215/itemrec/internal/config"
	"github.com/tomtom215/itemrec/internal/logging"
	"github.com/tomtom215/itemrec/internal/metrics"
	"github.com/tomtom215/itemrec/internal/recommend"
	"github.com/tomtom215/itemrec/internal/supervisor"
	"github.com/tomtom215/itemrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("itemrec exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("source", cfg.Data.Source).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting itemrec")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	data, err := initData(cfg, logging.WithComponent("data"))
	if err != nil {
		return err
	}
	defer func() {
		if err := data.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing data stores")
		}
	}()

	engine, err := initRecommend(cfg, data.Provider, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}

	// A nil *database.DB must not become a non-nil interface.
	var stats api.DatasetStats
	if data.DB != nil {
		stats = data.DB
	}

	defaultStrategy, err := recommend.ParseStrategy(cfg.Recommend.DefaultStrategy)
	if err != nil {
		return err
	}

	handler := api.NewHandler(engine, stats, api.HandlerConfig{
		DefaultStrategy: defaultStrategy,
		MaxLimit:        cfg.Recommend.MaxLimit,
		SampleSize:      cfg.Recommend.SampleSize,
		LikeThreshold:   cfg.Recommend.LikeThreshold,
		RequestTimeout:  cfg.Server.WriteTimeout,
		Version:         version,
	})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewWarmupService(engine, services.WarmupConfig{
		Sinks: data.Sinks,
	}, logging.WithComponent("supervisor")))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.WithComponent("supervisor")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
		}
	}

	logging.Info().Msg("itemrec stopped")
	return nil
}
