// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Command server wires up and runs the LOGOS session API: DuckDB-backed
// repository, stage-audit logger, content-oracle client, the learning
// session orchestrator, an offline-queue retry loop, and the HTTP API,
// all supervised by a three-layer suture tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	json "github.com/goccy/go-json"

	"github.com/kerem-isiktasli/logos/internal/api"
	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/config"
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/logging"
	"github.com/kerem-isiktasli/logos/internal/oracle"
	"github.com/kerem-isiktasli/logos/internal/repository"
	"github.com/kerem-isiktasli/logos/internal/session"
	"github.com/kerem-isiktasli/logos/internal/stageaudit"
	"github.com/kerem-isiktasli/logos/internal/supervisor"
	"github.com/kerem-isiktasli/logos/internal/walqueue"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server: fatal")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	db, err := repository.Open(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	auditStore := stageaudit.NewDuckDBStore(db.Conn())
	if err := auditStore.CreateTable(ctx); err != nil {
		return fmt.Errorf("create stage audit table: %w", err)
	}
	auditLog := stageaudit.NewLogger(auditStore, stageaudit.DefaultConfig())

	transport, err := oracle.NewNATSTransport(cfg.Oracle.NATSURL, "logos.oracle.generate")
	if err != nil {
		logging.Warn().Err(err).Msg("server: NATS transport unavailable, oracle falls back to templates")
	}
	oracleCfg := oracle.Config{
		RequestTimeout:        cfg.Oracle.RequestTimeout,
		RateLimitCapacity:     cfg.Oracle.RateLimitCapacity,
		RateLimitRefillPerSec: cfg.Oracle.RateLimitRefillPerSec,
		Breaker:               oracle.DefaultConfig().Breaker,
	}
	oracleClient := oracle.NewClient(transport, oracleCfg)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("build supervisor tree: %w", err)
	}

	manager := session.NewManager(session.DefaultConfig(), db, oracleClient, auditLog, tree)

	queue, err := walqueue.Open(walqueue.DefaultConfig())
	if err != nil {
		return fmt.Errorf("open offline queue: %w", err)
	}
	defer queue.Close()

	retry := walqueue.NewRetryService(queue, walqueue.DefaultConfig(), redeliverFunc(oracleClient), 30*time.Second)
	tree.AddDataService(retry)

	handler := api.NewHandler(manager, db, bottleneck.DefaultConfig(), 500)
	router := api.NewRouter(handler, api.DefaultRouterConfig())
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := api.NewServer(addr, router, cfg.Server.Timeout)
	tree.AddAPIService(httpServer)

	logging.Info().Str("addr", addr).Msg("server: starting")
	return tree.Serve(ctx)
}

// redeliverFunc builds a walqueue.Redeliver that resolves a queued oracle
// request by unmarshaling its payload and resubmitting it to the oracle
// client. Queued items don't carry a stage (they predate the stage that
// originally needed them), so redelivery uses StageUnknown's cue level.
func redeliverFunc(oracleClient *oracle.Client) walqueue.Redeliver {
	return func(ctx context.Context, item domain.OfflineQueueItem) error {
		var req oracle.Request
		if err := json.Unmarshal(item.Request, &req); err != nil {
			return fmt.Errorf("redeliver %s: decode request: %w", item.ID, err)
		}
		result := oracleClient.Generate(ctx, req, domain.StageUnknown)
		if result.UsedFallback {
			return fmt.Errorf("redeliver %s: oracle still unavailable", item.ID)
		}
		return nil
	}
}
