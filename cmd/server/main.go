package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"docflow/internal/audit"
	audithandler "docflow/internal/audit/handler"
	auditkafka "docflow/internal/audit/kafka"
	"docflow/internal/directory"
	directoryhandler "docflow/internal/directory/handler"
	"docflow/internal/document"
	documenthandler "docflow/internal/document/handler"
	"docflow/internal/jwttoken"
	"docflow/internal/platform/config"
	"docflow/internal/platform/httpserver"
	"docflow/internal/platform/logger"
	platformredis "docflow/internal/platform/redis"
	httptransport "docflow/internal/transport/http"
	wfmetrics "docflow/internal/workflow/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	metrics := wfmetrics.New()

	// Storage. Postgres when configured, in-memory otherwise so the service
	// runs without infrastructure in development.
	var (
		documentStore  document.Store
		directoryStore directory.Store
		auditStore     audit.Store
	)
	if cfg.PostgresURL != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres pool init failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		documentStore = document.NewPostgresStore(pool)
		directoryStore = directory.NewPostgresStore(pool)
		auditStore = audit.NewPostgresStore(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		documentStore = document.NewInMemoryStore()
		directoryStore = directory.NewInMemoryStore()
		auditStore = audit.NewInMemoryStore()
	}

	// Directory cache.
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		directoryStore = directory.NewCachedStore(directoryStore, redisClient.Client, cfg.Redis.TTL)
	}

	// Audit trail: durable store behind a background worker, optional Kafka
	// fan-out for downstream consumers.
	inbox := make(chan audit.Event, 256)
	worker := audit.NewWorker(auditStore, inbox)
	go func() {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	auditSinks := []audit.Sink{audit.NewChannelSink(inbox)}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Error("kafka publisher init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaPublisher.Close()
		if err := kafkaPublisher.EnsureTopic(ctx, 3, 1); err != nil {
			log.Error("kafka topic bootstrap failed", "error", err)
			os.Exit(1)
		}
		auditSinks = append(auditSinks, kafkaPublisher)
	}

	// Services.
	directoryService := directory.NewService(directoryStore)
	documentService := document.NewService(documentStore, directoryService,
		audit.NewFanOut(auditSinks...), metrics, log)
	documentService.SetDefaultExpectedHours(cfg.DefaultExpectedHours)

	// Auth.
	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	validator := jwttoken.NewJWTServiceAdapter(jwtService)

	router := httptransport.NewRouter(log, validator,
		documenthandler.New(documentService, log),
		directoryhandler.New(directoryService, log),
		audithandler.New(audit.NewPublisher(auditStore), log),
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting docflow", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
