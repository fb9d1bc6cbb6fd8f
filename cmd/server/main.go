package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petlovers/internal/config"
	"petlovers/internal/infra"
	"petlovers/internal/repository"
	"petlovers/internal/router"
	"petlovers/internal/service"
	"petlovers/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Prices and totals are plain JSON numbers on the wire — the SPA does
	// arithmetic on them.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Worker pool keeps the report cache warm after every consumption
	// registration. Wired here (composition root) with its own service
	// instance so the pool owns its full dependency chain.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := worker.NewDispatcher(rdb)
	relatorioSvc := service.NewRelatorioService(
		repository.NewRelatorioRepository(db),
		repository.NewClienteRepository(db),
		repository.NewProdutoRepository(db),
		repository.NewServicoRepository(db),
		rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)
	worker.StartWorkerPool(ctx, rdb, relatorioSvc, cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("PetLovers backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
