package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueRelatorios = "jobs:relatorios"

const maxAttempts = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAtualizarRelatorios pushes a report-cache refresh job. Called after
// every committed consumption registration so dashboard reads stay warm.
func (d *Dispatcher) EnqueueAtualizarRelatorios(ctx context.Context) error {
	return d.enqueue(ctx, QueueRelatorios, "atualizar_relatorios", nil)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// RelatorioCache is the slice of RelatorioService the workers need.
// Declared here so the worker package does not depend on internal/service.
type RelatorioCache interface {
	AtualizarCache(ctx context.Context) error
}

// StartWorkerPool launches numWorkers goroutines consuming the report queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, cache RelatorioCache, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, cache, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, cache RelatorioCache, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueRelatorios).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, cache, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, cache RelatorioCache, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	switch job.Type {
	case "atualizar_relatorios":
		if err := cache.AtualizarCache(ctx); err != nil {
			job.Attempts++
			if job.Attempts >= maxAttempts {
				sendToDLQ(ctx, rdb, job, err.Error())
				return
			}
			// Requeue for another attempt — reads fall back to SQL meanwhile.
			if encoded, mErr := json.Marshal(job); mErr == nil {
				_ = rdb.LPush(ctx, queue, encoded).Err()
			}
			log.Warn().Err(err).Int("attempts", job.Attempts).Msg("report cache refresh failed, requeued")
			return
		}
		log.Info().Msg("report cache refreshed")
	default:
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type discarded")
	}
}
