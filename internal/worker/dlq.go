package worker

// Report-refresh jobs that exhaust their retries land in a redis dead-letter
// list instead of being dropped, so an operator can inspect the failure and
// replay the job with LMOVE once the underlying problem (usually postgres
// connectivity during the recompute) is resolved.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQRelatorios = "dlq:" + QueueRelatorios

// DLQEntry is the dead-lettered job plus enough context to diagnose it.
type DLQEntry struct {
	JobType  string          `json:"jobType"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failedAt"`
	Attempts int             `json:"attempts"`
}

func sendToDLQ(ctx context.Context, rdb *redis.Client, job Job, reason string) {
	entry := DLQEntry{
		JobType:  job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		FailedAt: time.Now().UTC(),
		Attempts: job.Attempts,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("job_type", job.Type).Msg("dlq: failed to marshal entry")
		return
	}

	if err := rdb.LPush(ctx, DLQRelatorios, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", DLQRelatorios).Msg("dlq: failed to push entry")
		return
	}

	log.Warn().
		Str("job_type", job.Type).
		Str("reason", reason).
		Int("attempts", job.Attempts).
		Msg("dlq: job dead-lettered")
}

// DLQLength reports how many report-refresh jobs are dead-lettered.
// Surfaced by the /health endpoint: a growing depth means the cache
// recompute keeps failing while reads silently fall back to SQL.
func DLQLength(ctx context.Context, rdb *redis.Client) (int64, error) {
	return rdb.LLen(ctx, DLQRelatorios).Result()
}
