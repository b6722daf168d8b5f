package worker

// Jobs that exhaust their retries land on a per-queue dead letter list
// (dlq:{queue}) where an operator can inspect or re-drive them.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DLQEntry preserves the failed job plus enough context to diagnose it.
type DLQEntry struct {
	OriginalQueue string          `json:"original_queue"`
	JobType       string          `json:"job_type"`
	Payload       json.RawMessage `json:"payload"`
	Reason        string          `json:"reason"`
	FailedAt      time.Time       `json:"failed_at"`
	Attempts      int             `json:"attempts"`
}

func sendToDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, cause error) {
	entry := DLQEntry{
		OriginalQueue: queue,
		JobType:       job.Type,
		Payload:       job.Payload,
		Reason:        cause.Error(),
		FailedAt:      time.Now().UTC(),
		Attempts:      job.Attempts,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: no se pudo serializar la entrada")
		return
	}
	if err := rdb.LPush(ctx, DLQPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: no se pudo encolar la entrada")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("job_type", job.Type).
		Str("reason", entry.Reason).
		Int("attempts", job.Attempts).
		Msg("dlq: job agotado movido a dead letter")
}

// DLQLength exposes the DLQ depth for monitoring.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}

// RequeueDLQ pops one entry off the DLQ and pushes the original job back to
// its source queue with the attempt counter reset. Returns redis.Nil when
// the DLQ is empty.
func RequeueDLQ(ctx context.Context, rdb *redis.Client, queue string) error {
	raw, err := rdb.RPop(ctx, DLQPrefix+queue).Result()
	if err != nil {
		return err
	}
	var entry DLQEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return err
	}
	job := Job{Type: entry.JobType, Payload: entry.Payload}
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, entry.OriginalQueue, data).Err()
}
