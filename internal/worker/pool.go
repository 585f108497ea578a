package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/realtime"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueStockAlerts = "jobs:stock_alerts"

const maxJobAttempts = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Dispatcher enqueues async jobs into Redis lists; the worker pool dequeues
// them via BRPOP. A nil Redis client disables dispatch (single-process and
// test deployments), which is safe because stock alerts are advisory.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

// EnqueueStockCheck schedules a low-stock re-check for the given products,
// typically right after a sale decremented them.
func (d *Dispatcher) EnqueueStockCheck(ctx context.Context, productIDs []string) error {
	if d == nil || d.rdb == nil {
		return nil
	}
	return d.enqueue(ctx, QueueStockAlerts, "stock_check", StockCheckPayload{ProductIDs: productIDs})
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: jobType, Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the job queues with a fixed number of goroutines.
type Pool struct {
	rdb      *redis.Client
	products repository.ProductRepository
	hub      *realtime.Hub
}

func NewPool(rdb *redis.Client, products repository.ProductRepository, hub *realtime.Hub) *Pool {
	return &Pool{rdb: rdb, products: products, hub: hub}
}

// Start launches numWorkers goroutines. Each blocks on BRPOP — zero CPU when
// idle. No-op without a Redis client.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	if p.rdb == nil {
		log.Info().Msg("worker pool disabled: no redis")
		return
	}
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, QueueStockAlerts).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		SendToDLQ(ctx, p.rdb, queue, "unknown", json.RawMessage(raw), "unmarshal: "+err.Error(), 0)
		return
	}

	var err error
	switch job.Type {
	case "stock_check":
		err = p.handleStockCheck(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type")
		return
	}
	if err == nil {
		return
	}

	job.Attempts++
	if job.Attempts >= maxJobAttempts {
		SendToDLQ(ctx, p.rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}
	log.Warn().Str("type", job.Type).Int("attempts", job.Attempts).Err(err).Msg("job failed, requeueing")
	if encoded, mErr := json.Marshal(job); mErr == nil {
		_ = p.rdb.LPush(ctx, queue, encoded).Err()
	}
}
