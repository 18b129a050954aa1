package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/api/metrics"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// Janitor removes uploaded images of deleted records in the background.
// Paths are sharded over a fixed set of workers by hash.
type Janitor struct {
	workers []chan string
	store   ports.ImageStore
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewJanitor creates a Janitor with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewJanitor(numWorkers int, store ports.ImageStore, log zerolog.Logger) *Janitor {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	j := &Janitor{
		workers: make([]chan string, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range j.workers {
		j.workers[i] = make(chan string, channelBuffer)
	}
	return j
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	for i, ch := range j.workers {
		j.wg.Add(1)
		go j.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (j *Janitor) Wait() {
	j.wg.Wait()
}

// Release queues path for removal. It never blocks: when the worker's
// buffer is full the path is dropped and logged.
func (j *Janitor) Release(path string) {
	if path == "" {
		return
	}
	idx := j.shardIndex(path)
	// Counted before the send so the worker's Dec never runs first.
	depth := metrics.JanitorQueueDepth.WithLabelValues(strconv.Itoa(idx))
	depth.Inc()
	select {
	case j.workers[idx] <- path:
	default:
		depth.Dec()
		metrics.ImagesReleasedTotal.WithLabelValues("dropped").Inc()
		j.log.Warn().Str("path", path).Int("worker_id", idx).Msg("janitor queue full, image left on disk")
	}
}

func (j *Janitor) shardIndex(path string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(path))
	return int(h.Sum32() % uint32(len(j.workers)))
}

func (j *Janitor) runWorker(ctx context.Context, id int, ch <-chan string) {
	defer j.wg.Done()
	depth := metrics.JanitorQueueDepth.WithLabelValues(strconv.Itoa(id))

	for {
		select {
		case <-ctx.Done():
			return
		case path := <-ch:
			depth.Dec()
			if err := j.store.Remove(ctx, path); err != nil {
				metrics.ImagesReleasedTotal.WithLabelValues("failed").Inc()
				j.log.Error().Err(err).
					Str("path", path).
					Int("worker_id", id).
					Msg("image removal failed")
				continue
			}
			metrics.ImagesReleasedTotal.WithLabelValues("removed").Inc()
		}
	}
}
