// Package queue fans loan activity into the recent-activity feed without
// blocking the lifecycle engine. The feed is informational; losing entries
// on shutdown is harmless because the catalog and ledger stay authoritative.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/libraryhub/catalog-api/internal/api/metrics"
	"github.com/libraryhub/catalog-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Feed receives processed activity entries.
type Feed interface {
	Append(activity domain.LoanActivity)
}

// Dispatcher routes activity to a fixed set of workers using consistent
// hashing on the book id, preserving per-book ordering in the feed.
type Dispatcher struct {
	workers []chan domain.LoanActivity
	feed    Feed
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, feed Feed, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.LoanActivity, numWorkers),
		feed:    feed,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LoanActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an activity entry to the worker responsible for its book.
// Implements service.ActivityRecorder. Delivery is best-effort: a full worker
// queue (including after the workers have stopped) drops the entry rather
// than blocking the lifecycle engine.
func (d *Dispatcher) Record(activity domain.LoanActivity) {
	idx := d.shardIndex(activity.BookID)
	select {
	case d.workers[idx] <- activity:
		metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().
			Str("record_id", activity.RecordID).
			Int("worker_id", idx).
			Msg("activity dropped, worker queue full")
	}
}

// shardIndex maps a book id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bookID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bookID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.LoanActivity) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			d.feed.Append(activity)
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			d.log.Debug().
				Str("record_id", activity.RecordID).
				Str("action", string(activity.Action)).
				Int("worker_id", id).
				Msg("activity recorded")
		}
	}
}
