// Package refresh keeps the decode cache warm. A ticker enqueues refresh
// jobs (the hall of fame plus the first N level pages) and a small worker
// pool drains them, so a slow upstream never blocks the tick loop.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/okian/levelgate/pkg/logger"
	"github.com/okian/levelgate/pkg/metrics"
)

// Default refresher configuration constants.
const (
	defaultInterval = time.Minute
	defaultPages    = 3
	defaultWorkers  = 2
)

// Source re-fetches and re-decodes one upstream document into the cache.
type Source interface {
	RefreshLevelPage(ctx context.Context, page int) error
	RefreshHallOfFame(ctx context.Context) error
}

// job identifies one document to refresh. A negative page means the hall of
// fame.
type job struct {
	page int
}

const hallOfFameJob = -1

// Refresher periodically re-warms the cache from upstream.
type Refresher struct {
	source   Source
	interval time.Duration
	pages    int
	workers  int

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a Refresher with configuration options.
func New(source Source, opts ...Option) *Refresher {
	r := &Refresher{
		source:   source,
		interval: defaultInterval,
		pages:    defaultPages,
		workers:  defaultWorkers,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Named("refresh")
	}
	return r
}

// Start launches the tick loop. It returns immediately; refreshing happens in
// the background until Stop is called or ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	go r.run(ctx)
}

// Stop signals the refresher and waits for in-flight jobs to finish.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	<-r.done
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Warm the cache once at startup instead of waiting a full interval.
	r.cycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.cycle(ctx)
		}
	}
}

// cycle runs one refresh pass: the hall of fame plus the leading level pages,
// spread across the worker pool.
func (r *Refresher) cycle(ctx context.Context) {
	jobs := make(chan job, r.pages+1)
	jobs <- job{page: hallOfFameJob}
	for page := 0; page < r.pages; page++ {
		jobs <- job{page: page}
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case <-ctx.Done():
					return
				case <-r.stopCh:
					return
				default:
				}
				r.refreshOne(ctx, j)
			}
		}()
	}
	wg.Wait()

	metrics.RecordRefreshRun()
	metrics.UpdateRefreshLastUnix(time.Now().Unix())
}

func (r *Refresher) refreshOne(ctx context.Context, j job) {
	var err error
	if j.page == hallOfFameJob {
		err = r.source.RefreshHallOfFame(ctx)
	} else {
		err = r.source.RefreshLevelPage(ctx, j.page)
	}
	if err != nil {
		metrics.RecordRefreshFailure()
		r.logger.Warn(ctx, "refresh job failed",
			logger.Int("page", j.page),
			logger.Error(err),
		)
	}
}
