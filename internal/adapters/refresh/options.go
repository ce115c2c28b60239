package refresh

import (
	"time"

	"github.com/okian/levelgate/pkg/logger"
)

// Option applies a configuration option to the Refresher.
type Option func(*Refresher)

// WithInterval sets the time between refresh cycles.
func WithInterval(interval time.Duration) Option {
	return func(r *Refresher) {
		if interval > 0 {
			r.interval = interval
		}
	}
}

// WithPages sets how many leading level pages each cycle re-warms.
func WithPages(pages int) Option {
	return func(r *Refresher) {
		if pages >= 0 {
			r.pages = pages
		}
	}
}

// WithWorkers sets the worker pool size for a cycle.
func WithWorkers(workers int) Option {
	return func(r *Refresher) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithLogger sets a custom logger for the refresher.
func WithLogger(l logger.Logger) Option {
	return func(r *Refresher) {
		if l != nil {
			r.logger = l
		}
	}
}
