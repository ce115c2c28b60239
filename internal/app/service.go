// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okian/levelgate/internal/adapters/refresh"
	repository "github.com/okian/levelgate/internal/adapters/repository"
	"github.com/okian/levelgate/internal/domain/hof"
	"github.com/okian/levelgate/internal/domain/levels"
	"github.com/okian/levelgate/internal/domain/types"
	"github.com/okian/levelgate/pkg/logger"
	"github.com/okian/levelgate/pkg/metrics"
)

// Decode duration metric labels.
const (
	formatLevels     = "levels"
	formatHallOfFame = "halloffame"
)

// Sentinel errors for service lifecycle misuse.
var (
	ErrNotStarted = errors.New("service not started")
	ErrNoFetcher  = errors.New("no fetcher configured")
)

// Fetcher retrieves raw wire payloads from the upstream.
type Fetcher interface {
	LevelPage(ctx context.Context, page int) (string, error)
	HallOfFame(ctx context.Context) (string, error)
}

// Service implements the API dependencies for the decoding gateway. It
// fetches raw payloads, decodes them, and caches the decoded documents.
type Service struct {
	mu sync.RWMutex

	// Core components
	fetcher   Fetcher
	store     repository.Store
	refresher *refresh.Refresher

	// Configuration
	cacheTTL        time.Duration
	refreshInterval time.Duration
	refreshPages    int
	refreshWorkers  int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the upstream fetcher. Required before Start.
func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithStore sets a custom cache store. Defaults to an in-memory TTL store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCacheTTL sets how long decoded documents stay fresh.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithRefreshInterval enables the background refresher at the given
// interval. Zero leaves it disabled.
func WithRefreshInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval >= 0 {
			s.refreshInterval = interval
		}
	}
}

// WithRefreshPages sets how many leading level pages each refresh cycle
// re-warms.
func WithRefreshPages(pages int) Option {
	return func(s *Service) {
		if pages >= 0 {
			s.refreshPages = pages
		}
	}
}

// WithRefreshWorkers sets the refresher worker pool size.
func WithRefreshWorkers(workers int) Option {
	return func(s *Service) {
		if workers > 0 {
			s.refreshWorkers = workers
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cacheTTL:        time.Minute,
		refreshInterval: 0, // Disabled unless configured
		refreshPages:    3,
		refreshWorkers:  2,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.fetcher == nil {
		return ErrNoFetcher
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting levelgate service...")

	if s.store == nil {
		s.store = repository.NewMemoryStore(
			repository.WithTTL(s.cacheTTL),
		)
	}

	if s.refreshInterval > 0 {
		s.refresher = refresh.New(s,
			refresh.WithInterval(s.refreshInterval),
			refresh.WithPages(s.refreshPages),
			refresh.WithWorkers(s.refreshWorkers),
			refresh.WithLogger(s.logger.Named("refresh")),
		)
		s.refresher.Start(ctx)
	}

	s.started = true
	s.logger.Info(ctx, "levelgate service started",
		logger.Any("cacheTTL", s.cacheTTL),
		logger.Any("refreshInterval", s.refreshInterval),
		logger.Int("refreshPages", s.refreshPages),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping levelgate service...")

	if s.refresher != nil {
		s.refresher.Stop()
	}

	s.started = false
	s.logger.Info(context.Background(), "levelgate service stopped")
}

// Levels returns the decoded level listing for one page, serving from the
// cache when fresh.
func (s *Service) Levels(ctx context.Context, page int) (types.LevelList, error) {
	if !s.isStarted() {
		return types.LevelList{}, ErrNotStarted
	}

	if list, ok := s.store.LevelPage(ctx, page); ok {
		metrics.RecordCacheHit()
		return list, nil
	}
	metrics.RecordCacheMiss()

	list, err := s.fetchLevelPage(ctx, page)
	if err != nil {
		return types.LevelList{}, err
	}
	return list, nil
}

// HallOfFame returns the decoded and ranked hall of fame, serving from the
// cache when fresh.
func (s *Service) HallOfFame(ctx context.Context) ([]types.HofRow, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}

	if rows, ok := s.store.HallOfFame(ctx); ok {
		metrics.RecordCacheHit()
		return rows, nil
	}
	metrics.RecordCacheMiss()

	rows, err := s.fetchHallOfFame(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DecodeLevels decodes a caller-supplied level-listing payload. It never
// touches the upstream or the cache.
func (s *Service) DecodeLevels(raw string) types.LevelList {
	start := time.Now()
	list := levels.Decode(raw)
	metrics.RecordDecodeDuration(formatLevels, float64(time.Since(start).Milliseconds()))
	metrics.RecordLevelEntriesDecoded(len(list.Entries))
	return list
}

// DecodeHallOfFame decodes a caller-supplied hall-of-fame payload. It never
// touches the upstream or the cache.
func (s *Service) DecodeHallOfFame(raw string) []types.HofRow {
	start := time.Now()
	rows := hof.Decode(raw)
	metrics.RecordDecodeDuration(formatHallOfFame, float64(time.Since(start).Milliseconds()))
	metrics.RecordHofRowsDecoded(len(rows))
	return rows
}

// RefreshLevelPage re-fetches and re-decodes one level page into the cache,
// bypassing freshness checks. Used by the background refresher.
func (s *Service) RefreshLevelPage(ctx context.Context, page int) error {
	_, err := s.fetchLevelPage(ctx, page)
	return err
}

// RefreshHallOfFame re-fetches and re-decodes the hall of fame into the
// cache, bypassing freshness checks. Used by the background refresher.
func (s *Service) RefreshHallOfFame(ctx context.Context) error {
	_, err := s.fetchHallOfFame(ctx)
	return err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":                  s.started,
		"cache_ttl_seconds":        s.cacheTTL.Seconds(),
		"refresh_interval_seconds": s.refreshInterval.Seconds(),
		"refresh_pages":            s.refreshPages,
		"refresh_workers":          s.refreshWorkers,
	}

	if s.started {
		cachedPages := s.store.Count(ctx)
		stats["cached_pages"] = cachedPages
		metrics.UpdateCachedPages(cachedPages)
	}

	return stats
}

func (s *Service) fetchLevelPage(ctx context.Context, page int) (types.LevelList, error) {
	raw, err := s.fetcher.LevelPage(ctx, page)
	if err != nil {
		s.logger.Warn(ctx, "level page fetch failed",
			logger.Int("page", page),
			logger.Error(err),
		)
		return types.LevelList{}, err
	}

	list := s.DecodeLevels(raw)
	s.store.PutLevelPage(ctx, page, list)
	metrics.UpdateCachedPages(s.store.Count(ctx))
	return list, nil
}

func (s *Service) fetchHallOfFame(ctx context.Context) ([]types.HofRow, error) {
	raw, err := s.fetcher.HallOfFame(ctx)
	if err != nil {
		s.logger.Warn(ctx, "hall of fame fetch failed", logger.Error(err))
		return nil, err
	}

	rows := s.DecodeHallOfFame(raw)
	s.store.PutHallOfFame(ctx, rows)
	return rows, nil
}

func (s *Service) isStarted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.started
}
