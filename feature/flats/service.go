package flats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flat-monitor/core/logger"
	"flat-monitor/core/metrics"
	"flat-monitor/core/reconcile"
	"flat-monitor/feature/flats/models"
	flatreconcile "flat-monitor/feature/flats/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run results recorded in metrics.
const (
	resultOK           = "ok"
	resultFetchError   = "fetch_error"
	resultStorageError = "storage_error"
)

// Fetcher obtains the current listings of the complex.
type Fetcher interface {
	FetchFlats(ctx context.Context) ([]models.Flat, error)
}

// Archiver keeps fetched snapshots for later replay.
type Archiver interface {
	Save(ctx context.Context, flats []models.Flat) (string, error)
	Prune(ctx context.Context, keep int) (int, error)
}

// Result is the outcome of one reconciliation pass.
type Result struct {
	RunID    string                       `json:"run_id"`
	DryRun   bool                         `json:"dry_run"`
	Skipped  int                          `json:"skipped"`
	Plan     *reconcile.Plan[models.Flat] `json:"-"`
	Changes  reconcile.PlanSummary        `json:"changes"`
	Summary  Summary                      `json:"summary"`
	Top      []CategoryTop                `json:"top"`
	Snapshot string                       `json:"snapshot,omitempty"`
	Report   string                       `json:"report"`
}

// Service is the reconciliation engine of the flats feature. At most one pass
// runs at a time. Read-only queries are not serialized with passes.
type Service struct {
	repo    *Repository
	fetcher Fetcher
	archive Archiver
	metrics *metrics.Metrics
	logger  *zap.Logger
	cfg     Config
	spec    reconcile.Spec[models.Flat]
	cache   *StatsCache

	// running is a single-slot semaphore held for the duration of a pass.
	running chan struct{}
}

// Option configures optional collaborators of a Service.
type Option func(*Service)

// WithArchive archives every fetched snapshot.
func WithArchive(a Archiver) Option {
	return func(s *Service) { s.archive = a }
}

// WithMetrics records pass outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates the engine. fetcher may be nil when only given sets are reconciled.
func NewService(repo *Repository, fetcher Fetcher, cfg Config, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		fetcher: fetcher,
		logger:  logger,
		cfg:     cfg,
		spec: reconcile.Spec[models.Flat]{
			Adapter: flatreconcile.NewAdapter(),
			Store:   repo,
		},
		cache:   NewStatsCache(time.Duration(cfg.StatsCacheSeconds) * time.Second),
		running: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateFromSource fetches the current listings, keeps the monitored categories
// and reconciles the store with them. A failed fetch leaves the store untouched.
func (s *Service) UpdateFromSource(ctx context.Context) (string, error) {
	res, err := s.RefreshFromSource(ctx)
	if err != nil {
		return "", err
	}
	return res.Report, nil
}

// UpdateFromGivenSet reconciles the store with a snapshot supplied by the caller.
func (s *Service) UpdateFromGivenSet(ctx context.Context, flats []models.Flat) (string, error) {
	res, err := s.Reconcile(ctx, flats, reconcile.Options{})
	if err != nil {
		return "", err
	}
	return res.Report, nil
}

// RefreshFromSource is UpdateFromSource returning the full result.
func (s *Service) RefreshFromSource(ctx context.Context) (*Result, error) {
	if s.fetcher == nil {
		return nil, errors.New("no listing source configured")
	}
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	runID := uuid.NewString()
	log := logger.WithRunID(s.logger, runID)
	started := time.Now()

	flats, err := s.fetcher.FetchFlats(ctx)
	if err != nil {
		s.metrics.ObserveRun(resultFetchError, started)
		log.Error("Fetching listings failed", zap.Error(err))
		return nil, err
	}

	snapshot := s.archiveSnapshot(ctx, log, flats)

	res, err := s.run(ctx, log, runID, started, flats, reconcile.Options{})
	if err != nil {
		return nil, err
	}
	res.Snapshot = snapshot
	return res, nil
}

// Reconcile runs one pass over a given snapshot. With opts.DryRun the report is
// computed but the store is not written.
func (s *Service) Reconcile(ctx context.Context, flats []models.Flat, opts reconcile.Options) (*Result, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.release()

	runID := uuid.NewString()
	return s.run(ctx, logger.WithRunID(s.logger, runID), runID, time.Now(), flats, opts)
}

func (s *Service) acquire(ctx context.Context) error {
	select {
	case s.running <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for the running pass: %w", ctx.Err())
	}
}

func (s *Service) release() {
	<-s.running
}

// run is one pass. The caller holds the semaphore.
func (s *Service) run(ctx context.Context, log *zap.Logger, runID string, started time.Time, flats []models.Flat, opts reconcile.Options) (*Result, error) {
	valid, skipped := s.validate(log, flats)
	monitored := models.FilterMonitored(valid)

	plan, err := reconcile.Reconcile(ctx, s.spec, monitored, opts)
	if err != nil {
		s.metrics.ObserveRun(resultStorageError, started)
		log.Error("Reconciliation failed", zap.Error(err))
		return nil, err
	}
	if !opts.DryRun {
		s.cache.Invalidate()
	}

	top := s.cfg.topLimit()
	res := &Result{
		RunID:   runID,
		DryRun:  opts.DryRun,
		Skipped: skipped,
		Plan:    plan,
		Changes: plan.Summary,
		Summary: Summarize(plan.Snapshot, top),
		Top:     TopFree(plan.Snapshot, top),
	}
	res.Report = RenderReport(ReportData{
		Complex:  s.cfg.ComplexName,
		Plan:     plan,
		Summary:  res.Summary,
		Top:      res.Top,
		TopLimit: top,
	})

	s.metrics.ObserveRun(resultOK, started)
	s.metrics.ObserveChanges(plan.Summary.Added, plan.Summary.Removed, plan.Summary.Edited)
	s.metrics.SetTracked(string(models.CategoryStudio), res.Summary.Studios)
	s.metrics.SetTracked(string(models.CategoryOneRoom), res.Summary.OneRoom)

	log.Info("Reconciliation finished",
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("received", len(flats)),
		zap.Int("skipped", skipped),
		zap.Int("monitored", plan.Summary.Total),
		zap.Int("added", plan.Summary.Added),
		zap.Int("removed", plan.Summary.Removed),
		zap.Int("edited", plan.Summary.Edited),
		zap.Int("duplicates", plan.Summary.Duplicates),
		zap.Duration("duration", time.Since(started)),
	)
	return res, nil
}

// validate drops records that cannot be tracked and logs each one.
func (s *Service) validate(log *zap.Logger, flats []models.Flat) ([]models.Flat, int) {
	valid := make([]models.Flat, 0, len(flats))
	for i, f := range flats {
		if err := f.Validate(); err != nil {
			log.Warn("Skipping invalid flat", zap.Int("index", i), zap.Error(err))
			continue
		}
		valid = append(valid, f)
	}
	return valid, len(flats) - len(valid)
}

// archiveSnapshot saves the fetched snapshot when an archive is configured.
// Archive failures never fail the pass.
func (s *Service) archiveSnapshot(ctx context.Context, log *zap.Logger, flats []models.Flat) string {
	if s.archive == nil {
		return ""
	}
	name, err := s.archive.Save(ctx, flats)
	if err != nil {
		log.Warn("Archiving snapshot failed", zap.Error(err))
		return ""
	}
	if s.cfg.ArchiveKeep > 0 {
		if n, err := s.archive.Prune(ctx, s.cfg.ArchiveKeep); err != nil {
			log.Warn("Pruning archived snapshots failed", zap.Error(err))
		} else if n > 0 {
			log.Debug("Pruned archived snapshots", zap.Int("removed", n))
		}
	}
	return name
}

// StatsText renders the statistics-only report from the current store.
func (s *Service) StatsText(ctx context.Context, withLinks bool) (string, error) {
	key := "plain"
	if withLinks {
		key = "links"
	}
	return s.cache.Get(ctx, key, func(ctx context.Context) (string, error) {
		stats, err := s.Stats(ctx)
		if err != nil {
			return "", err
		}
		return RenderStats(s.cfg.ComplexName, stats, withLinks), nil
	})
}

// Stats returns the availability of every monitored category.
func (s *Service) Stats(ctx context.Context) ([]CategoryStats, error) {
	stats := make([]CategoryStats, 0, len(models.MonitoredCategories))
	for _, c := range models.MonitoredCategories {
		free, other, err := s.repo.CountByStatus(ctx, c.Tokens())
		if err != nil {
			return nil, err
		}
		cheapest, err := s.repo.SelectCheapestFree(ctx, c.Tokens(), s.cfg.topLimit())
		if err != nil {
			return nil, err
		}
		stats = append(stats, CategoryStats{Category: c, Free: free, Reserved: other, Cheapest: cheapest})
	}
	return stats, nil
}

// Cheapest returns up to limit flats of a monitored category by ascending price,
// whatever their status. limit <= 0 uses the configured default.
func (s *Service) Cheapest(ctx context.Context, c models.Category, limit int) ([]models.Flat, error) {
	if !c.IsMonitored() {
		return nil, fmt.Errorf("%w: category %q is not monitored", ErrValidation, c)
	}
	if limit <= 0 {
		limit = s.cfg.cheapestLimit()
	}
	return s.repo.SelectCheapest(ctx, c.Tokens(), limit)
}

// Snapshot returns the stored state ordered by id.
func (s *Service) Snapshot(ctx context.Context) ([]models.Flat, error) {
	return s.repo.GetAll(ctx)
}

// StoreSummary computes the snapshot summary from the store instead of from a pass.
func (s *Service) StoreSummary(ctx context.Context) (Summary, error) {
	studios, err := s.repo.CountByCategories(ctx, models.CategoryStudio.Tokens())
	if err != nil {
		return Summary{}, err
	}
	ones, err := s.repo.CountByCategories(ctx, models.CategoryOneRoom.Tokens())
	if err != nil {
		return Summary{}, err
	}
	prices, err := s.repo.MinPrices(ctx, models.MonitoredTokens(), s.cfg.topLimit())
	if err != nil {
		return Summary{}, err
	}
	return Summary{Studios: int(studios), OneRoom: int(ones), Cheapest: prices}, nil
}
