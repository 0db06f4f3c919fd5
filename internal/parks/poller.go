package parks

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/magicjourney/backend/internal/domain"
)

// Fetcher is the subset of Client the Poller needs.
type Fetcher interface {
	FetchAttractions(ctx context.Context) ([]domain.RideRecord, error)
	FetchShows(ctx context.Context) ([]domain.ShowRecord, error)
	FetchRestaurants(ctx context.Context) ([]domain.RestaurantRecord, error)
}

// Poller keeps a Catalog fresh by re-fetching every list at a fixed interval.
type Poller struct {
	fetcher  Fetcher
	catalog  *Catalog
	interval time.Duration
	log      *slog.Logger
}

// NewPoller constructs a Poller. A nil logger falls back to slog.Default().
func NewPoller(f Fetcher, c *Catalog, interval time.Duration, log *slog.Logger) *Poller {
	if log == nil {
		log = slog.Default()
	}
	return &Poller{fetcher: f, catalog: c, interval: interval, log: log}
}

// Run refreshes immediately, then every interval until ctx is cancelled.
// Refresh failures are logged; the catalog keeps its last good lists.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("park data poller started", "interval", p.interval.String())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		_ = p.Refresh(ctx)

		select {
		case <-ctx.Done():
			p.log.Info("park data poller stopped")
			return
		case <-ticker.C:
		}
	}
}

// Refresh fetches the three lists concurrently and installs each one that
// succeeds. It returns the combined error of the fetches that failed.
func (p *Poller) Refresh(ctx context.Context) error {
	start := time.Now()
	wp := pool.New().WithErrors()

	wp.Go(func() error {
		seq := p.catalog.NextSeq()
		rides, err := p.fetcher.FetchAttractions(ctx)
		if err != nil {
			p.log.Error("refresh attractions failed", "error", err)
			return err
		}
		p.apply(domain.KindRide, len(rides), p.catalog.ReplaceRides(seq, rides))
		return nil
	})
	wp.Go(func() error {
		seq := p.catalog.NextSeq()
		shows, err := p.fetcher.FetchShows(ctx)
		if err != nil {
			p.log.Error("refresh shows failed", "error", err)
			return err
		}
		p.apply(domain.KindShow, len(shows), p.catalog.ReplaceShows(seq, shows))
		return nil
	})
	wp.Go(func() error {
		seq := p.catalog.NextSeq()
		restaurants, err := p.fetcher.FetchRestaurants(ctx)
		if err != nil {
			p.log.Error("refresh restaurants failed", "error", err)
			return err
		}
		p.apply(domain.KindRestaurant, len(restaurants), p.catalog.ReplaceRestaurants(seq, restaurants))
		return nil
	})

	err := wp.Wait()
	p.log.Debug("park data refresh finished", "duration_ms", time.Since(start).Milliseconds(), "failed", err != nil)
	return err
}

func (p *Poller) apply(kind domain.RecordKind, n int, applied bool) {
	if !applied {
		p.log.Warn("discarding stale park data", "kind", string(kind))
		return
	}
	p.log.Debug("park data updated", "kind", string(kind), "count", n)
}
