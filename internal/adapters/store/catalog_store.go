package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

// CatalogStore caches the public collection (backend query isSold=false)
// together with the views derived from it. Derived state is recomputed as a
// whole on every reload; nothing is patched in place.
//
// Reloads carry a monotonic sequence number. A response that comes back
// after a newer reload was issued is discarded, so two quick reloads can
// resolve out of order without the stale one overwriting the fresh one.
type CatalogStore struct {
	client port.MarketClient

	mu       sync.RWMutex
	issued   uint64
	snapshot domain.CatalogSnapshot
	loaded   bool
}

// ErrReloadSuperseded is returned when a reload response was discarded in
// favor of a newer reload, but no snapshot has been committed yet. Without
// it a first-use load racing a failed newer reload would report success
// over an empty cache.
var ErrReloadSuperseded = errors.New("catalog reload superseded with no snapshot committed")

func NewCatalogStore(client port.MarketClient) *CatalogStore {
	return &CatalogStore{client: client}
}

// Snapshot returns the cached catalog state, loading it on first use.
func (s *CatalogStore) Snapshot(ctx context.Context) (domain.CatalogSnapshot, error) {
	s.mu.RLock()
	if s.loaded {
		snapshot := s.snapshot
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	if err := s.Reload(ctx); err != nil {
		return domain.CatalogSnapshot{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// Reload fetches the public collection and rebuilds the derived views. When
// the response turns out to be stale (a newer reload was issued while this
// one was in flight) it is dropped silently: the fresher reload owns the
// cache.
func (s *CatalogStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	isSold := false
	listings, err := s.client.FetchListings(ctx, domain.ListingQuery{IsSold: &isSold})
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}

	active := domain.ActiveListings(listings)
	snapshot := domain.CatalogSnapshot{
		Listings:   active,
		Featured:   domain.FeaturedListings(active),
		Cities:     domain.DistinctCities(active),
		Categories: domain.DistinctCategories(active),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issued {
		contextkeys.LoggerFromContext(ctx).Debug("Discarding stale catalog response", port.Fields{
			"sequence": seq,
			"latest":   s.issued,
		})
		if !s.loaded {
			// The winning reload has not committed anything (it may have
			// failed); success here would hand out a zero-value snapshot.
			return ErrReloadSuperseded
		}
		return nil
	}

	s.snapshot = snapshot
	s.loaded = true
	return nil
}
