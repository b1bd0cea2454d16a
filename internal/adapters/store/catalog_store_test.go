package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"domain-market-web/internal/core/domain"
)

// stubClient serves canned collections, one per FetchListings call, and lets
// a test hold a response until a later reload has been issued.
type stubClient struct {
	mu        sync.Mutex
	responses [][]domain.Listing
	errs      []error
	calls     int
	release   []chan struct{}
}

func (c *stubClient) FetchListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error) {
	c.mu.Lock()
	i := c.calls
	c.calls++
	c.mu.Unlock()

	if i < len(c.release) && c.release[i] != nil {
		<-c.release[i]
	}
	if i < len(c.errs) && c.errs[i] != nil {
		return nil, c.errs[i]
	}
	return c.responses[i], nil
}

func (c *stubClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *stubClient) FetchListingBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	return nil, domain.ErrNotFound
}

func (c *stubClient) CreateListing(ctx context.Context, token string, fields domain.ListingFields) (*domain.Listing, error) {
	return nil, errors.New("not implemented")
}

func (c *stubClient) UpdateListing(ctx context.Context, token string, id int64, fields domain.ListingFields) (*domain.Listing, error) {
	return nil, errors.New("not implemented")
}

func (c *stubClient) DeleteListing(ctx context.Context, token string, id int64) error {
	return errors.New("not implemented")
}

func (c *stubClient) RecalculateBRL(ctx context.Context, token string) (*domain.RecalculationResult, error) {
	return nil, errors.New("not implemented")
}

func TestSnapshotDerivesViews(t *testing.T) {
	client := &stubClient{responses: [][]domain.Listing{{
		{ID: 1, DomainName: "a.com", City: "Rio", Category: "travel", Active: true, IsFeatured: true},
		{ID: 2, DomainName: "b.com", City: "Rio", Category: "tech", Active: true},
		{ID: 3, DomainName: "c.com", City: "Recife", Active: false, IsFeatured: true},
	}}}
	s := NewCatalogStore(client)

	snapshot, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}

	if len(snapshot.Listings) != 2 {
		t.Fatalf("\nwanted:\n2 active listings\ngot:\n%d", len(snapshot.Listings))
	}
	if len(snapshot.Featured) != 1 || snapshot.Featured[0].ID != 1 {
		t.Fatalf("\nwanted:\nfeatured [1]\ngot:\n%+v", snapshot.Featured)
	}
	if len(snapshot.Cities) != 1 || snapshot.Cities[0] != "Rio" {
		t.Fatalf("\nwanted:\ncities [Rio]\ngot:\n%v", snapshot.Cities)
	}
	if len(snapshot.Categories) != 2 {
		t.Fatalf("\nwanted:\n2 categories\ngot:\n%v", snapshot.Categories)
	}

	// Second snapshot serves the cache, no extra fetch.
	if _, err := s.Snapshot(context.Background()); err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}
	if got := client.callCount(); got != 1 {
		t.Fatalf("\nwanted:\n1 fetch\ngot:\n%d", got)
	}
}

func TestReloadDiscardsStaleResponse(t *testing.T) {
	hold := make(chan struct{})
	client := &stubClient{
		responses: [][]domain.Listing{
			{{ID: 1, DomainName: "stale.com", Active: true}},
			{{ID: 2, DomainName: "fresh.com", Active: true}},
		},
		release: []chan struct{}{hold, nil},
	}
	s := NewCatalogStore(client)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.Reload(context.Background())
	}()

	// Let the first reload issue its sequence number before racing it.
	for {
		s.mu.RLock()
		issued := s.issued
		s.mu.RUnlock()
		if issued >= 1 && client.callCount() >= 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// The second reload is issued later but completes first.
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}

	// Now let the first (stale) response land.
	close(hold)
	if err := <-firstDone; err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}

	snapshot, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
	}
	if len(snapshot.Listings) != 1 || snapshot.Listings[0].DomainName != "fresh.com" {
		t.Fatalf("\nwanted:\nfresh.com to win\ngot:\n%+v", snapshot.Listings)
	}
}

func TestDiscardedReloadWithNoCommitReturnsError(t *testing.T) {
	hold := make(chan struct{})
	client := &stubClient{
		responses: [][]domain.Listing{
			{{ID: 1, DomainName: "stale.com", Active: true}},
		},
		errs:    []error{nil, errors.New("backend down")},
		release: []chan struct{}{hold, nil},
	}
	s := NewCatalogStore(client)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.Reload(context.Background())
	}()

	for {
		s.mu.RLock()
		issued := s.issued
		s.mu.RUnlock()
		if issued >= 1 && client.callCount() >= 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// The newer reload fails, so nothing ever commits.
	if err := s.Reload(context.Background()); err == nil {
		t.Fatalf("\nwanted:\nfetch error\ngot:\nnil")
	}

	// The discarded first reload must not report success over an empty
	// cache.
	close(hold)
	if err := <-firstDone; !errors.Is(err, ErrReloadSuperseded) {
		t.Fatalf("\nwanted:\nErrReloadSuperseded\ngot:\n%v", err)
	}
}

func TestReloadSurfacesFetchError(t *testing.T) {
	client := &stubClient{
		responses: [][]domain.Listing{nil},
		errs:      []error{errors.New("backend down")},
	}
	s := NewCatalogStore(client)

	if err := s.Reload(context.Background()); err == nil {
		t.Fatalf("\nwanted:\nerror\ngot:\nnil")
	}
}
