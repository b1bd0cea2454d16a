package port

import (
	"context"

	"domain-market-web/internal/core/domain"
)

// MarketClient is the outbound port to the listings backend. Read operations
// are anonymous; mutations attach the admin bearer token. Implementations
// must surface backend error messages through *domain.RequestFailedError and
// map a missing slug onto domain.ErrNotFound.
type MarketClient interface {
	FetchListings(ctx context.Context, query domain.ListingQuery) ([]domain.Listing, error)
	FetchListingBySlug(ctx context.Context, slug string) (*domain.Listing, error)

	CreateListing(ctx context.Context, token string, fields domain.ListingFields) (*domain.Listing, error)
	UpdateListing(ctx context.Context, token string, id int64, fields domain.ListingFields) (*domain.Listing, error)
	DeleteListing(ctx context.Context, token string, id int64) error
	RecalculateBRL(ctx context.Context, token string) (*domain.RecalculationResult, error)
}
