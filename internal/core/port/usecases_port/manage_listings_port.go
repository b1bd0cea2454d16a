package usecases_port

import (
	"context"

	"domain-market-web/internal/core/domain"
)

// Admin-side use cases. Every mutation returns only after the catalog store
// has been reloaded, so the next public read reflects the change.

type ListAllListingsUseCase interface {
	Execute(ctx context.Context) ([]domain.Listing, error)
}

type CreateListingUseCase interface {
	Execute(ctx context.Context, token string, fields domain.ListingFields) (*domain.Listing, error)
}

type UpdateListingUseCase interface {
	Execute(ctx context.Context, token string, id int64, fields domain.ListingFields) (*domain.Listing, error)
}

type DeleteListingUseCase interface {
	Execute(ctx context.Context, token string, id int64) error
}

type RecalculateBRLUseCase interface {
	Execute(ctx context.Context, token string) (*domain.RecalculationResult, error)
}
