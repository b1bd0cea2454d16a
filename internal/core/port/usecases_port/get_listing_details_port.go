package usecases_port

import (
	"context"

	"domain-market-web/internal/core/domain"
)

type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.Listing, error)
}
