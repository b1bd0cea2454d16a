package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

type GetListingDetailsUseCase struct {
	client port.MarketClient
}

func NewGetListingDetailsUseCase(client port.MarketClient) *GetListingDetailsUseCase {
	return &GetListingDetailsUseCase{client: client}
}

// Execute fetches one listing by slug straight from the backend. The detail
// page does not go through the catalog store: a stale cache must not hide a
// listing that was just created. A missing slug surfaces as
// domain.ErrNotFound.
func (uc *GetListingDetailsUseCase) Execute(ctx context.Context, slug string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetListingDetailsUseCase",
		"slug":     slug,
	})

	listing, err := uc.client.FetchListingBySlug(ctx, slug)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Listing details fetched", port.Fields{"id": listing.ID})
	return listing, nil
}
