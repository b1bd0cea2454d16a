package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

type ListAllListingsUseCase struct {
	client port.MarketClient
}

func NewListAllListingsUseCase(client port.MarketClient) *ListAllListingsUseCase {
	return &ListAllListingsUseCase{client: client}
}

// Execute returns the full collection for the admin dashboard, inactive and
// sold records included, bypassing the public catalog store.
func (uc *ListAllListingsUseCase) Execute(ctx context.Context) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListAllListingsUseCase",
	})

	listings, err := uc.client.FetchListings(ctx, domain.ListingQuery{})
	if err != nil {
		ucLogger.Error("Failed to fetch full collection", err, nil)
		return nil, err
	}

	ucLogger.Debug("Full collection fetched", port.Fields{"count": len(listings)})
	return listings, nil
}
