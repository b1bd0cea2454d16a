package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

type UpdateListingUseCase struct {
	client port.MarketClient
	store  port.CatalogStore
}

func NewUpdateListingUseCase(client port.MarketClient, store port.CatalogStore) *UpdateListingUseCase {
	return &UpdateListingUseCase{client: client, store: store}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, token string, id int64, fields domain.ListingFields) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateListingUseCase",
		"id":       id,
	})

	updated, err := uc.client.UpdateListing(ctx, token, id, fields)
	if err != nil {
		ucLogger.Error("Update failed", err, nil)
		return nil, err
	}

	if err := uc.store.Reload(ctx); err != nil {
		ucLogger.Warn("Catalog reload after update failed", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Listing updated", nil)
	return updated, nil
}
