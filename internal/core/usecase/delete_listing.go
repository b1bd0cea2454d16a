package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/port"
)

type DeleteListingUseCase struct {
	client port.MarketClient
	store  port.CatalogStore
}

func NewDeleteListingUseCase(client port.MarketClient, store port.CatalogStore) *DeleteListingUseCase {
	return &DeleteListingUseCase{client: client, store: store}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, token string, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteListingUseCase",
		"id":       id,
	})

	if err := uc.client.DeleteListing(ctx, token, id); err != nil {
		ucLogger.Error("Delete failed", err, nil)
		return err
	}

	if err := uc.store.Reload(ctx); err != nil {
		ucLogger.Warn("Catalog reload after delete failed", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Listing deleted", nil)
	return nil
}
