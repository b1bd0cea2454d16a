package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

type CreateListingUseCase struct {
	client port.MarketClient
	store  port.CatalogStore
}

func NewCreateListingUseCase(client port.MarketClient, store port.CatalogStore) *CreateListingUseCase {
	return &CreateListingUseCase{client: client, store: store}
}

// Execute creates a listing on the backend and then forces a full catalog
// reload. There is no optimistic local insert: the store is only ever
// rebuilt from what the backend returns.
func (uc *CreateListingUseCase) Execute(ctx context.Context, token string, fields domain.ListingFields) (*domain.Listing, error) {
	domainName := ""
	if fields.DomainName != nil {
		domainName = *fields.DomainName
	}
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateListingUseCase",
		"domain_name": domainName,
	})

	created, err := uc.client.CreateListing(ctx, token, fields)
	if err != nil {
		ucLogger.Error("Create failed", err, nil)
		return nil, err
	}

	if err := uc.store.Reload(ctx); err != nil {
		// The mutation already succeeded; a failed refresh only leaves the
		// public cache stale until the next reload.
		ucLogger.Warn("Catalog reload after create failed", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Listing created", port.Fields{"id": created.ID})
	return created, nil
}
