package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

type BrowseCatalogUseCase struct {
	store port.CatalogStore
}

func NewBrowseCatalogUseCase(store port.CatalogStore) *BrowseCatalogUseCase {
	return &BrowseCatalogUseCase{store: store}
}

// Execute assembles the public catalog page for the given criteria. The
// featured carousel and the selector options always come from the full
// active collection; only the main list is narrowed by the filters. A failed
// read degrades to an empty page rather than an error, matching how the
// public site is expected to behave when the backend is down.
func (uc *BrowseCatalogUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.CatalogPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BrowseCatalogUseCase",
	})

	snapshot, err := uc.store.Snapshot(ctx)
	if err != nil {
		ucLogger.Error("Catalog snapshot unavailable, serving empty page", err, nil)
		return &domain.CatalogPage{
			Featured:   []domain.Listing{},
			Listings:   []domain.Listing{},
			Cities:     []string{},
			Categories: []string{},
		}, nil
	}

	filtered := domain.ApplyFilters(snapshot.Listings, criteria)

	ucLogger.Debug("Catalog page assembled", port.Fields{
		"total_active": len(snapshot.Listings),
		"filtered":     len(filtered),
		"featured":     len(snapshot.Featured),
	})

	return &domain.CatalogPage{
		Featured:   snapshot.Featured,
		Listings:   filtered,
		Cities:     snapshot.Cities,
		Categories: snapshot.Categories,
	}, nil
}
