package usecase

import (
	"context"

	"domain-market-web/internal/contextkeys"
	"domain-market-web/internal/core/domain"
	"domain-market-web/internal/core/port"
)

type RecalculateBRLUseCase struct {
	client port.MarketClient
	store  port.CatalogStore
}

func NewRecalculateBRLUseCase(client port.MarketClient, store port.CatalogStore) *RecalculateBRLUseCase {
	return &RecalculateBRLUseCase{client: client, store: store}
}

// Execute tells the backend to recompute every listing's BRL price from its
// USD price. The trigger takes no per-item input and reports how many
// records were touched.
func (uc *RecalculateBRLUseCase) Execute(ctx context.Context, token string) (*domain.RecalculationResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RecalculateBRLUseCase",
	})

	result, err := uc.client.RecalculateBRL(ctx, token)
	if err != nil {
		ucLogger.Error("Recalculation failed", err, nil)
		return nil, err
	}

	if err := uc.store.Reload(ctx); err != nil {
		ucLogger.Warn("Catalog reload after recalculation failed", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("BRL prices recalculated", port.Fields{"updated": result.Updated})
	return result, nil
}
