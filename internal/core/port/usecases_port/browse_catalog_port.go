package usecases_port

import (
	"context"

	"domain-market-web/internal/core/domain"
)

type BrowseCatalogUseCase interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria) (*domain.CatalogPage, error)
}
