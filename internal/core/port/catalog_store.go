package port

import (
	"context"

	"domain-market-web/internal/core/domain"
)

// CatalogStore owns the fetched public collection and its derived views.
// Snapshot loads lazily on first use; Reload forces a refetch and must be
// called after every successful admin mutation.
type CatalogStore interface {
	Snapshot(ctx context.Context) (domain.CatalogSnapshot, error)
	Reload(ctx context.Context) error
}
