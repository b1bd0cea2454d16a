package refresher

import (
	"context"
	"fmt"

	"domain-market-web/internal/core/port"

	"github.com/robfig/cron/v3"
)

// Refresher reloads the catalog store on a cron schedule so the public pages
// keep serving fresh data between admin mutations.
type Refresher struct {
	store  port.CatalogStore
	spec   string
	logger port.LoggerPort
	cron   *cron.Cron
}

// New builds a refresher for the given cron expression. An empty expression
// disables scheduling; Start then becomes a no-op.
func New(store port.CatalogStore, spec string, logger port.LoggerPort) *Refresher {
	return &Refresher{
		store:  store,
		spec:   spec,
		logger: logger.WithFields(port.Fields{"component": "catalog_refresher"}),
		cron:   cron.New(),
	}
}

func (r *Refresher) Start(ctx context.Context) error {
	if r.spec == "" {
		r.logger.Info("No refresh schedule configured, catalog reloads on mutations only", nil)
		return nil
	}

	_, err := r.cron.AddFunc(r.spec, func() {
		if err := r.store.Reload(ctx); err != nil {
			r.logger.Error("Scheduled catalog reload failed", err, nil)
			return
		}
		r.logger.Debug("Scheduled catalog reload finished", nil)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", r.spec, err)
	}

	r.cron.Start()
	r.logger.Info("Catalog refresher started", port.Fields{"cron": r.spec})
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}
