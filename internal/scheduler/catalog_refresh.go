package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/modules/catalog"
)

// CatalogRefreshJob reloads the in-memory catalog snapshot from storage so
// manually entered or re-scraped plans become visible without a restart.
type CatalogRefreshJob struct {
	catalog *catalog.Service
	log     zerolog.Logger
}

// NewCatalogRefreshJob creates a new catalog refresh job
func NewCatalogRefreshJob(catalogSvc *catalog.Service, log zerolog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog: catalogSvc,
		log:     log.With().Str("job", "catalog_refresh").Logger(),
	}
}

// Name returns the job name
func (j *CatalogRefreshJob) Name() string {
	return "catalog_refresh"
}

// Run reloads the catalog snapshot
func (j *CatalogRefreshJob) Run() error {
	return j.catalog.Refresh()
}
