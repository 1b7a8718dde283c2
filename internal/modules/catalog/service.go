package catalog

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
)

// PlanStore is the storage surface the service needs
type PlanStore interface {
	ListAll() ([]domain.Plan, error)
	Upsert(plan *domain.Plan) error
	Count() (int, error)
}

// Service keeps an in-memory snapshot of the plan catalog.
// The scoring engine works on immutable snapshot copies; the only
// mutation point is the snapshot swap inside Refresh.
type Service struct {
	store    PlanStore
	log      zerolog.Logger
	mu       sync.RWMutex
	snapshot []domain.Plan
}

// NewService creates a new catalog service
func NewService(store PlanStore, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("service", "catalog").Logger(),
	}
}

// Refresh reloads the snapshot from storage
func (s *Service) Refresh() error {
	plans, err := s.store.ListAll()
	if err != nil {
		return fmt.Errorf("failed to refresh catalog snapshot: %w", err)
	}

	s.mu.Lock()
	s.snapshot = plans
	s.mu.Unlock()

	s.log.Info().Int("plans", len(plans)).Msg("Catalog snapshot refreshed")
	return nil
}

// Snapshot returns a copy of the current catalog snapshot.
// Callers may hold and iterate it freely while refreshes happen.
func (s *Service) Snapshot() []domain.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Plan, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// ByCategory returns the snapshot filtered to one category
func (s *Service) ByCategory(category domain.Category) []domain.Plan {
	var out []domain.Plan
	for _, plan := range s.Snapshot() {
		if plan.Category == category {
			out = append(out, plan)
		}
	}
	return out
}

// SeedIfEmpty loads the seed file into storage when the catalog is empty
func (s *Service) SeedIfEmpty(path string) error {
	count, err := s.store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Debug().Int("plans", count).Msg("Catalog already populated, skipping seed")
		return nil
	}

	plans, err := LoadSeedFile(path)
	if err != nil {
		return err
	}

	for i := range plans {
		if err := s.store.Upsert(&plans[i]); err != nil {
			return fmt.Errorf("failed to seed plan %s/%s: %w", plans[i].Company, plans[i].PlanName, err)
		}
	}

	s.log.Info().Int("plans", len(plans)).Str("path", path).Msg("Catalog seeded")
	return nil
}
