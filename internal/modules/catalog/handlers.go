package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
)

// Handlers provides HTTP handlers for the catalog module
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new catalog handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "catalog_handlers").Logger(),
	}
}

// PlansResponse represents a catalog listing
type PlansResponse struct {
	Plans []domain.Plan `json:"plans"`
	Error *string       `json:"error,omitempty"`
}

// HandleListPlans handles GET /api/catalog/plans?category=
func (h *Handlers) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	if raw == "" {
		h.writeJSON(w, PlansResponse{Plans: h.service.Snapshot()})
		return
	}

	category, err := domain.ParseCategory(raw)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, PlansResponse{Plans: h.service.ByCategory(category)})
}

// HandleRefresh handles POST /api/catalog/refresh
func (h *Handlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(); err != nil {
		h.log.Error().Err(err).Msg("Catalog refresh failed")
		h.writeError(w, "Failed to refresh catalog", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, PlansResponse{Plans: h.service.Snapshot()})
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errMsg := message
	h.writeJSON(w, PlansResponse{Error: &errMsg})
}
