package recommendations

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/catalog"
	"github.com/switchup/plan-engine/internal/modules/recommendations/strategies"
)

// Handlers provides HTTP handlers for the recommendations module
type Handlers struct {
	service *Service
	catalog *catalog.Service
	log     zerolog.Logger
}

// NewHandlers creates a new recommendations handlers instance
func NewHandlers(service *Service, catalogSvc *catalog.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		catalog: catalogSvc,
		log:     log.With().Str("module", "recommendations_handlers").Logger(),
	}
}

// RankRequest represents a ranking request
type RankRequest struct {
	Strategy string          `json:"strategy,omitempty"`
	Profile  *ProfileRequest `json:"profile,omitempty"`
	TopN     int             `json:"top_n,omitempty"`
}

// ProfileRequest carries the optional user hints
type ProfileRequest struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
}

// RankResponse represents the ranking result
type RankResponse struct {
	Recommendations []strategies.RankedPlan `json:"recommendations"`
	Error           *string                 `json:"error,omitempty"`
}

// HandleRank handles POST /api/recommendations
func (h *Handlers) HandleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode rank request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Strategy == "" {
		req.Strategy = "smart"
	}

	var profile *strategies.Profile
	if req.Profile != nil {
		category, err := domain.ParseCategory(req.Profile.Category)
		if err != nil {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		profile = &strategies.Profile{
			Category: category,
			Budget:   req.Profile.Budget,
		}
	}

	ranked, err := h.service.Rank(h.catalog.Snapshot(), req.Strategy, profile, req.TopN)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, RankResponse{Recommendations: ranked})
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
	h.writeJSON(w, RankResponse{Error: &errMsg})
}
