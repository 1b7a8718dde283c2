package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
	"github.com/switchup/plan-engine/internal/modules/catalog"
	"github.com/switchup/plan-engine/internal/modules/extraction"
	"github.com/switchup/plan-engine/internal/modules/scoring"
	"github.com/switchup/plan-engine/internal/modules/scoring/scorers"
	"github.com/switchup/plan-engine/internal/modules/suitability"
)

// Handlers provides HTTP handlers for the scoring module
type Handlers struct {
	scorer    *scorers.ValueScorer
	extractor *extraction.Extractor
	tagger    *suitability.Tagger
	catalog   *catalog.Service
	log       zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(
	scorer *scorers.ValueScorer,
	extractor *extraction.Extractor,
	tagger *suitability.Tagger,
	catalogSvc *catalog.Service,
	log zerolog.Logger,
) *Handlers {
	return &Handlers{
		scorer:    scorer,
		extractor: extractor,
		tagger:    tagger,
		catalog:   catalogSvc,
		log:       log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// ScoreRequest represents a request to score an ad-hoc plan against the
// current catalog snapshot
type ScoreRequest struct {
	Company        string   `json:"company"`
	Category       string   `json:"category"`
	PlanName       string   `json:"plan_name"`
	MonthlyPrice   *float64 `json:"monthly_price,omitempty"`
	CommitmentText *string  `json:"commitment_text,omitempty"`
	BenefitsText   *string  `json:"benefits_text,omitempty"`
}

// ScoreResponse represents the scoring result
type ScoreResponse struct {
	Score *scoring.ValueScore        `json:"score,omitempty"`
	Specs *extraction.TechnicalSpecs `json:"specs,omitempty"`
	Tags  []string                   `json:"tags,omitempty"`
	Error *string                    `json:"error,omitempty"`
}

// HandleScorePlan handles POST /api/scoring/score
// Scores a plan payload against the current catalog snapshot
func (h *Handlers) HandleScorePlan(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode score request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Company == "" {
		h.writeError(w, "Company is required", http.StatusBadRequest)
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan := domain.Plan{
		Company:        req.Company,
		Category:       category,
		PlanName:       req.PlanName,
		MonthlyPrice:   req.MonthlyPrice,
		CommitmentText: req.CommitmentText,
		BenefitsText:   req.BenefitsText,
	}

	h.writeJSON(w, h.scorePlan(plan))
}

// HandleScoreByID handles GET /api/scoring/plans/{id}
// Scores a stored catalog plan
func (h *Handlers) HandleScoreByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, plan := range h.catalog.Snapshot() {
		if plan.ID == id {
			h.writeJSON(w, h.scorePlan(plan))
			return
		}
	}

	h.writeError(w, "Plan not found", http.StatusNotFound)
}

// scorePlan runs the full derivation: value score, technical specs and
// suitability tags, all against the current snapshot
func (h *Handlers) scorePlan(plan domain.Plan) ScoreResponse {
	snapshot := h.catalog.Snapshot()

	score := h.scorer.Score(plan, snapshot)
	specs := h.extractor.Extract(plan.Benefits(), plan.Category)
	tags := h.tagger.Tags(specs, plan.Category, score.DealQuality)

	return ScoreResponse{
		Score: &score,
		Specs: &specs,
		Tags:  tags,
	}
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
	h.writeJSON(w, ScoreResponse{Error: &errMsg})
}
