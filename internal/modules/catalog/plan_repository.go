package catalog

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/switchup/plan-engine/internal/domain"
)

// PlanRepository handles plan database operations
type PlanRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *sql.DB, log zerolog.Logger) *PlanRepository {
	return &PlanRepository{
		db:  db,
		log: log.With().Str("repo", "plans").Logger(),
	}
}

// ListAll returns every plan in the catalog
func (r *PlanRepository) ListAll() ([]domain.Plan, error) {
	query := `SELECT id, company, category, plan_name, monthly_price, commitment_text, benefits_text
	          FROM plans ORDER BY category, company, plan_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	return r.scanPlans(rows)
}

// ListByCategory returns all plans in one category
func (r *PlanRepository) ListByCategory(category domain.Category) ([]domain.Plan, error) {
	query := `SELECT id, company, category, plan_name, monthly_price, commitment_text, benefits_text
	          FROM plans WHERE category = ? ORDER BY company, plan_name`

	rows, err := r.db.Query(query, string(category))
	if err != nil {
		return nil, fmt.Errorf("failed to query plans by category: %w", err)
	}
	defer rows.Close()

	return r.scanPlans(rows)
}

// GetByID returns a plan by ID, or nil when not found
func (r *PlanRepository) GetByID(id string) (*domain.Plan, error) {
	query := `SELECT id, company, category, plan_name, monthly_price, commitment_text, benefits_text
	          FROM plans WHERE id = ?`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan by id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil // Plan not found
	}

	plan, err := r.scanPlan(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}

	return &plan, nil
}

// Upsert inserts or replaces a plan, assigning an ID when missing
func (r *PlanRepository) Upsert(plan *domain.Plan) error {
	if !plan.Category.Valid() {
		return fmt.Errorf("invalid category: %q", plan.Category)
	}
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}

	query := `INSERT OR REPLACE INTO plans
	          (id, company, category, plan_name, monthly_price, commitment_text, benefits_text)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		plan.ID,
		plan.Company,
		string(plan.Category),
		plan.PlanName,
		nullFloat(plan.MonthlyPrice),
		nullString(plan.CommitmentText),
		nullString(plan.BenefitsText),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plan: %w", err)
	}

	return nil
}

// Count returns the number of stored plans
func (r *PlanRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM plans").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count plans: %w", err)
	}
	return count, nil
}

func (r *PlanRepository) scanPlans(rows *sql.Rows) ([]domain.Plan, error) {
	var plans []domain.Plan
	for rows.Next() {
		plan, err := r.scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) scanPlan(rows *sql.Rows) (domain.Plan, error) {
	var (
		plan       domain.Plan
		category   string
		price      sql.NullFloat64
		commitment sql.NullString
		benefits   sql.NullString
	)

	if err := rows.Scan(&plan.ID, &plan.Company, &category, &plan.PlanName, &price, &commitment, &benefits); err != nil {
		return domain.Plan{}, err
	}

	plan.Category = domain.Category(category)
	if price.Valid {
		v := price.Float64
		plan.MonthlyPrice = &v
	}
	if commitment.Valid {
		v := commitment.String
		plan.CommitmentText = &v
	}
	if benefits.Valid {
		v := benefits.String
		plan.BenefitsText = &v
	}

	return plan, nil
}

func nullFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
