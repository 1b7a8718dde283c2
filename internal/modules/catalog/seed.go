package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/switchup/plan-engine/internal/domain"
)

// LoadSeedFile reads a JSON array of plans from disk.
// The seed format mirrors the Plan shape; IDs are optional and
// assigned on insert when missing.
func LoadSeedFile(path string) ([]domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var plans []domain.Plan
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i := range plans {
		if plans[i].Company == "" {
			return nil, fmt.Errorf("seed entry %d: company is required", i)
		}
		if !plans[i].Category.Valid() {
			return nil, fmt.Errorf("seed entry %d: unknown category %q", i, plans[i].Category)
		}
	}

	return plans, nil
}
