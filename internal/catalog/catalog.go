// Package catalog loads the static court dataset. The embedded dataset
// ships with the binary; an external JSON or YAML file can override it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
)

//go:embed courts.json
var embeddedCourts []byte

// Load returns the embedded catalog.
func Load() ([]domain.Court, error) {
	var courts []domain.Court
	if err := json.Unmarshal(embeddedCourts, &courts); err != nil {
		return nil, fmt.Errorf("catalog: decode embedded dataset: %w", err)
	}
	if err := validate(courts); err != nil {
		return nil, err
	}
	return courts, nil
}

// LoadFile reads a catalog from path. Both JSON and YAML are accepted;
// YAML input is converted through ghodss/yaml so the struct json tags apply.
func LoadFile(path string) ([]domain.Court, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var courts []domain.Court
	if err := yaml.Unmarshal(data, &courts); err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	if err := validate(courts); err != nil {
		return nil, err
	}
	return courts, nil
}

// FindByID returns the court with the given identifier, or false when the
// catalog does not contain it.
func FindByID(courts []domain.Court, id string) (domain.Court, bool) {
	for _, c := range courts {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Court{}, false
}

func validate(courts []domain.Court) error {
	seen := make(map[string]struct{}, len(courts))
	for i, c := range courts {
		if c.ID == "" {
			return fmt.Errorf("catalog: court at index %d has an empty id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("catalog: duplicate court id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
