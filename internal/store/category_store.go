// Package store provides YAML-backed persistence for transactions and
// user-defined category mappings.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads and saves user-defined category mappings. Mapping order
// in the file is the consultation order of the inference algorithm, so the
// list form is preserved rather than a map.
type CategoryStore struct {
	MappingsFile string
	logger       logging.Logger
}

// NewCategoryStore creates a store for the custom-mapping file.
func NewCategoryStore(mappingsFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		MappingsFile: mappingsFile,
		logger:       logger,
	}
}

// LoadCustomMappings loads the custom mappings from YAML. A missing file is
// not an error; it yields an empty list.
func (s *CategoryStore) LoadCustomMappings() ([]models.CustomMapping, error) {
	data, err := os.ReadFile(s.MappingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Custom mappings file not found",
				logging.Field{Key: "file", Value: s.MappingsFile})
			return []models.CustomMapping{}, nil
		}
		return nil, fmt.Errorf("error reading custom mappings file: %w", err)
	}

	var mappings []models.CustomMapping
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing custom mappings: %w", err)
	}

	s.logger.Debug("Loaded custom mappings",
		logging.Field{Key: "count", Value: len(mappings)},
		logging.Field{Key: "file", Value: s.MappingsFile})
	return mappings, nil
}

// SaveCustomMappings writes the custom mappings back to YAML, creating the
// parent directory when needed.
func (s *CategoryStore) SaveCustomMappings(mappings []models.CustomMapping) error {
	dir := filepath.Dir(s.MappingsFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("error marshaling custom mappings: %w", err)
	}

	if err := os.WriteFile(s.MappingsFile, data, 0600); err != nil {
		return fmt.Errorf("error writing custom mappings: %w", err)
	}

	s.logger.Debug("Saved custom mappings",
		logging.Field{Key: "count", Value: len(mappings)},
		logging.Field{Key: "file", Value: s.MappingsFile})
	return nil
}
