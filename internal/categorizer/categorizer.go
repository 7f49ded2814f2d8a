// Package categorizer maps transaction descriptions to spending categories.
// Inference consults, in order: the income-keyword rule, user-defined custom
// mappings (insertion order), the built-in keyword table, and finally the
// "Other" sentinel.
package categorizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/meghaa105/personal-finance-sub000/internal/logging"
	"github.com/meghaa105/personal-finance-sub000/internal/models"
	"github.com/meghaa105/personal-finance-sub000/internal/store"
)

// Categorizer holds the custom-mapping table and the built-in defaults.
// Inference reads a consistent snapshot; mutations are serialized and marked
// dirty until Save flushes them to the store.
type Categorizer struct {
	mu       sync.RWMutex
	custom   []models.CustomMapping
	defaults []models.CategoryConfig
	store    *store.CategoryStore
	logger   logging.Logger
	dirty    bool
}

// New creates a Categorizer and loads the persisted custom mappings. A store
// of nil means the categorizer runs with defaults only.
func New(categoryStore *store.CategoryStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		custom:   []models.CustomMapping{},
		defaults: DefaultCategories,
		store:    categoryStore,
		logger:   logger,
	}

	if categoryStore != nil {
		mappings, err := categoryStore.LoadCustomMappings()
		if err != nil {
			c.logger.WithError(err).Warn("Failed to load custom mappings")
		} else {
			c.custom = mappings
		}
	}

	return c
}

// Infer maps a free-text description to a category. It is deterministic:
// identical inputs always return the identical category.
func (c *Categorizer) Infer(description string) string {
	if strings.TrimSpace(description) == "" {
		return models.CategoryOther
	}

	if models.IncomePattern.MatchString(description) {
		return models.CategoryIncome
	}

	lower := strings.ToLower(description)

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, mapping := range c.custom {
		for _, pattern := range mapping.Patterns {
			if pattern != "" && strings.Contains(lower, pattern) {
				return mapping.Category
			}
		}
	}

	for _, category := range c.defaults {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				return category.Name
			}
		}
	}

	return models.CategoryOther
}

// Mappings returns a copy of the current custom mappings in consultation order.
func (c *Categorizer) Mappings() []models.CustomMapping {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.CustomMapping, len(c.custom))
	for i, m := range c.custom {
		out[i] = models.CustomMapping{
			Category: m.Category,
			Patterns: append([]string(nil), m.Patterns...),
		}
	}
	return out
}

// AddPattern attaches a lowercase substring pattern to a category, creating
// the mapping if the category has none yet. A pattern may belong to at most
// one category; the invariant is enforced here, at write time, not by Infer.
func (c *Categorizer) AddPattern(category, pattern string) error {
	category = strings.TrimSpace(category)
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if category == "" {
		return fmt.Errorf("category must not be empty")
	}
	if pattern == "" {
		return fmt.Errorf("pattern must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, mapping := range c.custom {
		for _, existing := range mapping.Patterns {
			if existing == pattern {
				if mapping.Category == category {
					return nil
				}
				return fmt.Errorf("pattern %q already mapped to category %q", pattern, mapping.Category)
			}
		}
	}

	for i := range c.custom {
		if c.custom[i].Category == category {
			c.custom[i].Patterns = append(c.custom[i].Patterns, pattern)
			c.dirty = true
			return nil
		}
	}

	c.custom = append(c.custom, models.CustomMapping{
		Category: category,
		Patterns: []string{pattern},
	})
	c.dirty = true
	return nil
}

// RemovePattern detaches a pattern from a category. Removing the last pattern
// removes the mapping entry itself.
func (c *Categorizer) RemovePattern(category, pattern string) error {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.custom {
		if c.custom[i].Category != category {
			continue
		}
		for j, existing := range c.custom[i].Patterns {
			if existing == pattern {
				c.custom[i].Patterns = append(c.custom[i].Patterns[:j], c.custom[i].Patterns[j+1:]...)
				if len(c.custom[i].Patterns) == 0 {
					c.custom = append(c.custom[:i], c.custom[i+1:]...)
				}
				c.dirty = true
				return nil
			}
		}
		return fmt.Errorf("pattern %q not found in category %q", pattern, category)
	}
	return fmt.Errorf("no custom mapping for category %q", category)
}

// DeleteCategory removes a category's custom mapping and reassigns its
// patterns to the "Other" sentinel so they keep suppressing false matches.
func (c *Categorizer) DeleteCategory(category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.custom {
		if c.custom[i].Category != category {
			continue
		}
		orphaned := c.custom[i].Patterns
		c.custom = append(c.custom[:i], c.custom[i+1:]...)

		if len(orphaned) > 0 {
			placed := false
			for j := range c.custom {
				if c.custom[j].Category == models.CategoryOther {
					c.custom[j].Patterns = append(c.custom[j].Patterns, orphaned...)
					placed = true
					break
				}
			}
			if !placed {
				c.custom = append(c.custom, models.CustomMapping{
					Category: models.CategoryOther,
					Patterns: orphaned,
				})
			}
		}
		c.dirty = true
		return nil
	}
	return fmt.Errorf("no custom mapping for category %q", category)
}

// Save flushes the custom mappings to the store if they have been modified.
func (c *Categorizer) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty || c.store == nil {
		return nil
	}
	if err := c.store.SaveCustomMappings(c.custom); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
