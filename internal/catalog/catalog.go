// Package catalog serves the static recipe and grocery-staples content the
// recipes tab browses. The data ships embedded in the binary; nothing here
// is user-editable.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/DanteArceneaux/wegovy/internal/models"
)

//go:embed recipes.json
var recipesJSON []byte

//go:embed staples.json
var staplesJSON []byte

type Catalog struct {
	recipes []models.Recipe
	staples []models.StaplesCategory
}

// Load parses the embedded catalog content. It fails only if the embedded
// files are malformed, which is a build problem, so callers treat an error
// here as fatal.
func Load() (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(recipesJSON, &catalog.recipes); err != nil {
		return nil, fmt.Errorf("parsing embedded recipes: %w", err)
	}
	if err := json.Unmarshal(staplesJSON, &catalog.staples); err != nil {
		return nil, fmt.Errorf("parsing embedded staples: %w", err)
	}
	return &catalog, nil
}

func (catalog *Catalog) Recipes() []models.Recipe {
	return catalog.recipes
}

func (catalog *Catalog) Staples() []models.StaplesCategory {
	return catalog.staples
}

// StapleItems flattens the category list into the item names the grocery
// list tracks bought flags for.
func (catalog *Catalog) StapleItems() []string {
	var items []string
	for _, category := range catalog.staples {
		items = append(items, category.Items...)
	}
	return items
}
