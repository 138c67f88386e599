// Package catalog loads the static product catalog and resolves free-text
// item mentions to catalog entries.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jcmexdev/voicecart/internal/grocery/domain"
)

// Load reads the catalog file: an ordered JSON array of {id, name, price}.
// A missing file is not an error — the agent simply runs with an empty
// catalog. A file that exists but does not parse is an error.
func Load(path string) ([]domain.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", path, err)
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("catalog: parse %q: %w", path, err)
	}
	return items, nil
}

// Resolver matches user-spoken item names against the catalog.
type Resolver struct {
	items []domain.CatalogItem
}

// NewResolver builds a resolver over the given catalog. The slice is treated
// as read-only for the resolver's lifetime.
func NewResolver(items []domain.CatalogItem) *Resolver {
	return &Resolver{items: items}
}

// Items returns the underlying catalog in its original order.
func (r *Resolver) Items() []domain.CatalogItem {
	return r.items
}

// Resolve maps a free-text query to a catalog item: case-insensitive exact
// name match first, then case-insensitive substring match (query contained in
// the item name). The first match in catalog order wins — "milk" resolves to
// whichever milk the catalog lists first, no disambiguation. Returns false
// when nothing matches.
func (r *Resolver) Resolve(query string) (domain.CatalogItem, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return domain.CatalogItem{}, false
	}

	for _, item := range r.items {
		if strings.ToLower(item.Name) == q {
			return item, true
		}
	}
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return item, true
		}
	}
	return domain.CatalogItem{}, false
}
