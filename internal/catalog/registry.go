package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/CropProfit_Go/internal/domain"
)

// ItemRegistry indexes item definitions by qualified id. It is safe for
// concurrent use.
type ItemRegistry struct {
	mu    sync.RWMutex
	items map[string]domain.Item
}

// NewItemRegistry indexes items, rejecting duplicate ids. Bare ids are
// stored in their object-qualified form.
func NewItemRegistry(items []domain.Item) (*ItemRegistry, error) {
	r := &ItemRegistry{items: make(map[string]domain.Item, len(items))}
	for _, item := range items {
		item.ID = domain.QualifiedObjectID(item.ID)
		if _, exists := r.items[item.ID]; exists {
			return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgDuplicateID, item.ID)
		}
		r.items[item.ID] = item
	}
	return r, nil
}

// Item looks an item up by qualified or bare id.
func (r *ItemRegistry) Item(id string) (domain.Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[domain.QualifiedObjectID(id)]
	return item, ok
}

// Lookup is Item returning ErrItemNotFound for unknown ids.
func (r *ItemRegistry) Lookup(id string) (domain.Item, error) {
	item, ok := r.Item(id)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return item, nil
}

// Register adds or replaces an item.
func (r *ItemRegistry) Register(item domain.Item) {
	item.ID = domain.QualifiedObjectID(item.ID)
	r.mu.Lock()
	r.items[item.ID] = item
	r.mu.Unlock()
}

func (r *ItemRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// IDs returns every registered id, sorted.
func (r *ItemRegistry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}
