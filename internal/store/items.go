package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/ameese/reading-log/internal/metrics"
	"github.com/ameese/reading-log/internal/reading"
)

const (
	// itemsKey is the single record holding the whole collection.
	itemsKey = "reading-items"

	// maxItems caps the persisted collection; oldest entries beyond the cap
	// are dropped on write.
	maxItems = 100
)

// ItemStore reads and writes the reading item collection, serialized as one
// JSON array under a fixed key. It holds no state between calls.
type ItemStore struct {
	kv KV
}

func NewItemStore(kv KV) *ItemStore {
	return &ItemStore{kv: kv}
}

// List returns at most limit items with non-empty title and url, sorted by
// added_at descending. A missing record, corrupt JSON, or any read error
// yields an empty list; read problems never surface to the caller.
func (s *ItemStore) List(ctx context.Context, limit int) []reading.Item {
	items := s.Load(ctx)

	// Always non-nil so an empty collection encodes as [] rather than null.
	filtered := make([]reading.Item, 0, len(items))
	for _, item := range items {
		if item.Renderable() {
			filtered = append(filtered, item)
		}
	}

	// added_at is in a fixed-width ISO layout, so string order is time order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].AddedAt > filtered[j].AddedAt
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// Load returns the raw persisted collection without filtering or sorting.
func (s *ItemStore) Load(ctx context.Context) []reading.Item {
	raw, err := s.kv.Get(ctx, itemsKey)
	if err != nil {
		if err != ErrNotFound {
			metrics.StoreReadRecoveriesTotal.Inc()
		}
		return nil
	}
	return decodeItems(raw)
}

// Save overwrites the whole persisted collection.
func (s *ItemStore) Save(ctx context.Context, items []reading.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, itemsKey, string(raw))
}

// Add inserts item at the front of the collection, removing any existing
// entry with the same url and truncating to the cap. The read-modify-write
// runs inside one KV.Update transaction, so concurrent adds against the same
// database serialize rather than losing writes.
func (s *ItemStore) Add(ctx context.Context, item reading.Item) error {
	return s.kv.Update(ctx, itemsKey, func(current string, found bool) (string, error) {
		var items []reading.Item
		if found {
			items = decodeItems(current)
		}

		next := make([]reading.Item, 0, len(items)+1)
		next = append(next, item)
		for _, existing := range items {
			if existing.URL != item.URL {
				next = append(next, existing)
			}
		}
		if len(next) > maxItems {
			next = next[:maxItems]
		}

		raw, err := json.Marshal(next)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	})
}

// decodeItems parses the stored JSON array, treating corrupt data as empty.
func decodeItems(raw string) []reading.Item {
	var items []reading.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		metrics.StoreReadRecoveriesTotal.Inc()
		return nil
	}
	return items
}
