// Package repository layers typed record access over the raw key-value
// store. Every list lives under one fixed key as a JSON array; mutations
// ride store.Update so appends and removals are atomic per key.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nsmosa/alumni-portal-api/internal/store"
)

// ErrNotFound is returned when a record addressed by id is absent.
var ErrNotFound = errors.New("record not found")

// decodeList unmarshals a stored JSON array. A missing or unparseable
// value decodes to an empty list: stored garbage is treated as absence
// rather than propagated.
func decodeList[T any](raw []byte) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}
	}
	return items
}

func readList[T any](ctx context.Context, s store.Store, key string) ([]T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	return decodeList[T](raw), nil
}

func appendItem[T any](ctx context.Context, s store.Store, key string, item T) error {
	return s.Update(ctx, key, func(current []byte) ([]byte, error) {
		items := decodeList[T](current)
		items = append(items, item)
		return json.Marshal(items)
	})
}

// removeItem filters out the first record matched by pred and returns it.
// The removal happens inside the key's atomic update cycle. The store may
// invoke the callback more than once before committing, so every pass
// starts from a clean slate.
func removeItem[T any](ctx context.Context, s store.Store, key string, pred func(T) bool) (*T, error) {
	var removed *T
	err := s.Update(ctx, key, func(current []byte) ([]byte, error) {
		removed = nil
		items := decodeList[T](current)
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if removed == nil && pred(item) {
				match := item
				removed = &match
				continue
			}
			kept = append(kept, item)
		}
		if removed == nil {
			return nil, ErrNotFound
		}
		return json.Marshal(kept)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// updateItem applies change to the first record matched by pred in place.
func updateItem[T any](ctx context.Context, s store.Store, key string, pred func(T) bool, change func(*T)) (*T, error) {
	var updated *T
	err := s.Update(ctx, key, func(current []byte) ([]byte, error) {
		updated = nil
		items := decodeList[T](current)
		for i := range items {
			if pred(items[i]) {
				change(&items[i])
				match := items[i]
				updated = &match
				return json.Marshal(items)
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
