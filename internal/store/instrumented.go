package store

import (
	"context"
	"time"
)

// OperationObserver receives a timing sample per store call.
type OperationObserver interface {
	ObserveStoreOperation(op, key string, duration time.Duration, err error)
}

// InstrumentedStore wraps a Store and reports every call to the observer.
type InstrumentedStore struct {
	inner    Store
	observer OperationObserver
}

// NewInstrumentedStore wraps inner.
func NewInstrumentedStore(inner Store, observer OperationObserver) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, observer: observer}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	value, ok, err := s.inner.Get(ctx, key)
	s.observer.ObserveStoreOperation("get", key, time.Since(start), err)
	return value, ok, err
}

func (s *InstrumentedStore) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.inner.Set(ctx, key, value)
	s.observer.ObserveStoreOperation("set", key, time.Since(start), err)
	return err
}

func (s *InstrumentedStore) Update(ctx context.Context, key string, mutate func(current []byte) ([]byte, error)) error {
	start := time.Now()
	err := s.inner.Update(ctx, key, mutate)
	s.observer.ObserveStoreOperation("update", key, time.Since(start), err)
	return err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	s.observer.ObserveStoreOperation("delete", key, time.Since(start), err)
	return err
}
