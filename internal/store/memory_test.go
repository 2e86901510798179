package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte(`"v"`)))
	value, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`"v"`), value)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", []byte("abc")))

	value, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	value[0] = 'x'

	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}

func TestMemoryStoreUpdateError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "k", []byte("before")))

	boom := errors.New("boom")
	err := s.Update(ctx, "k", func(current []byte) ([]byte, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	value, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("before"), value)
}

func TestMemoryStoreConcurrentUpdatesLoseNothing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := s.Update(ctx, "list", func(current []byte) ([]byte, error) {
				var items []int
				if len(current) > 0 {
					if err := json.Unmarshal(current, &items); err != nil {
						return nil, err
					}
				}
				items = append(items, n)
				return json.Marshal(items)
			})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	raw, ok, err := s.Get(ctx, "list")
	require.NoError(t, err)
	require.True(t, ok)
	var items []int
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, writers)
}
