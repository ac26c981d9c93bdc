package subscription

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := NewStore()
	customer := uuid.New()

	first := New(customer)
	second := New(customer)
	second.Status = LifecycleActive

	require.NoError(t, store.Add(first))
	require.NoError(t, store.Add(second))
	require.Equal(t, 2, store.Len())

	t.Run("duplicate add is rejected", func(t *testing.T) {
		err := store.Add(first)
		require.ErrorIs(t, err, errDuplicateSubscription)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := store.Get(first.SubscriptionID)
		require.NoError(t, err)
		assert.Same(t, first, got)

		_, err = store.Get(uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("by status", func(t *testing.T) {
		active := store.ByStatus(LifecycleActive)
		require.Len(t, active, 1)
		assert.Same(t, second, active[0])

		require.Empty(t, store.ByStatus(LifecycleTerminated))
	})
}
