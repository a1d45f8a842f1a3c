package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"cargofresh/internal/adapters/out/memory/orderrepo"
	"cargofresh/internal/core/domain/model/kernel"
	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T) *orderrepo.Store {
	t.Helper()
	seed, err := orderrepo.DemoOrders()
	require.NoError(t, err)

	store, err := orderrepo.NewStore(seed...)
	require.NoError(t, err)
	return store
}

func newPendingOrder(t *testing.T, id order.ID) *order.Order {
	t.Helper()
	weight, err := kernel.NewWeight(200)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, "Cliente Demo S.A.", kernel.Mazatlan, kernel.LosCabos,
		kernel.Fresh, weight, 3344, order.PendingAuthorization, time.Now())
	require.NoError(t, err)
	return o
}

func TestDemoOrders(t *testing.T) {
	seed, err := orderrepo.DemoOrders()
	require.NoError(t, err)
	require.Len(t, seed, 2)

	assert.Equal(t, order.ID("ORD-001"), seed[0].ID())
	assert.Equal(t, "Pesquera del Mar", seed[0].Client())
	assert.Equal(t, kernel.Mazatlan, seed[0].Origin())
	assert.Equal(t, kernel.LaPaz, seed[0].Destination())
	assert.Equal(t, kernel.Frozen, seed[0].CargoType())
	assert.InDelta(t, 500, seed[0].Weight().Kg(), 1e-9)
	assert.Equal(t, 6800, seed[0].Price())
	assert.Equal(t, order.Authorized, seed[0].Status())
	assert.Equal(t, "2024-05-10", seed[0].CreatedDate())

	assert.Equal(t, order.ID("ORD-002"), seed[1].ID())
	assert.Equal(t, "Agro Sur", seed[1].Client())
	assert.Equal(t, kernel.LaPaz, seed[1].Origin())
	assert.Equal(t, kernel.LosCabos, seed[1].Destination())
	assert.Equal(t, kernel.Fresh, seed[1].CargoType())
	assert.Equal(t, 3200, seed[1].Price())
	assert.Equal(t, order.InRoute, seed[1].Status())
	assert.Equal(t, "2024-05-11", seed[1].CreatedDate())
}

func TestMemoryOrderRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds keep listing order", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		orders, err := repo.List(ctx)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, order.ID("ORD-001"), orders[0].ID())
		assert.Equal(t, order.ID("ORD-002"), orders[1].ID())
	})

	t.Run("new orders come first", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)
		require.NoError(t, repo.Add(ctx, newPendingOrder(t, "ORD-003")))
		require.NoError(t, repo.Add(ctx, newPendingOrder(t, "ORD-004")))

		orders, err := repo.List(ctx)

		require.NoError(t, err)
		ids := make([]order.ID, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID())
		}
		assert.Equal(t, []order.ID{"ORD-004", "ORD-003", "ORD-001", "ORD-002"}, ids)
	})

	t.Run("staged adds and updates are visible in listing", func(t *testing.T) {
		store := newSeededStore(t)
		changes := orderrepo.NewChangeSet()
		repo := orderrepo.NewMemoryOrderRepository(store, changes)

		require.NoError(t, repo.Add(ctx, newPendingOrder(t, "ORD-003")))
		require.False(t, changes.IsEmpty())

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, order.ID("ORD-003"), orders[0].ID())

		assert.Len(t, store.Snapshot(), 2)
	})
}

func TestMemoryOrderRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate id is rejected", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		err := repo.Add(ctx, newPendingOrder(t, "ORD-001"))

		require.ErrorIs(t, err, orderrepo.ErrOrderAlreadyExists)
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		err := repo.Add(ctx, &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("stored copy is isolated from caller", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)
		o := newPendingOrder(t, "ORD-003")
		require.NoError(t, repo.Add(ctx, o))

		require.NoError(t, o.Authorize())

		stored, err := repo.Get(ctx, "ORD-003")
		require.NoError(t, err)
		assert.Equal(t, order.PendingAuthorization, stored.Status())
	})

	t.Run("cancelled context", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		require.ErrorIs(t, repo.Add(cancelled, newPendingOrder(t, "ORD-003")), context.Canceled)
	})
}

func TestMemoryOrderRepository_GetAndUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		_, err := repo.Get(ctx, "ORD-404")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("malformed id is invalid", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		_, err := repo.Get(ctx, "42")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("mutating a fetched order does not touch the store", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)
		require.NoError(t, repo.Add(ctx, newPendingOrder(t, "ORD-003")))

		fetched, err := repo.Get(ctx, "ORD-003")
		require.NoError(t, err)
		require.NoError(t, fetched.Authorize())

		again, err := repo.Get(ctx, "ORD-003")
		require.NoError(t, err)
		assert.Equal(t, order.PendingAuthorization, again.Status())
	})

	t.Run("update persists status change", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)
		require.NoError(t, repo.Add(ctx, newPendingOrder(t, "ORD-003")))

		fetched, err := repo.Get(ctx, "ORD-003")
		require.NoError(t, err)
		require.NoError(t, fetched.Authorize())
		require.NoError(t, repo.Update(ctx, fetched))

		again, err := repo.Get(ctx, "ORD-003")
		require.NoError(t, err)
		assert.Equal(t, order.Authorized, again.Status())
	})

	t.Run("update of unknown order fails", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		err := repo.Update(ctx, newPendingOrder(t, "ORD-404"))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestMemoryOrderRepository_NextID(t *testing.T) {
	ctx := context.Background()

	t.Run("continues after seeds", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		first, err := repo.NextID(ctx)
		require.NoError(t, err)
		second, err := repo.NextID(ctx)
		require.NoError(t, err)

		assert.Equal(t, order.ID("ORD-003"), first)
		assert.Equal(t, order.ID("ORD-004"), second)
	})

	t.Run("empty store starts at one", func(t *testing.T) {
		store, err := orderrepo.NewStore()
		require.NoError(t, err)
		repo := orderrepo.NewMemoryOrderRepository(store, nil)

		id, err := repo.NextID(ctx)

		require.NoError(t, err)
		assert.Equal(t, order.ID("ORD-001"), id)
	})

	t.Run("concurrent reservations are unique", func(t *testing.T) {
		repo := orderrepo.NewMemoryOrderRepository(newSeededStore(t), nil)

		const workers = 50
		ids := make(chan order.ID, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := repo.NextID(ctx)
				assert.NoError(t, err)
				ids <- id
			}()
		}
		wg.Wait()
		close(ids)

		seen := make(map[order.ID]struct{}, workers)
		for id := range ids {
			seen[id] = struct{}{}
		}
		assert.Len(t, seen, workers)
	})
}

func TestNewStore_RejectsDuplicateSeeds(t *testing.T) {
	seed, err := orderrepo.DemoOrders()
	require.NoError(t, err)

	_, err = orderrepo.NewStore(seed[0], seed[0])

	require.ErrorIs(t, err, orderrepo.ErrOrderAlreadyExists)
}
