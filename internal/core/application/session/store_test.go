package session_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"cargofresh/internal/core/application/session"
	"cargofresh/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStore_NewVisitorStartsOnLanding(t *testing.T) {
	store := session.NewStore(nil)

	state, err := store.State(kernel.NewUUID())

	require.NoError(t, err)
	assert.Equal(t, session.InitialState(), state)
	assert.Equal(t, 1, store.Len())
}

func TestStore_RejectsZeroID(t *testing.T) {
	store := session.NewStore(nil)

	_, err := store.State(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.Zero(t, store.Len())
}

func TestStore_UpdateKeepsStateOnError(t *testing.T) {
	store := session.NewStore(nil)
	id := kernel.NewUUID()

	_, err := store.Update(id, func(s session.State) (session.State, error) {
		s.View = session.LoginPrompt
		return s, nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	state, err := store.Update(id, func(s session.State) (session.State, error) {
		s.View = session.AdminDashboard
		return s, boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, session.LoginPrompt, state.View)
}

func TestStore_VisitorsAreIsolated(t *testing.T) {
	store := session.NewStore(nil)
	first, second := kernel.NewUUID(), kernel.NewUUID()

	_, err := store.Update(first, func(s session.State) (session.State, error) {
		s.Form.Weight = "500"
		return s, nil
	})
	require.NoError(t, err)

	other, err := store.State(second)
	require.NoError(t, err)
	assert.Empty(t, other.Form.Weight)
}

func TestStore_SerialisesUpdatesPerVisitor(t *testing.T) {
	store := session.NewStore(nil)
	id := kernel.NewUUID()

	const updates = 100
	var wg sync.WaitGroup
	for i := 0; i < updates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(id, func(s session.State) (session.State, error) {
				s.Form.Weight += "1"
				return s, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := store.State(id)
	require.NoError(t, err)
	assert.Len(t, state.Form.Weight, updates)
}

func TestStore_Evict(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 12, 10, 0, 0, 0, time.UTC)}
	store := session.NewStore(clock.Now)
	idle, active := kernel.NewUUID(), kernel.NewUUID()

	_, err := store.State(idle)
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = store.State(active)
	require.NoError(t, err)
	clock.Advance(15 * time.Minute)

	evicted := store.Evict(30 * time.Minute)

	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, store.Len())

	state, err := store.State(idle)
	require.NoError(t, err)
	assert.Equal(t, session.InitialState(), state)
}
