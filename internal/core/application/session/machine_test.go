package session_test

import (
	"context"
	"errors"
	"testing"

	"cargofresh/internal/adapters/out/memory"
	"cargofresh/internal/adapters/out/memory/orderrepo"
	"cargofresh/internal/core/application/session"
	"cargofresh/internal/core/application/usecases/commands"
	"cargofresh/internal/core/domain/model/kernel"
	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/core/domain/services"
	"cargofresh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderUoWFactory struct {
	factory *memory.MemoryUnitOfWorkFactory
}

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type fixture struct {
	machine *session.Machine
	store   *orderrepo.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	engine, err := services.NewTariffEngine(services.DefaultRates())
	require.NoError(t, err)

	seed, err := orderrepo.DemoOrders()
	require.NoError(t, err)
	store, err := orderrepo.NewStore(seed...)
	require.NoError(t, err)

	factory := orderUoWFactory{factory: memory.NewMemoryUnitOfWorkFactory(store)}
	create := commands.NewCreateOrderCommandHandler(factory, nil)
	authorize := commands.NewAuthorizeOrderCommandHandler(factory)

	return fixture{
		machine: session.NewMachine(engine, &create, &authorize, nil),
		store:   store,
	}
}

func (f fixture) apply(t *testing.T, state session.State, events ...session.Event) session.State {
	t.Helper()
	for _, event := range events {
		var err error
		state, err = f.machine.Reduce(context.Background(), state, event)
		require.NoError(t, err, session.EventName(event))
	}
	return state
}

func filledForm() []session.Event {
	return []session.Event{
		session.EditOrigin{Value: "Mazatlán"},
		session.EditDestination{Value: "Los Cabos"},
		session.EditCargoType{Value: "Fresco"},
		session.EditWeight{Value: "200"},
	}
}

func (f fixture) withPendingQuote(t *testing.T) session.State {
	t.Helper()
	events := append(filledForm(), session.CalculateEstimate{}, session.BuyNow{})
	return f.apply(t, session.InitialState(), events...)
}

func (f fixture) atView(t *testing.T, view session.View) session.State {
	t.Helper()
	s := session.InitialState()
	switch view {
	case session.Landing:
		return s
	case session.LoginPrompt:
		return f.apply(t, s, session.RequestClientArea{})
	case session.ClientDashboard:
		return f.apply(t, s, session.RequestClientArea{}, session.Login{Role: session.Client})
	case session.AdminDashboard:
		return f.apply(t, s, session.RequestClientArea{}, session.Login{Role: session.Admin})
	}
	t.Fatalf("unknown view %v", view)
	return s
}

func TestMachine_TransitionTable(t *testing.T) {
	f := newFixture(t)
	views := []session.View{session.Landing, session.LoginPrompt, session.ClientDashboard, session.AdminDashboard}

	tests := []struct {
		event   session.Event
		allowed map[session.View]session.View
	}{
		{session.RequestClientArea{}, map[session.View]session.View{session.Landing: session.LoginPrompt}},
		{session.Login{Role: session.Client}, map[session.View]session.View{session.LoginPrompt: session.ClientDashboard}},
		{session.Login{Role: session.Admin}, map[session.View]session.View{session.LoginPrompt: session.AdminDashboard}},
		{session.CancelLogin{}, map[session.View]session.View{session.LoginPrompt: session.Landing}},
		{session.ConfirmPendingQuote{}, map[session.View]session.View{session.ClientDashboard: session.ClientDashboard}},
		{session.DiscardPendingQuote{}, map[session.View]session.View{session.ClientDashboard: session.ClientDashboard}},
		{session.Logout{}, map[session.View]session.View{
			session.ClientDashboard: session.Landing,
			session.AdminDashboard:  session.Landing,
		}},
		{session.AuthorizeOrder{ID: "ORD-404"}, map[session.View]session.View{session.AdminDashboard: session.AdminDashboard}},
		{session.EditWeight{Value: "10"}, map[session.View]session.View{session.Landing: session.Landing}},
		{session.BuyNow{}, map[session.View]session.View{}},
	}

	for _, tt := range tests {
		for _, from := range views {
			t.Run(session.EventName(tt.event)+"/"+from.String(), func(t *testing.T) {
				state := f.atView(t, from)

				next, err := f.machine.Reduce(context.Background(), state, tt.event)

				to, ok := tt.allowed[from]
				if !ok {
					if _, isBuyNow := tt.event.(session.BuyNow); isBuyNow && from == session.Landing {
						require.ErrorIs(t, err, session.ErrEstimateRequired)
					} else {
						require.ErrorIs(t, err, session.ErrEventNotAllowed)
					}
					assert.Equal(t, state, next)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, to, next.View)
			})
		}
	}
}

func TestMachine_CalculateEstimate(t *testing.T) {
	f := newFixture(t)

	t.Run("frozen 500 kg", func(t *testing.T) {
		s := f.apply(t, session.InitialState(),
			session.EditCargoType{Value: "Congelado"},
			session.EditWeight{Value: "500"},
			session.CalculateEstimate{},
		)

		require.NotNil(t, s.Estimate)
		assert.Equal(t, 8075, s.Estimate.Min)
		assert.Equal(t, 8925, s.Estimate.Max)
	})

	t.Run("comma decimal weight prices like a dot", func(t *testing.T) {
		comma := f.apply(t, session.InitialState(),
			session.EditCargoType{Value: "Seco"}, session.EditWeight{Value: "150,5"}, session.CalculateEstimate{})
		dot := f.apply(t, session.InitialState(),
			session.EditCargoType{Value: "Seco"}, session.EditWeight{Value: "150.5"}, session.CalculateEstimate{})

		assert.Equal(t, *dot.Estimate, *comma.Estimate)
	})

	for _, weight := range []string{"0", "-5", "abc", ""} {
		t.Run("rejects weight "+weight, func(t *testing.T) {
			s := f.apply(t, session.InitialState(),
				session.EditCargoType{Value: "Fresco"}, session.EditWeight{Value: weight})

			next, err := f.machine.Reduce(context.Background(), s, session.CalculateEstimate{})

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Nil(t, next.Estimate)
			assert.Equal(t, s, next)
		})
	}

	t.Run("requires cargo type", func(t *testing.T) {
		s := f.apply(t, session.InitialState(), session.EditWeight{Value: "100"})

		_, err := f.machine.Reduce(context.Background(), s, session.CalculateEstimate{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMachine_AnyFormEditClearsEstimate(t *testing.T) {
	f := newFixture(t)
	edits := []session.Event{
		session.EditOrigin{Value: "La Paz"},
		session.EditDestination{Value: "Mazatlán"},
		session.EditCargoType{Value: "Seco"},
		session.EditWeight{Value: "201"},
		session.EditLastMile{Value: true},
	}

	for _, edit := range edits {
		t.Run(session.EventName(edit), func(t *testing.T) {
			s := f.apply(t, session.InitialState(), append(filledForm(), session.CalculateEstimate{})...)
			require.NotNil(t, s.Estimate)

			s = f.apply(t, s, edit)

			assert.Nil(t, s.Estimate)
		})
	}
}

func TestMachine_BuyNow(t *testing.T) {
	f := newFixture(t)

	t.Run("without estimate", func(t *testing.T) {
		s := f.apply(t, session.InitialState(), filledForm()...)

		next, err := f.machine.Reduce(context.Background(), s, session.BuyNow{})

		require.ErrorIs(t, err, session.ErrEstimateRequired)
		assert.True(t, errs.IsValidation(err))
		assert.Equal(t, session.Landing, next.View)
		assert.Nil(t, next.PendingQuote)
	})

	t.Run("without ports", func(t *testing.T) {
		s := f.apply(t, session.InitialState(),
			session.EditCargoType{Value: "Fresco"}, session.EditWeight{Value: "200"}, session.CalculateEstimate{})

		next, err := f.machine.Reduce(context.Background(), s, session.BuyNow{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "port")
		assert.Nil(t, next.PendingQuote)
	})

	t.Run("creates pending quote at the lower bound", func(t *testing.T) {
		s := f.withPendingQuote(t)

		assert.Equal(t, session.LoginPrompt, s.View)
		require.True(t, s.HasPendingQuote())
		assert.Equal(t, 3344, s.PendingQuote.Price())
		assert.False(t, s.Session.Authenticated)
	})

	t.Run("overwrites an earlier pending quote", func(t *testing.T) {
		s := f.apply(t, f.withPendingQuote(t),
			session.CancelLogin{},
			session.EditWeight{Value: "500"},
			session.EditCargoType{Value: "Congelado"},
			session.CalculateEstimate{},
			session.BuyNow{},
		)

		assert.Equal(t, 8075, s.PendingQuote.Price())
		assert.Equal(t, kernel.Frozen, s.PendingQuote.Request().CargoType())
	})
}

func TestMachine_QuoteSurvivesLogin(t *testing.T) {
	f := newFixture(t)
	before := f.withPendingQuote(t)

	after := f.apply(t, before, session.Login{Role: session.Client})

	assert.Equal(t, session.ClientDashboard, after.View)
	assert.Equal(t, session.Session{
		Authenticated: true,
		Role:          session.Client,
		DisplayName:   session.ClientDisplayName,
	}, after.Session)
	require.True(t, after.HasPendingQuote())
	assert.Equal(t, *before.PendingQuote, *after.PendingQuote)

	request := after.PendingQuote.Request()
	assert.Equal(t, kernel.Mazatlan, request.Origin())
	assert.Equal(t, kernel.LosCabos, request.Destination())
	assert.Equal(t, kernel.Fresh, request.CargoType())
	assert.InDelta(t, 200, request.Weight().Kg(), 1e-9)
	assert.Equal(t, 3344, after.PendingQuote.Price())
}

func TestMachine_ConfirmAndDiscard(t *testing.T) {
	t.Run("confirm appends exactly one pending order", func(t *testing.T) {
		f := newFixture(t)
		s := f.apply(t, f.withPendingQuote(t), session.Login{Role: session.Client})

		s = f.apply(t, s, session.ConfirmPendingQuote{})

		assert.False(t, s.HasPendingQuote())
		orders := f.store.Snapshot()
		require.Len(t, orders, 3)
		placed := orders[0]
		assert.Equal(t, order.ID("ORD-003"), placed.ID())
		assert.Equal(t, session.ClientDisplayName, placed.Client())
		assert.Equal(t, order.PendingAuthorization, placed.Status())
		assert.Equal(t, 3344, placed.Price())
		assert.Equal(t, kernel.Mazatlan, placed.Origin())
		assert.Equal(t, kernel.LosCabos, placed.Destination())
	})

	t.Run("confirm without pending quote is a no-op", func(t *testing.T) {
		f := newFixture(t)
		s := f.atView(t, session.ClientDashboard)

		next, err := f.machine.Reduce(context.Background(), s, session.ConfirmPendingQuote{})

		require.NoError(t, err)
		assert.Equal(t, s, next)
		assert.Len(t, f.store.Snapshot(), 2)
	})

	t.Run("discard creates no order", func(t *testing.T) {
		f := newFixture(t)
		s := f.apply(t, f.withPendingQuote(t), session.Login{Role: session.Client})

		s = f.apply(t, s, session.DiscardPendingQuote{})

		assert.False(t, s.HasPendingQuote())
		assert.Len(t, f.store.Snapshot(), 2)
	})
}

func TestMachine_AuthorizeOrder(t *testing.T) {
	f := newFixture(t)
	client := f.apply(t, f.withPendingQuote(t), session.Login{Role: session.Client}, session.ConfirmPendingQuote{})
	admin := f.apply(t, client, session.Logout{}, session.RequestClientArea{}, session.Login{Role: session.Admin})

	admin = f.apply(t, admin, session.AuthorizeOrder{ID: "ORD-003"})
	stored, ok := f.store.Lookup("ORD-003")
	require.True(t, ok)
	assert.Equal(t, order.Authorized, stored.Status())

	again, err := f.machine.Reduce(context.Background(), admin, session.AuthorizeOrder{ID: "ORD-003"})
	require.NoError(t, err)
	assert.Equal(t, admin, again)
	stored, _ = f.store.Lookup("ORD-003")
	assert.Equal(t, order.Authorized, stored.Status())

	_, err = f.machine.Reduce(context.Background(), admin, session.AuthorizeOrder{ID: "ORD-999"})
	require.NoError(t, err)

	_, err = f.machine.Reduce(context.Background(), admin, session.AuthorizeOrder{ID: "ORD-002"})
	require.NoError(t, err)
	inRoute, _ := f.store.Lookup("ORD-002")
	assert.Equal(t, order.InRoute, inRoute.Status())

	_, err = f.machine.Reduce(context.Background(), admin, session.AuthorizeOrder{ID: "bogus"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMachine_Logout(t *testing.T) {
	f := newFixture(t)
	s := f.apply(t, f.withPendingQuote(t), session.Login{Role: session.Client})

	s = f.apply(t, s, session.Logout{})

	assert.Equal(t, session.Landing, s.View)
	assert.Equal(t, session.Session{}, s.Session)
	assert.False(t, s.HasPendingQuote())
}

func TestMachine_DoesNotMutateInput(t *testing.T) {
	f := newFixture(t)
	s := f.apply(t, f.withPendingQuote(t), session.Login{Role: session.Client})
	pending := *s.PendingQuote

	next := f.apply(t, s, session.DiscardPendingQuote{})

	require.NotNil(t, s.PendingQuote)
	assert.Equal(t, pending, *s.PendingQuote)
	assert.Nil(t, next.PendingQuote)
}

func TestMachine_Errors(t *testing.T) {
	f := newFixture(t)

	t.Run("unknown event", func(t *testing.T) {
		_, err := f.machine.Reduce(context.Background(), session.InitialState(), nil)
		require.ErrorIs(t, err, session.ErrUnknownEvent)
	})

	t.Run("invalid role", func(t *testing.T) {
		s := f.atView(t, session.LoginPrompt)
		next, err := f.machine.Reduce(context.Background(), s, session.Login{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, session.LoginPrompt, next.View)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := f.machine.Reduce(ctx, session.InitialState(), session.RequestClientArea{})
		require.ErrorIs(t, err, context.Canceled)
	})
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (order.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.ID), args.Error(1)
}

type MockOrderAuthorizer struct{ mock.Mock }

func (m *MockOrderAuthorizer) Handle(ctx context.Context, cmd commands.AuthorizeOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func TestMachine_SideEffectFailuresKeepState(t *testing.T) {
	engine, err := services.NewTariffEngine(services.DefaultRates())
	require.NoError(t, err)

	creator := new(MockOrderCreator)
	authorizer := new(MockOrderAuthorizer)
	machine := session.NewMachine(engine, creator, authorizer, nil)
	ctx := context.Background()

	reduce := func(s session.State, events ...session.Event) session.State {
		for _, e := range events {
			s, err = machine.Reduce(ctx, s, e)
			require.NoError(t, err)
		}
		return s
	}

	client := reduce(session.InitialState(), append(filledForm(),
		session.CalculateEstimate{}, session.BuyNow{}, session.Login{Role: session.Client})...)

	creator.On("Handle", ctx, mock.AnythingOfType("commands.CreateOrderCommand")).
		Return(order.ID(""), errors.New("storage down")).Once()

	next, err := machine.Reduce(ctx, client, session.ConfirmPendingQuote{})
	require.Error(t, err)
	assert.True(t, next.HasPendingQuote())
	creator.AssertExpectations(t)

	admin := reduce(session.InitialState(), session.RequestClientArea{}, session.Login{Role: session.Admin})
	authorizer.On("Handle", ctx, mock.AnythingOfType("commands.AuthorizeOrderCommand")).
		Return(errors.New("storage down")).Once()

	_, err = machine.Reduce(ctx, admin, session.AuthorizeOrder{ID: "ORD-001"})
	require.Error(t, err)
	authorizer.AssertExpectations(t)
}
