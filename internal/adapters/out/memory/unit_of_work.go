// Package memory provides the in-process Unit of Work over the order book.
//
// A unit of work stages repository writes in an orderrepo.ChangeSet after Begin
// and applies them to the shared orderrepo.Store in one step on Commit. Rollback,
// or simply never committing, leaves the store untouched.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"errors"

	"cargofresh/internal/adapters/out/memory/orderrepo"
	"cargofresh/internal/core/ports"
)

// ErrNoActiveUnitOfWork is returned by Commit and Rollback outside Begin.
var ErrNoActiveUnitOfWork = errors.New("no active unit of work")

// MemoryUnitOfWorkFactory creates units of work over one shared store.
type MemoryUnitOfWorkFactory struct {
	store *orderrepo.Store
}

// NewMemoryUnitOfWorkFactory creates a factory for store.
func NewMemoryUnitOfWorkFactory(store *orderrepo.Store) *MemoryUnitOfWorkFactory {
	return &MemoryUnitOfWorkFactory{store: store}
}

// Create returns a fresh, inactive unit of work.
func (f *MemoryUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &MemoryUnitOfWork{store: f.store}
}

// MemoryUnitOfWork stages order writes until Commit.
type MemoryUnitOfWork struct {
	store   *orderrepo.Store
	changes *orderrepo.ChangeSet
}

// Begin starts staging. Calling Begin on an active unit is a no-op.
func (uow *MemoryUnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.changes != nil {
		return nil
	}

	uow.changes = orderrepo.NewChangeSet()
	return nil
}

// Commit applies every staged write atomically and ends the unit.
func (uow *MemoryUnitOfWork) Commit(ctx context.Context) error {
	if uow.changes == nil {
		return ErrNoActiveUnitOfWork
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := uow.store.Apply(uow.changes)
	uow.changes = nil
	return err
}

// Rollback discards staged writes and ends the unit.
func (uow *MemoryUnitOfWork) Rollback(_ context.Context) error {
	if uow.changes == nil {
		return ErrNoActiveUnitOfWork
	}

	uow.changes = nil
	return nil
}

// OrderRepository returns a repository staging into the active unit, or writing
// through to the store when no unit is active.
func (uow *MemoryUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(uow.store, uow.changes)
}
