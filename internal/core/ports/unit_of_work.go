package ports

import (
	"context"
)

// UnitOfWork groups repository changes so that they apply together or not at all.
type UnitOfWork interface {
	// Begin starts staging changes.
	Begin(ctx context.Context) error

	// Commit applies staged changes.
	// Returns error if no unit is active.
	Commit(ctx context.Context) error

	// Rollback discards staged changes.
	// Returns error if no unit is active.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to this unit of work.
	OrderRepository() OrderRepository
}
