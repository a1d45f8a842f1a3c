package orderrepo

import (
	"context"
	"fmt"

	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository.
// With a nil ChangeSet writes go straight to the Store; otherwise they are staged.
type MemoryOrderRepository struct {
	store   *Store
	changes *ChangeSet
}

// NewMemoryOrderRepository creates a repository over store. changes may be nil.
func NewMemoryOrderRepository(store *Store, changes *ChangeSet) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		store:   store,
		changes: changes,
	}
}

// Add stores a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if r.changes == nil {
		if err := r.store.insert(aggregate); err != nil {
			return err
		}
	} else {
		if r.exists(aggregate.ID()) {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, aggregate.ID())
		}
		r.changes.add(aggregate)
	}

	return nil
}

// Update replaces an existing order.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if r.changes == nil {
		if err := r.store.update(aggregate); err != nil {
			return err
		}
	} else {
		if !r.exists(aggregate.ID()) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		r.changes.update(aggregate)
	}

	return nil
}

// Get retrieves an order by ID, preferring staged changes.
func (r *MemoryOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if r.changes != nil {
		if o, ok := r.changes.lookup(id); ok {
			return o, nil
		}
	}

	o, ok := r.store.Lookup(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

// List returns all orders newest first, with staged changes applied.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := r.store.Snapshot()
	if r.changes == nil || r.changes.IsEmpty() {
		return stored, nil
	}

	result := make([]*order.Order, 0, len(stored)+len(r.changes.added))
	for i := len(r.changes.added) - 1; i >= 0; i-- {
		result = append(result, r.changes.added[i].Clone())
	}
	for _, o := range stored {
		if staged, ok := r.changes.updated[o.ID()]; ok {
			o = staged.Clone()
		}
		result = append(result, o)
	}

	return result, nil
}

// NextID reserves a fresh order ID from the store sequence.
func (r *MemoryOrderRepository) NextID(ctx context.Context) (order.ID, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.store.Reserve()
}

func (r *MemoryOrderRepository) exists(id order.ID) bool {
	if r.changes != nil && r.changes.adds(id) {
		return true
	}
	_, ok := r.store.Lookup(id)
	return ok
}
