package orderrepo

import (
	"cargofresh/internal/core/domain/model/order"
)

// ChangeSet stages order writes until a unit of work commits them.
type ChangeSet struct {
	added   []*order.Order
	updated map[order.ID]*order.Order
}

// NewChangeSet returns an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		updated: make(map[order.ID]*order.Order),
	}
}

// IsEmpty reports whether nothing was staged.
func (c *ChangeSet) IsEmpty() bool {
	return len(c.added) == 0 && len(c.updated) == 0
}

func (c *ChangeSet) add(o *order.Order) {
	c.added = append(c.added, o.Clone())
}

func (c *ChangeSet) update(o *order.Order) {
	if i := c.addedIndex(o.ID()); i >= 0 {
		c.added[i] = o.Clone()
		return
	}
	c.updated[o.ID()] = o.Clone()
}

func (c *ChangeSet) adds(id order.ID) bool {
	return c.addedIndex(id) >= 0
}

func (c *ChangeSet) addedIndex(id order.ID) int {
	for i, o := range c.added {
		if o.ID() == id {
			return i
		}
	}
	return -1
}

// lookup returns the staged version of an order, if any.
func (c *ChangeSet) lookup(id order.ID) (*order.Order, bool) {
	if o, ok := c.updated[id]; ok {
		return o.Clone(), true
	}
	if i := c.addedIndex(id); i >= 0 {
		return c.added[i].Clone(), true
	}
	return nil, false
}
