// Package orderrepo provides the in-memory live order registry.
//
// The registry is a sync.Map keyed by order id. Inserts, lookups and removals
// never take a registry-wide lock, so they do not contend with the per-order
// critical sections held by the order service.
package orderrepo

import (
	"fmt"
	"sync"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/order"
	"pancakes/internal/core/ports"
	"pancakes/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Registry)(nil)

// Registry implements ports.OrderRepository. The zero value is not usable; use NewRegistry.
type Registry struct {
	orders *sync.Map
}

func NewRegistry() *Registry {
	return &Registry{orders: &sync.Map{}}
}

// Add stores a new order. A second order with the same id is rejected.
func (r *Registry) Add(aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, loaded := r.orders.LoadOrStore(aggregate.ID(), aggregate); loaded {
		return errs.NewConflictError("order", fmt.Sprintf("%s is already registered", aggregate.ID()))
	}
	return nil
}

// Get returns the registered order with the given id.
func (r *Registry) Get(id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	v, ok := r.orders.Load(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return v.(*order.Order), nil
}

// Contains reports whether this exact instance is registered under its id.
func (r *Registry) Contains(aggregate *order.Order) bool {
	if aggregate == nil {
		return false
	}
	v, ok := r.orders.Load(aggregate.ID())
	return ok && v.(*order.Order) == aggregate
}

// Remove deletes the entry only if it still points to this instance.
func (r *Registry) Remove(aggregate *order.Order) bool {
	if aggregate == nil {
		return false
	}
	return r.orders.CompareAndDelete(aggregate.ID(), aggregate)
}

// Len counts the registered orders. The count is a point-in-time estimate
// under concurrent modification.
func (r *Registry) Len() int {
	n := 0
	r.orders.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
