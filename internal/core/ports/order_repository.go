// Package ports defines the contracts between the order service and the
// components it depends on: the live order registry and the two catalogs.
package ports

import (
	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/order"
)

// OrderRepository is the live registry of orders in Draft, Completed or Prepared
// status. Implementations must be safe for concurrent use without a coarse lock,
// so that registry access never waits on an unrelated order's critical section.
type OrderRepository interface {
	// Add stores a new order. Fails with a conflict error if the id is taken.
	Add(aggregate *order.Order) error

	// Get returns the order with the given id or a not-found error.
	Get(id kernel.UUID) (*order.Order, error)

	// Contains reports whether this exact order instance is still registered.
	Contains(aggregate *order.Order) bool

	// Remove deletes the order if this exact instance is registered and reports
	// whether it did.
	Remove(aggregate *order.Order) bool
}
