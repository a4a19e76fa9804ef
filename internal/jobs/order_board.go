package jobs

import (
	"pancakes/internal/core/application/services"
	"pancakes/internal/core/domain/model/kernel"
)

// OrderBoard is the read side of the order service used by the jobs.
type OrderBoard interface {
	ListCompletedOrders() []kernel.UUID
	ListPreparedOrders() []kernel.UUID
	GetOrder(orderID kernel.UUID) (services.OrderView, error)
}

var _ OrderBoard = (*services.OrderService)(nil)
