package ports

// OrderEvent names a change applied to a live order.
type OrderEvent string

const (
	OrderCreated    OrderEvent = "created"
	PancakeAdded    OrderEvent = "pancake_added"
	PancakesRemoved OrderEvent = "pancakes_removed"
	OrderCompleted  OrderEvent = "completed"
	OrderPrepared   OrderEvent = "prepared"
	OrderDelivered  OrderEvent = "delivered"
	OrderCanceled   OrderEvent = "canceled"
)

// OrderMetrics records order events after they have been applied.
// Observe is called while the order lock is held and must not block.
type OrderMetrics interface {
	Observe(event OrderEvent)
}
