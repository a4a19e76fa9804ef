package services

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/order"
	domainServices "pancakes/internal/core/domain/services"
	"pancakes/internal/core/ports"
	"pancakes/internal/pkg/errs"
)

// OrderView is a point-in-time snapshot of a live order.
type OrderView struct {
	ID           kernel.UUID
	Building     int
	Room         int
	Status       order.Status
	PancakeCount int
}

// OrderService drives orders through Draft -> Completed -> Prepared -> delivered,
// or Draft -> canceled. Delivered and canceled orders leave the registry.
//
// Every operation on an existing order runs under that order's lock. After the
// lock is taken the service checks the order is still registered, because a
// concurrent delivery or cancellation may have removed it while we waited.
// Catalog reads happen only while the order lock is held, never the other way round.
type OrderService struct {
	rooms   ports.RoomChecker
	catalog ports.RecipeCatalog
	orders  ports.OrderRepository
	metrics ports.OrderMetrics
	kitchen domainServices.PancakeKitchen

	// completed and prepared index order ids by status for listings.
	// An id is in at most one of them and in neither while Draft.
	completed sync.Map
	prepared  sync.Map

	logger *slog.Logger
}

func NewOrderService(
	rooms ports.RoomChecker,
	catalog ports.RecipeCatalog,
	orders ports.OrderRepository,
	metrics ports.OrderMetrics,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		rooms:   rooms,
		catalog: catalog,
		orders:  orders,
		metrics: metrics,
		kitchen: domainServices.NewPancakeKitchen(),
		logger:  logger.With("component", "OrderService"),
	}
}

// CreateOrder registers a Draft order for a known building and room.
func (s *OrderService) CreateOrder(building int, room int) (kernel.UUID, error) {
	if err := s.rooms.CheckRoom(building, room); err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewOrder(building, room)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = s.orders.Add(o); err != nil {
		return kernel.UUID{}, err
	}

	s.metrics.Observe(ports.OrderCreated)
	s.logger.Debug("order created", "order_id", o.ID(), "building", building, "room", room)
	return o.ID(), nil
}

// AddPancakeFromRecipe adds a pancake made of the recipe's current ingredients and
// returns its id. When the order grows past the size limit the pancake is kept and
// its id is returned together with the validation error.
func (s *OrderService) AddPancakeFromRecipe(orderID kernel.UUID, recipeID kernel.UUID) (kernel.UUID, error) {
	var pancakeID kernel.UUID
	err := s.withOrder(orderID, func(o *order.Order) error {
		if err := o.Status().ValidateModify(); err != nil {
			return err
		}

		ingredientIDs, err := s.catalog.GetRecipeIngredients(recipeID)
		if err != nil {
			return err
		}
		pancakeID, err = s.bake(o, ingredientIDs)
		return err
	})
	return pancakeID, err
}

// AddPancake adds a pancake made of the given ingredients. The list follows the
// recipe ingredient rules. The size limit behaves as in AddPancakeFromRecipe.
func (s *OrderService) AddPancake(orderID kernel.UUID, ingredientIDs []kernel.UUID) (kernel.UUID, error) {
	var pancakeID kernel.UUID
	err := s.withOrder(orderID, func(o *order.Order) error {
		if err := o.Status().ValidateModify(); err != nil {
			return err
		}

		var err error
		pancakeID, err = s.bake(o, ingredientIDs)
		return err
	})
	return pancakeID, err
}

// RemovePancakes removes the pancakes in the given order. Removal stops at the first
// unknown id; earlier removals in the batch are kept.
func (s *OrderService) RemovePancakes(orderID kernel.UUID, pancakeIDs []kernel.UUID) error {
	return s.withOrder(orderID, func(o *order.Order) error {
		if err := o.RemovePancakes(pancakeIDs); err != nil {
			return err
		}

		s.metrics.Observe(ports.PancakesRemoved)
		return nil
	})
}

func (s *OrderService) CompleteOrder(orderID kernel.UUID) error {
	return s.withOrder(orderID, func(o *order.Order) error {
		if err := o.Complete(); err != nil {
			return err
		}

		s.completed.Store(orderID, struct{}{})
		s.metrics.Observe(ports.OrderCompleted)
		s.logger.Debug("order completed", "order_id", orderID, "pancakes", o.PancakeCount())
		return nil
	})
}

func (s *OrderService) PrepareOrder(orderID kernel.UUID) error {
	return s.withOrder(orderID, func(o *order.Order) error {
		if err := o.Prepare(); err != nil {
			return err
		}

		s.completed.Delete(orderID)
		s.prepared.Store(orderID, struct{}{})
		s.metrics.Observe(ports.OrderPrepared)
		s.logger.Debug("order prepared", "order_id", orderID)
		return nil
	})
}

// DeliverOrder removes a Prepared order from the registry.
func (s *OrderService) DeliverOrder(orderID kernel.UUID) error {
	return s.withOrder(orderID, func(o *order.Order) error {
		if err := o.Deliver(); err != nil {
			return err
		}

		s.orders.Remove(o)
		s.prepared.Delete(orderID)
		s.metrics.Observe(ports.OrderDelivered)
		s.logger.Debug("order delivered", "order_id", orderID, "building", o.Building(), "room", o.Room())
		return nil
	})
}

// CancelOrder removes a Draft order from the registry.
func (s *OrderService) CancelOrder(orderID kernel.UUID) error {
	return s.withOrder(orderID, func(o *order.Order) error {
		if err := o.Cancel(); err != nil {
			return err
		}

		s.orders.Remove(o)
		s.metrics.Observe(ports.OrderCanceled)
		s.logger.Debug("order canceled", "order_id", orderID)
		return nil
	})
}

// ViewOrder returns the pancake descriptions in insertion order.
func (s *OrderService) ViewOrder(orderID kernel.UUID) ([]string, error) {
	var descriptions []string
	err := s.withOrder(orderID, func(o *order.Order) error {
		pancakes := o.Pancakes()
		descriptions = make([]string, 0, len(pancakes))
		for _, p := range pancakes {
			descriptions = append(descriptions, p.Description())
		}
		return nil
	})
	return descriptions, err
}

func (s *OrderService) GetOrderStatus(orderID kernel.UUID) (order.Status, error) {
	var status order.Status
	err := s.withOrder(orderID, func(o *order.Order) error {
		status = o.Status()
		return nil
	})
	return status, err
}

// GetPancakes returns the order's pancakes in insertion order. Pancakes are immutable.
func (s *OrderService) GetPancakes(orderID kernel.UUID) ([]*order.Pancake, error) {
	var pancakes []*order.Pancake
	err := s.withOrder(orderID, func(o *order.Order) error {
		pancakes = o.Pancakes()
		return nil
	})
	return pancakes, err
}

func (s *OrderService) GetOrder(orderID kernel.UUID) (OrderView, error) {
	var view OrderView
	err := s.withOrder(orderID, func(o *order.Order) error {
		view = OrderView{
			ID:           o.ID(),
			Building:     o.Building(),
			Room:         o.Room(),
			Status:       o.Status(),
			PancakeCount: o.PancakeCount(),
		}
		return nil
	})
	return view, err
}

// ListCompletedOrders returns the ids of orders waiting to be prepared.
func (s *OrderService) ListCompletedOrders() []kernel.UUID {
	return snapshot(&s.completed)
}

// ListPreparedOrders returns the ids of orders waiting to be delivered.
func (s *OrderService) ListPreparedOrders() []kernel.UUID {
	return snapshot(&s.prepared)
}

func (s *OrderService) withOrder(orderID kernel.UUID, fn func(o *order.Order) error) error {
	o, err := s.orders.Get(orderID)
	if err != nil {
		return err
	}

	o.Lock()
	defer o.Unlock()

	if !s.orders.Contains(o) {
		return errs.NewObjectNotFoundError("order", orderID)
	}
	return fn(o)
}

// bake must be called with the order lock held.
func (s *OrderService) bake(o *order.Order, ingredientIDs []kernel.UUID) (kernel.UUID, error) {
	names, err := s.catalog.ResolveIngredientNames(ingredientIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	p, err := s.kitchen.Bake(o, names)
	if p == nil {
		return kernel.UUID{}, err
	}

	s.metrics.Observe(ports.PancakeAdded)
	s.logger.Debug("pancake added", "order_id", o.ID(), "pancake_id", p.ID(), "pancakes", o.PancakeCount())
	return p.ID(), err
}

func snapshot(set *sync.Map) []kernel.UUID {
	var ids []kernel.UUID
	set.Range(func(key, _ any) bool {
		ids = append(ids, key.(kernel.UUID))
		return true
	})

	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		return cmp.Compare(a.String(), b.String())
	})
	return ids
}
