package order

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer's pancake request tied to a delivery building and room.
//
// Order follows these invariants:
//   - id, building and room never change
//   - status only moves along the transitions defined by Status
//   - pancakes are unique by id and keep their insertion order
//
// Order is not safe for concurrent use on its own. Callers that share an order
// between goroutines must hold Lock around every read-modify-write sequence.
type Order struct {
	mu sync.Mutex

	id       kernel.UUID
	building int
	room     int
	status   Status

	// pancakes is the membership index; sequence keeps insertion order for listings.
	pancakes map[kernel.UUID]*Pancake
	sequence []kernel.UUID

	isConstructed bool
}

// NewOrder creates a Draft order with a fresh id. The delivery location must have
// been checked against the building catalog beforehand; here only positivity is checked.
func NewOrder(building int, room int) (*Order, error) {
	o := &Order{
		id:            kernel.NewUUID(),
		status:        Draft,
		pancakes:      make(map[kernel.UUID]*Pancake),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setBuilding(building),
		o.setRoom(room),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id only.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Lock acquires the order's exclusive lock.
func (o *Order) Lock() {
	o.mu.Lock()
}

// Unlock releases the order's exclusive lock.
func (o *Order) Unlock() {
	o.mu.Unlock()
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Building() int {
	return o.building
}

func (o *Order) Room() int {
	return o.room
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PancakeCount() int {
	return len(o.pancakes)
}

// Pancakes returns a new slice with the pancakes in insertion order.
func (o *Order) Pancakes() []*Pancake {
	out := make([]*Pancake, 0, len(o.sequence))
	for _, id := range o.sequence {
		out = append(out, o.pancakes[id])
	}
	return out
}

// AddPancake stores a pancake on a Draft order. The order size limit is not checked
// here; see services.PancakeKitchen.
func (o *Order) AddPancake(p *Pancake) error {
	if p == nil {
		return errs.NewValueIsRequiredError("pancake")
	}
	if err := o.status.ValidateModify(); err != nil {
		return err
	}
	if _, ok := o.pancakes[p.ID()]; ok {
		return errs.NewConflictError("pancake", fmt.Sprintf("%s is already in the order", p.ID()))
	}

	o.pancakes[p.ID()] = p
	o.sequence = append(o.sequence, p.ID())
	return nil
}

// RemovePancakes removes the pancakes one by one in the given order. The first
// unknown id stops the batch with a not-found error; pancakes removed before it
// stay removed.
func (o *Order) RemovePancakes(ids []kernel.UUID) error {
	if err := o.status.ValidateModify(); err != nil {
		return err
	}

	for _, id := range ids {
		if err := o.removePancake(id); err != nil {
			return err
		}
	}
	return nil
}

// Complete moves a Draft order to Completed.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Prepare moves a Completed order to Prepared.
func (o *Order) Prepare() error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver checks that the order is Prepared. The status is left as is; the
// caller removes the order from the registry.
func (o *Order) Deliver() error {
	return o.status.ValidateDeliver()
}

// Cancel moves a Draft order to Canceled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) removePancake(id kernel.UUID) error {
	if _, ok := o.pancakes[id]; !ok {
		return errs.NewObjectNotFoundError("pancake", id)
	}

	delete(o.pancakes, id)
	o.sequence = slices.DeleteFunc(o.sequence, func(v kernel.UUID) bool { return v == id })
	return nil
}

func (o *Order) setBuilding(building int) error {
	if building <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("building", fmt.Errorf("%d is not greater than 0", building))
	}
	o.building = building
	return nil
}

func (o *Order) setRoom(room int) error {
	if room <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("room", fmt.Errorf("%d is not greater than 0", room))
	}
	o.room = room
	return nil
}
