package services

import (
	"fmt"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/order"
	"pancakes/internal/pkg/errs"
)

// PancakeKitchen turns ingredient names into a pancake on an order.
//
// Business rules:
//   - The order must be valid and in Draft status
//   - The pancake gets its own copy of the names
//   - The order size is checked after insertion: when the new pancake takes the
//     order past kernel.MaxOrderSize the call fails, but the pancake stays stored
//
// Example usage:
//
//	kitchen := services.NewPancakeKitchen()
//	p, err := kitchen.Bake(o, []string{"Dark chocolate", "Whipped cream"})
//	if errors.Is(err, errs.ErrValidation) {
//	    // order too large, or no ingredients
//	}
type PancakeKitchen struct {
	maxOrderSize int
}

// NewPancakeKitchen returns a kitchen enforcing kernel.MaxOrderSize.
func NewPancakeKitchen() PancakeKitchen {
	return PancakeKitchen{maxOrderSize: kernel.MaxOrderSize}
}

// Bake builds a pancake and adds it to the order. The caller must hold the order lock.
func (k PancakeKitchen) Bake(o *order.Order, ingredientNames []string) (*order.Pancake, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.Status().ValidateModify(); err != nil {
		return nil, err
	}

	pancake, err := order.NewPancake(ingredientNames)
	if err != nil {
		return nil, err
	}

	if err = o.AddPancake(pancake); err != nil {
		return nil, err
	}

	if count := o.PancakeCount(); count > k.maxOrderSize {
		return pancake, errs.NewValueIsOutOfRangeErrorWithCause(
			"order size", count, 1, k.maxOrderSize,
			fmt.Errorf("order cannot have more than %d pancakes", k.maxOrderSize))
	}

	return pancake, nil
}
