package order

import (
	"fmt"
	"slices"
	"strings"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/pkg/errs"
)

// Pancake is an immutable snapshot of ingredient names taken when it was added
// to an order. It keeps no reference to the recipe it came from.
type Pancake struct {
	id          kernel.UUID
	ingredients []string
}

// NewPancake copies the ingredient names; at least one is required.
func NewPancake(ingredients []string) (*Pancake, error) {
	if len(ingredients) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"pancake ingredients", fmt.Errorf("at least one ingredient is required"))
	}

	return &Pancake{
		id:          kernel.NewUUID(),
		ingredients: slices.Clone(ingredients),
	}, nil
}

func (p *Pancake) ID() kernel.UUID {
	return p.id
}

// Ingredients returns a copy of the ingredient names.
func (p *Pancake) Ingredients() []string {
	return slices.Clone(p.ingredients)
}

// Description renders "Delicious pancake with a, b!".
func (p *Pancake) Description() string {
	return fmt.Sprintf("Delicious pancake with %s!", strings.Join(p.ingredients, ", "))
}

// IsEqual compares id and ingredient names.
func (p *Pancake) IsEqual(other *Pancake) bool {
	return other != nil && p.id.IsEqual(other.id) && slices.Equal(p.ingredients, other.ingredients)
}
