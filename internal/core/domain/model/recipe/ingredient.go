package recipe

import (
	"errors"

	"pancakes/internal/core/domain/model/kernel"
)

var ErrIngredientIsNotConstructed = errors.New("Ingredient must be created via NewIngredient constructor")

// Ingredient is an immutable named item usable in recipes and pancakes.
type Ingredient struct {
	id            kernel.UUID
	name          string
	isConstructed bool
}

// NewIngredient creates an ingredient with a fresh id.
func NewIngredient(name string) (*Ingredient, error) {
	if err := kernel.ValidateName("ingredient name", name); err != nil {
		return nil, err
	}

	return &Ingredient{
		id:            kernel.NewUUID(),
		name:          name,
		isConstructed: true,
	}, nil
}

func (i *Ingredient) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIngredientIsNotConstructed
	}
	return nil
}

// IsEqual compares both id and name.
func (i *Ingredient) IsEqual(other *Ingredient) bool {
	return other != nil && i.id.IsEqual(other.id) && i.name == other.name
}

func (i *Ingredient) ID() kernel.UUID {
	return i.id
}

func (i *Ingredient) Name() string {
	return i.name
}
