package recipe

import (
	"errors"
	"fmt"
	"slices"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/pkg/errs"
)

var ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")

// Recipe is a named template of ingredient references.
//
// Recipe follows these invariants:
//   - the name is valid according to kernel.ValidateName
//   - the ingredient list holds 1..kernel.MaxNumberOfIngredients valid ids
//
// A Recipe is not safe for concurrent mutation; the owning service serializes
// Update under its catalog lock.
type Recipe struct {
	id            kernel.UUID
	name          string
	ingredients   []kernel.UUID
	isConstructed bool
}

// NewRecipe creates a recipe with a fresh id. The ingredient list is copied.
func NewRecipe(name string, ingredients []kernel.UUID) (*Recipe, error) {
	r := &Recipe{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setName(name),
		r.setIngredients(ingredients),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Recipe) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecipeIsNotConstructed
	}
	return nil
}

// IsEqual compares id, name and ingredient list.
func (r *Recipe) IsEqual(other *Recipe) bool {
	return other != nil &&
		r.id.IsEqual(other.id) &&
		r.name == other.name &&
		slices.Equal(r.ingredients, other.ingredients)
}

func (r *Recipe) ID() kernel.UUID {
	return r.id
}

func (r *Recipe) Name() string {
	return r.name
}

// Ingredients returns a copy of the ingredient ids in recipe order.
func (r *Recipe) Ingredients() []kernel.UUID {
	return slices.Clone(r.ingredients)
}

// Uses reports whether the recipe references the ingredient.
func (r *Recipe) Uses(ingredientID kernel.UUID) bool {
	return slices.Contains(r.ingredients, ingredientID)
}

// Update replaces name and ingredient list together. On error the recipe is unchanged.
func (r *Recipe) Update(name string, ingredients []kernel.UUID) error {
	next := *r
	if err := errors.Join(
		next.setName(name),
		next.setIngredients(ingredients),
	); err != nil {
		return err
	}

	r.name = next.name
	r.ingredients = next.ingredients
	return nil
}

func (r *Recipe) setName(name string) error {
	if err := kernel.ValidateName("recipe name", name); err != nil {
		return err
	}
	r.name = name
	return nil
}

// ValidateIngredientList checks the list length and that every id is constructed.
// Existence in the catalog is checked by the service.
func ValidateIngredientList(ingredients []kernel.UUID) error {
	if len(ingredients) == 0 {
		return errs.NewValueIsRequiredErrorWithCause(
			"ingredients", fmt.Errorf("at least one ingredient is required"))
	}
	if len(ingredients) > kernel.MaxNumberOfIngredients {
		return errs.NewValueIsOutOfRangeError(
			"number of ingredients", len(ingredients), 1, kernel.MaxNumberOfIngredients)
	}
	for _, id := range ingredients {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Recipe) setIngredients(ingredients []kernel.UUID) error {
	if err := ValidateIngredientList(ingredients); err != nil {
		return err
	}
	r.ingredients = slices.Clone(ingredients)
	return nil
}
