package ports

import "pancakes/internal/core/domain/model/kernel"

// RoomChecker validates delivery locations against the building catalog.
type RoomChecker interface {
	// CheckRoom fails with a not-found error when the building does not exist
	// or none of its ranges contains the room.
	CheckRoom(buildingNumber int, room int) error
}

// RecipeCatalog resolves recipes and ingredient ids into pancake ingredient names.
type RecipeCatalog interface {
	// GetRecipeIngredients returns a copy of the recipe's ingredient ids.
	GetRecipeIngredients(recipeID kernel.UUID) ([]kernel.UUID, error)

	// ResolveIngredientNames validates the ids as a recipe ingredient list and
	// returns their names in the same order.
	ResolveIngredientNames(ingredientIDs []kernel.UUID) ([]string, error)
}
