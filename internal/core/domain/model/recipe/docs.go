// Package recipe provides the catalog entities used to describe pancakes.
//
// The package includes:
//   - Ingredient: an immutable named item with a unique identifier
//   - Recipe: a named, reusable list of ingredient ids
//
// Key business rules:
//   - Names are non-blank and at most kernel.MaxNameLength characters
//   - A recipe lists between 1 and kernel.MaxNumberOfIngredients ingredient ids
//   - A recipe's name and ingredient list can be replaced; its id never changes
//
// Uniqueness of names and existence of referenced ingredients are catalog-wide
// rules and are enforced by the recipe service, not by the entities.
package recipe
