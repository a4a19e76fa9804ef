package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/recipe"
	"pancakes/internal/core/ports"
	"pancakes/internal/pkg/errs"
)

var _ ports.RecipeCatalog = (*RecipeService)(nil)

// RecipeService owns the ingredient and recipe catalogs.
//
// Both catalogs share one lock because recipe validation reads the ingredient
// catalog and ingredient removal reads the recipe catalog.
//
// Invariants held between calls:
//   - ingredient names are unique, recipe names are unique
//   - every ingredient id referenced by a recipe exists
type RecipeService struct {
	mu sync.RWMutex

	ingredients     map[kernel.UUID]*recipe.Ingredient
	ingredientNames map[string]struct{}
	recipes         map[kernel.UUID]*recipe.Recipe
	recipeNames     map[string]struct{}
}

func NewRecipeService() *RecipeService {
	return &RecipeService{
		ingredients:     make(map[kernel.UUID]*recipe.Ingredient),
		ingredientNames: make(map[string]struct{}),
		recipes:         make(map[kernel.UUID]*recipe.Recipe),
		recipeNames:     make(map[string]struct{}),
	}
}

// CreateIngredient adds an ingredient with a fresh id.
func (s *RecipeService) CreateIngredient(name string) (*recipe.Ingredient, error) {
	ingredient, err := recipe.NewIngredient(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.ingredientNames[name]; taken {
		return nil, errs.NewConflictError("ingredient", fmt.Sprintf("name %s is taken", name))
	}

	s.ingredients[ingredient.ID()] = ingredient
	s.ingredientNames[name] = struct{}{}
	return ingredient, nil
}

// RemoveIngredient deletes an ingredient no recipe references. The conflict error
// names every recipe still using it.
func (s *RecipeService) RemoveIngredient(id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var usedBy []string
	for _, r := range s.recipes {
		if r.Uses(id) {
			usedBy = append(usedBy, r.Name())
		}
	}
	if len(usedBy) > 0 {
		slices.Sort(usedBy)
		return errs.NewConflictError("ingredient",
			fmt.Sprintf("%s is used in recipes: %s", id, strings.Join(usedBy, ", ")))
	}

	ingredient, ok := s.ingredients[id]
	if !ok {
		return errs.NewObjectNotFoundError("ingredient", id)
	}

	delete(s.ingredients, id)
	delete(s.ingredientNames, ingredient.Name())
	return nil
}

func (s *RecipeService) GetIngredientName(id kernel.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ingredient, ok := s.ingredients[id]
	if !ok {
		return "", errs.NewObjectNotFoundError("ingredient", id)
	}
	return ingredient.Name(), nil
}

// CreateRecipe adds a recipe with a fresh id and returns the id.
func (s *RecipeService) CreateRecipe(name string, ingredientIDs []kernel.UUID) (kernel.UUID, error) {
	r, err := recipe.NewRecipe(name, ingredientIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.checkIngredientsExist(ingredientIDs); err != nil {
		return kernel.UUID{}, err
	}
	if _, taken := s.recipeNames[name]; taken {
		return kernel.UUID{}, errs.NewConflictError("recipe", fmt.Sprintf("name %s is taken", name))
	}

	s.recipes[r.ID()] = r
	s.recipeNames[name] = struct{}{}
	return r.ID(), nil
}

// UpdateRecipe replaces the name and ingredient list of a recipe. A recipe may keep
// its current name; any other taken name is a conflict.
func (s *RecipeService) UpdateRecipe(id kernel.UUID, name string, ingredientIDs []kernel.UUID) error {
	if err := errors.Join(
		kernel.ValidateName("recipe name", name),
		recipe.ValidateIngredientList(ingredientIDs),
	); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIngredientsExist(ingredientIDs); err != nil {
		return err
	}

	r, ok := s.recipes[id]
	if !ok {
		return errs.NewObjectNotFoundError("recipe", id)
	}

	oldName := r.Name()
	if _, taken := s.recipeNames[name]; taken && name != oldName {
		return errs.NewConflictError("recipe", fmt.Sprintf("name %s is taken", name))
	}

	if err := r.Update(name, ingredientIDs); err != nil {
		return err
	}
	delete(s.recipeNames, oldName)
	s.recipeNames[name] = struct{}{}
	return nil
}

func (s *RecipeService) RemoveRecipe(id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recipes[id]
	if !ok {
		return errs.NewObjectNotFoundError("recipe", id)
	}

	delete(s.recipes, id)
	delete(s.recipeNames, r.Name())
	return nil
}

// GetRecipeIngredients returns a copy of the recipe's ingredient ids.
func (s *RecipeService) GetRecipeIngredients(id kernel.UUID) ([]kernel.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("recipe", id)
	}
	return r.Ingredients(), nil
}

// ViewRecipe returns the names of the recipe's ingredients in recipe order.
func (s *RecipeService) ViewRecipe(id kernel.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("recipe", id)
	}
	return s.ingredientNamesOf(r.Ingredients())
}

// ListRecipes returns id and name of every recipe sorted by name.
func (s *RecipeService) ListRecipes() []kernel.IDName {
	s.mu.RLock()
	list := make([]kernel.IDName, 0, len(s.recipes))
	for _, r := range s.recipes {
		list = append(list, kernel.IDName{ID: r.ID(), Name: r.Name()})
	}
	s.mu.RUnlock()

	slices.SortFunc(list, func(a, b kernel.IDName) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return list
}

// ValidateRecipeIngredients applies the recipe ingredient list rules to an ad-hoc list.
func (s *RecipeService) ValidateRecipeIngredients(ingredientIDs []kernel.UUID) error {
	if err := recipe.ValidateIngredientList(ingredientIDs); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.checkIngredientsExist(ingredientIDs)
}

// ResolveIngredientNames validates the list like ValidateRecipeIngredients and
// returns the names, both under one read lock.
func (s *RecipeService) ResolveIngredientNames(ingredientIDs []kernel.UUID) ([]string, error) {
	if err := recipe.ValidateIngredientList(ingredientIDs); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkIngredientsExist(ingredientIDs); err != nil {
		return nil, err
	}
	return s.ingredientNamesOf(ingredientIDs)
}

// checkIngredientsExist must be called with s.mu held.
func (s *RecipeService) checkIngredientsExist(ingredientIDs []kernel.UUID) error {
	var unknown []string
	for _, id := range ingredientIDs {
		if _, ok := s.ingredients[id]; !ok {
			unknown = append(unknown, id.String())
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("ingredients",
		fmt.Errorf("unknown ingredients: %s", strings.Join(unknown, ", ")))
}

// ingredientNamesOf must be called with s.mu held.
func (s *RecipeService) ingredientNamesOf(ingredientIDs []kernel.UUID) ([]string, error) {
	names := make([]string, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ingredient, ok := s.ingredients[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("ingredient", id)
		}
		names = append(names, ingredient.Name())
	}
	return names, nil
}
