package recipe_test

import (
	"testing"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/recipe"
	"pancakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []kernel.UUID {
	out := make([]kernel.UUID, n)
	for i := range out {
		out[i] = kernel.NewUUID()
	}
	return out
}

func TestNewRecipe(t *testing.T) {
	t.Run("should create recipe", func(t *testing.T) {
		ingredients := ids(2)

		r, err := recipe.NewRecipe("Sweet Pancake", ingredients)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Sweet Pancake", r.Name())
		assert.Equal(t, ingredients, r.Ingredients())
		assert.True(t, r.Uses(ingredients[1]))
		assert.False(t, r.Uses(kernel.NewUUID()))
	})

	t.Run("should accept the maximum number of ingredients", func(t *testing.T) {
		_, err := recipe.NewRecipe("Loaded", ids(kernel.MaxNumberOfIngredients))

		require.NoError(t, err)
	})

	t.Run("should reject too many ingredients", func(t *testing.T) {
		r, err := recipe.NewRecipe("Overloaded", ids(kernel.MaxNumberOfIngredients+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, r)
	})

	t.Run("should reject empty ingredient list", func(t *testing.T) {
		_, err := recipe.NewRecipe("Plain", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed ingredient id", func(t *testing.T) {
		_, err := recipe.NewRecipe("Broken", []kernel.UUID{{}})

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should report name and list problems together", func(t *testing.T) {
		_, err := recipe.NewRecipe("", nil)

		assert.Contains(t, err.Error(), "recipe name")
		assert.Contains(t, err.Error(), "ingredients")
	})
}

func TestRecipe_DefensiveCopies(t *testing.T) {
	ingredients := ids(2)
	r, err := recipe.NewRecipe("Sweet Pancake", ingredients)
	require.NoError(t, err)

	original := ingredients[0]
	ingredients[0] = kernel.NewUUID()
	got := r.Ingredients()
	got[1] = kernel.NewUUID()

	assert.True(t, r.Ingredients()[0].IsEqual(original))
	assert.Len(t, r.Ingredients(), 2)
	assert.False(t, r.Uses(got[1]))
}

func TestRecipe_Update(t *testing.T) {
	t.Run("should replace name and ingredients", func(t *testing.T) {
		r, _ := recipe.NewRecipe("Old", ids(1))
		next := ids(3)

		require.NoError(t, r.Update("New", next))

		assert.Equal(t, "New", r.Name())
		assert.Equal(t, next, r.Ingredients())
	})

	t.Run("should leave recipe unchanged on error", func(t *testing.T) {
		before := ids(1)
		r, _ := recipe.NewRecipe("Old", before)

		err := r.Update("New", nil)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "Old", r.Name())
		assert.Equal(t, before, r.Ingredients())
	})
}

func TestRecipe_IsEqual(t *testing.T) {
	r, _ := recipe.NewRecipe("A", ids(1))
	other, _ := recipe.NewRecipe("A", r.Ingredients())

	assert.True(t, r.IsEqual(r))
	assert.False(t, r.IsEqual(other))
	assert.False(t, r.IsEqual(nil))
}
