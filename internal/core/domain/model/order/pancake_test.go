package order_test

import (
	"testing"

	"pancakes/internal/core/domain/model/order"
	"pancakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPancake(t *testing.T) {
	t.Run("should render description", func(t *testing.T) {
		p, err := order.NewPancake([]string{"Dark chocolate", "Whipped cream"})

		require.NoError(t, err)
		require.NoError(t, p.ID().Validate())
		assert.Equal(t, "Delicious pancake with Dark chocolate, Whipped cream!", p.Description())
	})

	t.Run("should reject empty ingredients", func(t *testing.T) {
		p, err := order.NewPancake(nil)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, p)
	})

	t.Run("should keep its own copy of ingredients", func(t *testing.T) {
		names := []string{"Honey"}
		p, _ := order.NewPancake(names)

		names[0] = "Salt"
		got := p.Ingredients()
		got[0] = "Pepper"

		assert.Equal(t, []string{"Honey"}, p.Ingredients())
	})
}

func TestPancake_IsEqual(t *testing.T) {
	a, _ := order.NewPancake([]string{"Honey"})
	b, _ := order.NewPancake([]string{"Honey"})

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
