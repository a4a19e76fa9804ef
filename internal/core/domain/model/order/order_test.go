package order_test

import (
	"testing"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/domain/model/order"
	"pancakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, 101)
	require.NoError(t, err)
	return o
}

func newPancake(t *testing.T, names ...string) *order.Pancake {
	t.Helper()
	p, err := order.NewPancake(names)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	t.Run("should create draft order", func(t *testing.T) {
		o, err := order.NewOrder(1, 101)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.Equal(t, 1, o.Building())
		assert.Equal(t, 101, o.Room())
		assert.Equal(t, order.Draft, o.Status())
		assert.Zero(t, o.PancakeCount())
		assert.Empty(t, o.Pancakes())
	})

	t.Run("should report building and room errors together", func(t *testing.T) {
		o, err := order.NewOrder(0, -1)

		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "building")
		assert.Contains(t, err.Error(), "room")
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_IsEqual(t *testing.T) {
	a := newDraft(t)
	b := newDraft(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}

func TestOrder_AddPancake(t *testing.T) {
	t.Run("should keep insertion order", func(t *testing.T) {
		o := newDraft(t)
		first := newPancake(t, "Honey")
		second := newPancake(t, "Jam")

		require.NoError(t, o.AddPancake(first))
		require.NoError(t, o.AddPancake(second))

		assert.Equal(t, 2, o.PancakeCount())
		assert.Equal(t, []*order.Pancake{first, second}, o.Pancakes())
	})

	t.Run("should reject the same pancake twice", func(t *testing.T) {
		o := newDraft(t)
		p := newPancake(t, "Honey")
		require.NoError(t, o.AddPancake(p))

		err := o.AddPancake(p)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 1, o.PancakeCount())
	})

	t.Run("should reject nil", func(t *testing.T) {
		require.ErrorIs(t, newDraft(t).AddPancake(nil), errs.ErrValidation)
	})

	t.Run("should reject when not a draft", func(t *testing.T) {
		o := newDraft(t)
		require.NoError(t, o.Complete())

		err := o.AddPancake(newPancake(t, "Honey"))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Zero(t, o.PancakeCount())
	})

	t.Run("listing is a copy", func(t *testing.T) {
		o := newDraft(t)
		require.NoError(t, o.AddPancake(newPancake(t, "Honey")))

		list := o.Pancakes()
		list[0] = nil

		assert.NotNil(t, o.Pancakes()[0])
	})
}

func TestOrder_RemovePancakes(t *testing.T) {
	t.Run("should remove all given pancakes", func(t *testing.T) {
		o := newDraft(t)
		a, b, c := newPancake(t, "A"), newPancake(t, "B"), newPancake(t, "C")
		for _, p := range []*order.Pancake{a, b, c} {
			require.NoError(t, o.AddPancake(p))
		}

		require.NoError(t, o.RemovePancakes([]kernel.UUID{a.ID(), c.ID()}))

		assert.Equal(t, []*order.Pancake{b}, o.Pancakes())
	})

	t.Run("should stop at the first unknown id keeping earlier removals", func(t *testing.T) {
		o := newDraft(t)
		a, b := newPancake(t, "A"), newPancake(t, "B")
		require.NoError(t, o.AddPancake(a))
		require.NoError(t, o.AddPancake(b))

		err := o.RemovePancakes([]kernel.UUID{a.ID(), kernel.NewUUID(), b.ID()})

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, []*order.Pancake{b}, o.Pancakes())
	})

	t.Run("should reject when not a draft", func(t *testing.T) {
		o := newDraft(t)
		p := newPancake(t, "A")
		require.NoError(t, o.AddPancake(p))
		require.NoError(t, o.Complete())

		err := o.RemovePancakes([]kernel.UUID{p.ID()})

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 1, o.PancakeCount())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should go draft to completed to prepared and allow delivery", func(t *testing.T) {
		o := newDraft(t)

		require.ErrorIs(t, o.Deliver(), errs.ErrConflict)
		require.ErrorIs(t, o.Prepare(), errs.ErrConflict)
		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())

		require.ErrorIs(t, o.Complete(), errs.ErrConflict)
		require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
		require.NoError(t, o.Prepare())
		assert.Equal(t, order.Prepared, o.Status())

		require.ErrorIs(t, o.Prepare(), errs.ErrConflict)
		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Prepared, o.Status())
	})

	t.Run("should cancel a draft", func(t *testing.T) {
		o := newDraft(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Canceled, o.Status())
		require.ErrorIs(t, o.Complete(), errs.ErrConflict)
		require.ErrorIs(t, o.Cancel(), errs.ErrConflict)
	})
}
