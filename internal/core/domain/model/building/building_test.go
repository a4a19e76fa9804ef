package building_test

import (
	"testing"

	"pancakes/internal/core/domain/model/building"
	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilding(t *testing.T) {
	t.Run("should create building with one range", func(t *testing.T) {
		b, err := building.NewBuilding(1, kernel.MustIntegerRange(101, 199))

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, 1, b.Number())
		assert.Len(t, b.Rooms(), 1)
	})

	t.Run("should accept the limits", func(t *testing.T) {
		_, err := building.NewBuilding(kernel.MaxBuildingNumber, kernel.MustIntegerRange(1, kernel.MaxRoomNumber))

		require.NoError(t, err)
	})

	tests := []struct {
		name   string
		number int
		rooms  []kernel.IntegerRange
		target error
	}{
		{"zero number", 0, []kernel.IntegerRange{kernel.MustIntegerRange(1, 2)}, errs.ErrValueIsOutOfRange},
		{"negative number", -3, []kernel.IntegerRange{kernel.MustIntegerRange(1, 2)}, errs.ErrValueIsOutOfRange},
		{"number over limit", kernel.MaxBuildingNumber + 1, []kernel.IntegerRange{kernel.MustIntegerRange(1, 2)}, errs.ErrValueIsOutOfRange},
		{"no rooms", 1, nil, errs.ErrValueIsRequired},
		{"room zero", 1, []kernel.IntegerRange{kernel.MustIntegerRange(0, 10)}, errs.ErrValueIsOutOfRange},
		{"room over limit", 1, []kernel.IntegerRange{kernel.MustIntegerRange(9000, kernel.MaxRoomNumber + 1)}, errs.ErrValueIsOutOfRange},
		{"unconstructed range", 1, []kernel.IntegerRange{{}}, errs.ErrValueIsRequired},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			b, err := building.NewBuilding(tt.number, tt.rooms...)

			require.ErrorIs(t, err, tt.target)
			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, b)
		})
	}
}

func TestBuilding_HasRoom(t *testing.T) {
	b, err := building.NewBuilding(7,
		kernel.MustIntegerRange(101, 110),
		kernel.MustIntegerRange(201, 210),
	)
	require.NoError(t, err)

	assert.True(t, b.HasRoom(101))
	assert.True(t, b.HasRoom(205))
	assert.False(t, b.HasRoom(150))
	assert.False(t, b.HasRoom(211))
}

func TestBuilding_RoomsIsACopy(t *testing.T) {
	input := []kernel.IntegerRange{kernel.MustIntegerRange(1, 5)}
	b, err := building.NewBuilding(2, input...)
	require.NoError(t, err)

	input[0] = kernel.MustIntegerRange(100, 200)
	rooms := b.Rooms()
	rooms[0] = kernel.MustIntegerRange(300, 400)

	assert.True(t, b.HasRoom(3))
	assert.False(t, b.HasRoom(150))
	assert.Equal(t, 1, b.Rooms()[0].Start())
}

func TestBuilding_Validate(t *testing.T) {
	var b *building.Building

	assert.Equal(t, building.ErrBuildingIsNotConstructed, b.Validate())
	assert.Equal(t, building.ErrBuildingIsNotConstructed, (&building.Building{}).Validate())
}
