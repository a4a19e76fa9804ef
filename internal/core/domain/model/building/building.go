// Package building provides the Building entity: a numbered structure whose
// valid room numbers are described by one or more inclusive ranges.
package building

import (
	"errors"
	"fmt"

	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/pkg/errs"
)

var ErrBuildingIsNotConstructed = errors.New("Building must be created via NewBuilding constructor")

// Building is immutable once created. Rooms returns a copy of the ranges.
type Building struct {
	number        int
	rooms         []kernel.IntegerRange
	isConstructed bool
}

// NewBuilding validates the building number against (0, MaxBuildingNumber] and
// every range against (0, MaxRoomNumber]. At least one range is required.
func NewBuilding(number int, rooms ...kernel.IntegerRange) (*Building, error) {
	b := &Building{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setNumber(number),
		b.setRooms(rooms),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Building) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBuildingIsNotConstructed
	}
	return nil
}

func (b *Building) Number() int {
	return b.number
}

// Rooms returns a copy of the room ranges in their original order.
func (b *Building) Rooms() []kernel.IntegerRange {
	rooms := make([]kernel.IntegerRange, len(b.rooms))
	copy(rooms, b.rooms)
	return rooms
}

// HasRoom reports whether any range contains room.
func (b *Building) HasRoom(room int) bool {
	for _, r := range b.rooms {
		if r.Contains(room) {
			return true
		}
	}
	return false
}

func (b *Building) setNumber(number int) error {
	if number <= 0 || number > kernel.MaxBuildingNumber {
		return errs.NewValueIsOutOfRangeError("building number", number, 1, kernel.MaxBuildingNumber)
	}
	b.number = number
	return nil
}

func (b *Building) setRooms(rooms []kernel.IntegerRange) error {
	if len(rooms) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("rooms", fmt.Errorf("building must have at least one room"))
	}

	var problems []error
	for i, r := range rooms {
		if err := r.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if r.Start() <= 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("rooms[%d] start", i), r.Start(), 1, kernel.MaxRoomNumber))
		}
		if r.End() > kernel.MaxRoomNumber {
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("rooms[%d] end", i), r.End(), 1, kernel.MaxRoomNumber))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	b.rooms = make([]kernel.IntegerRange, len(rooms))
	copy(b.rooms, rooms)
	return nil
}
