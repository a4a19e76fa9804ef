package services

import (
	"fmt"
	"slices"
	"sync"

	"pancakes/internal/core/domain/model/building"
	"pancakes/internal/core/domain/model/kernel"
	"pancakes/internal/core/ports"
	"pancakes/internal/pkg/errs"
)

var _ ports.RoomChecker = (*BuildingService)(nil)

// BuildingService owns the building catalog keyed by building number.
type BuildingService struct {
	mu        sync.RWMutex
	buildings map[int]*building.Building
}

func NewBuildingService() *BuildingService {
	return &BuildingService{
		buildings: make(map[int]*building.Building),
	}
}

// AddBuilding registers a building with its room ranges. A number that is already
// registered is rejected as invalid input.
func (s *BuildingService) AddBuilding(number int, rooms ...kernel.IntegerRange) error {
	b, err := building.NewBuilding(number, rooms...)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buildings[number]; ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"building number", fmt.Errorf("building %d already exists", number))
	}
	s.buildings[number] = b
	return nil
}

// RemoveBuilding deletes the building. Orders already placed for it are not checked.
func (s *BuildingService) RemoveBuilding(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buildings[number]; !ok {
		return errs.NewObjectNotFoundError("building", number)
	}
	delete(s.buildings, number)
	return nil
}

// GetBuilding returns the building and whether it exists.
func (s *BuildingService) GetBuilding(number int) (*building.Building, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.buildings[number]
	return b, ok
}

// CheckRoom fails with a not-found error when the building is unknown or has no
// range containing the room.
func (s *BuildingService) CheckRoom(number int, room int) error {
	b, ok := s.GetBuilding(number)
	if !ok {
		return errs.NewObjectNotFoundErrorWithCause("building", number, fmt.Errorf("building not found"))
	}
	if !b.HasRoom(room) {
		return errs.NewObjectNotFoundErrorWithCause("room", room,
			fmt.Errorf("room not found in building %d", number))
	}
	return nil
}

// ListBuildings returns the registered building numbers in ascending order.
func (s *BuildingService) ListBuildings() []int {
	s.mu.RLock()
	numbers := make([]int, 0, len(s.buildings))
	for n := range s.buildings {
		numbers = append(numbers, n)
	}
	s.mu.RUnlock()

	slices.Sort(numbers)
	return numbers
}
