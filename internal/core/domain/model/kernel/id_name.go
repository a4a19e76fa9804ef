package kernel

import (
	"errors"

	"pancakes/internal/pkg/errs"
)

// IDName pairs an entity id with its display name, as returned by catalog listings.
type IDName struct {
	ID   UUID
	Name string
}

// NewIDName rejects an unconstructed id or an empty name.
func NewIDName(id UUID, name string) (IDName, error) {
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return IDName{}, err
	}
	return IDName{ID: id, Name: name}, nil
}
