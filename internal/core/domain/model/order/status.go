package order

import (
	"fmt"

	"pancakes/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Draft ──> Completed ──> Prepared ──> (delivered, removed)
//	  │
//	  └──> Canceled (removed)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status. Pancakes can be added and removed.
	Draft

	// Completed means the customer finished the order; it waits for the kitchen.
	Completed

	// Prepared means the kitchen is done; it waits for delivery.
	Prepared

	// Canceled is set on a draft order just before it leaves the registry.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Completed: "Completed",
		Prepared:  "Prepared",
		Canceled:  "Canceled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsLive reports whether an order in this status belongs to the live registry.
func (s Status) IsLive() bool {
	return s == Draft || s == Completed || s == Prepared
}

// ValidateModify allows pancake changes only on drafts.
func (s Status) ValidateModify() error {
	if s != Draft {
		return errs.NewConflictErrorWithCause(
			"order", "is already completed and cannot be modified", fmt.Errorf("status is %s", s))
	}
	return nil
}

// Complete transitions Draft -> Completed.
func (s Status) Complete() (Status, error) {
	if s != Draft {
		return 0, errs.NewConflictErrorWithCause("order", "is already completed", fmt.Errorf("status is %s", s))
	}
	return Completed, nil
}

// Prepare transitions Completed -> Prepared.
func (s Status) Prepare() (Status, error) {
	switch s { //nolint:exhaustive // every other status is rejected below
	case Completed:
		return Prepared, nil
	case Draft:
		return 0, errs.NewConflictError("order", "needs to be completed before it can be prepared")
	case Prepared:
		return 0, errs.NewConflictError("order", "is already prepared")
	default:
		return 0, errs.NewConflictErrorWithCause("order", "cannot be prepared", fmt.Errorf("status is %s", s))
	}
}

// ValidateDeliver allows delivery of prepared orders only. Delivery has no
// resulting status: the order leaves the registry.
func (s Status) ValidateDeliver() error {
	if s != Prepared {
		return errs.NewConflictErrorWithCause(
			"order", "needs to be prepared before it can be delivered", fmt.Errorf("status is %s", s))
	}
	return nil
}

// Cancel transitions Draft -> Canceled.
func (s Status) Cancel() (Status, error) {
	if s != Draft {
		return 0, errs.NewConflictErrorWithCause(
			"order", "is already completed and cannot be canceled", fmt.Errorf("status is %s", s))
	}
	return Canceled, nil
}
