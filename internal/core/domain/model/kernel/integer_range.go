package kernel

import (
	"errors"
	"fmt"

	"pancakes/internal/pkg/errs"
	"pancakes/internal/pkg/guard"
)

var ErrIntegerRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"integer range must be created via NewIntegerRange")

// IntegerRange is an inclusive interval [start, end] of non-negative integers.
// Buildings describe their valid room numbers as a list of ranges.
type IntegerRange struct { //nolint:recvcheck //using for validation
	start int
	end   int
	guard guard.ConstructorGuard
}

// NewIntegerRange validates that both bounds are non-negative and start <= end.
func NewIntegerRange(start int, end int) (IntegerRange, error) {
	r := IntegerRange{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setStart(start), r.setEnd(end)); err != nil {
		return IntegerRange{}, err
	}

	if start > end {
		return IntegerRange{}, errs.NewValueIsInvalidErrorWithCause(
			"range", fmt.Errorf("start %d is greater than end %d", start, end))
	}

	return r, nil
}

// MustIntegerRange is NewIntegerRange for bounds known to be valid. It panics otherwise.
func MustIntegerRange(start int, end int) IntegerRange {
	r, err := NewIntegerRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func (r IntegerRange) Validate() error {
	return r.guard.Validate(ErrIntegerRangeIsNotConstructed)
}

func (r IntegerRange) Start() int {
	return r.start
}

func (r IntegerRange) End() int {
	return r.end
}

// Contains reports whether start <= v <= end.
func (r IntegerRange) Contains(v int) bool {
	return v >= r.start && v <= r.end
}

func (r IntegerRange) String() string {
	return fmt.Sprintf("[%d..%d]", r.start, r.end)
}

func (r *IntegerRange) setStart(start int) error {
	if start < 0 {
		return errs.NewValueIsInvalidErrorWithCause("range start", fmt.Errorf("%d is negative", start))
	}
	r.start = start
	return nil
}

func (r *IntegerRange) setEnd(end int) error {
	if end < 0 {
		return errs.NewValueIsInvalidErrorWithCause("range end", fmt.Errorf("%d is negative", end))
	}
	r.end = end
	return nil
}
