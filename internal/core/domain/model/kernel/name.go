package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pancakes/internal/pkg/errs"
)

// ValidateName checks the rule shared by ingredient and recipe names: not blank
// and at most MaxNameLength characters.
func ValidateName(paramName string, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredErrorWithCause(paramName, fmt.Errorf("name cannot be blank"))
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError(paramName+" length", n, 1, MaxNameLength)
	}
	return nil
}
