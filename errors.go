package gridsweep

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jkingslake/gridsweep/grid"
)

var (
	// ErrInvalidParameter indicates malformed sweep input: a nil function,
	// an empty parameter set, an empty value list, or a bad option value.
	// Detected before any function invocation.
	ErrInvalidParameter = errors.New("gridsweep: invalid parameter")

	// ErrInconsistentShape indicates the function returned values of
	// differing structure across combinations.
	ErrInconsistentShape = errors.New("gridsweep: inconsistent result shape")
)

// CombinationError wraps a failure raised by the swept function, attaching
// the combination that triggered it.
type CombinationError struct {
	Combination grid.Combination
	Err         error
}

// Error renders the failing combination with parameter names in sorted order
// so the message is deterministic.
func (e *CombinationError) Error() string {
	names := make([]string, 0, len(e.Combination.Values))
	for name := range e.Combination.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + e.Combination.Values[name].GoString()
	}
	return fmt.Sprintf("gridsweep: combination %d (%s): %v",
		e.Combination.Index, strings.Join(parts, ", "), e.Err)
}

// Unwrap returns the underlying function error.
func (e *CombinationError) Unwrap() error { return e.Err }
