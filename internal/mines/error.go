package mines

import "fmt"

// AssertionError reports a broken engine invariant: an out-of-range
// coordinate, a second mine placement, an unknown cell content. These are
// programming errors and are raised with panic.
type AssertionError struct {
	message string
}

func Assertionf(format string, args ...any) AssertionError {
	return AssertionError{fmt.Sprintf(format, args...)}
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
