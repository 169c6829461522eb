package ir

import "fmt"

// NameMismatchError reports a failed narrowing conversion from a generic
// operation to a named wrapper whose expected name differs.
type NameMismatchError struct {
	Expected string
	Actual   string
}

func (e NameMismatchError) Error() string {
	return fmt.Sprintf("operation name mismatch: expected %q, got %q", e.Expected, e.Actual)
}
