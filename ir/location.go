package ir

import "fmt"

// Location is a source position attached to an operation.
type Location struct {
	file   string
	line   int
	column int
}

// NewLocation creates a file location.
func NewLocation(file string, line, column int) Location {
	return Location{file: file, line: line, column: column}
}

// UnknownLocation creates a location without source information.
func UnknownLocation() Location {
	return Location{}
}

func (l Location) String() string {
	if l.file == "" {
		return "loc(unknown)"
	}
	return fmt.Sprintf("loc(%q:%d:%d)", l.file, l.line, l.column)
}
