package repl

import "fmt"

// Location names a line in a loaded file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// LineError is the failure of one line of a loaded file.
type LineError struct {
	Location
	Err error
}

func (le *LineError) Error() string { return fmt.Sprintf("%v: %v", le.Location, le.Err) }
func (le *LineError) Unwrap() error { return le.Err }
