// Package panicerr turns panics into ordinary error values.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Error is a recovered panic.
type Error struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *Error) Error() string {
	if pe.Name == "" {
		return fmt.Sprintf("panic: %v", pe.Value)
	}
	return fmt.Sprintf("panic in %v: %v", pe.Name, pe.Value)
}

// Format adds the panic stack under %+v.
func (pe *Error) Format(f fmt.State, c rune) {
	fmt.Fprint(f, pe.Error())
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value when it was an error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// Recover calls f on the calling goroutine, returning any panic inside it as
// an *Error.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &Error{Name: name, Value: v, Stack: debug.Stack()}
		}
	}()
	return f()
}

// IsPanic returns true if err indicates a recovered panic.
func IsPanic(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}

// PanicStack returns a non-empty stacktrace string if err is a recovered
// panic.
func PanicStack(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
