package mal

import "fmt"

// MalError is the single carrier for everything that can go wrong
// while reading or evaluating a form: a host-detected error (wrong
// type, wrong arity, unbound symbol, ...) or a program-raised throw.
// Both normalize into this one type so every caller sees a uniform
// error channel instead of a mix of Go errors and Mal values.
type MalError struct {
	Payload Value
	thrown  bool
}

func (e *MalError) Error() string {
	if s, ok := e.Payload.(Str); ok {
		return s.Value
	}
	return PrStr(e.Payload, true)
}

// NewError wraps a host-raised message string into a MalError whose
// payload is a Str.
func NewError(format string, args ...interface{}) *MalError {
	return &MalError{Payload: Str{Value: fmt.Sprintf(format, args...)}}
}

// NewThrow wraps a user-supplied throw payload, which may be any Value.
func NewThrow(payload Value) *MalError {
	return &MalError{Payload: payload, thrown: true}
}

// isThrown reports whether err is a MalError raised by throw rather
// than detected by the host.
func isThrown(err error) bool {
	me, ok := err.(*MalError)
	return ok && me.thrown
}

// errReadNothing is the sentinel the reader returns for input that
// contains no form (only whitespace/commas/comments). The REPL treats
// it as a silent no-op; read-string surfaces it to Mal code as an
// ordinary host-raised error (not a throw) that try*/catch* can catch.
var errReadNothing = NewError("nothing to evaluate")

// isReadNothing reports whether err is the "nothing to evaluate"
// sentinel produced by an empty read.
func isReadNothing(err error) bool {
	return err == errReadNothing
}
