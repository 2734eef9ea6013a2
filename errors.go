// errors.go defines the runtime error taxonomy and the single user-visible
// rendering shared by lex, parse and runtime failures.
package shark

import "fmt"

// RuntimeError is raised by the evaluator and built-ins. Kind names the
// taxonomy entry below; Line is 1-based and 0 when unknown (e.g. errors
// raised outside evaluation of a specific AST node).
type RuntimeError struct {
	Kind string
	Msg  string
	Line int
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d)", e.Kind, e.Msg, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newRuntimeError(kind, msg string, line int) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: msg, Line: line}
}

// Error kind names, the full runtime error taxonomy.
const (
	KindNameError      = "NameError"
	KindTypeError      = "TypeError"
	KindArityError     = "ArityError"
	KindShapeMismatch  = "ShapeMismatch"
	KindDivisionByZero = "DivisionByZero"
	KindEmptyReduction = "EmptyReduction"
	KindIndexError     = "IndexError"
)

// shkPanic is the internal control-flow signal used to unwind the Go call
// stack back to the nearest statement-evaluation boundary on a runtime
// failure: evaluation code panics with this type and never with a bare
// string or a *RuntimeError directly, so there is exactly one recover()
// site per evaluation entry point (Interpreter.Run for EvaluateSource,
// Interpreter.evalTopLevelStatement for Session.EvaluateLine) that converts
// it into a Go error.
type shkPanic struct {
	err *RuntimeError
}

func fail(kind, msg string, line int) {
	panic(shkPanic{err: newRuntimeError(kind, msg, line)})
}

// WrapErrorWithSource renders any Shark error (LexError, ParseError,
// RuntimeError) into the user-visible one-line format. Errors of other
// types are returned unchanged, formatted via their own Error().
func WrapErrorWithSource(err error) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("LexError: %s (line %d)", e.Msg, e.Line)
	case *ParseError:
		return fmt.Errorf("ParseError: expected %s, found %s (line %d)", e.Expected, e.Found, e.Line)
	case *RuntimeError:
		return fmt.Errorf("%s", e.Error())
	default:
		return err
	}
}
