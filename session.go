// session.go exposes Shark's two external entry points: a one-shot
// EvaluateSource and a persistent Session for REPL use.
package shark

// EvaluateSource parses and evaluates text as a complete, self-contained
// program: a fresh interpreter and global frame, every top-level statement
// evaluated in order, aborting on the first error.
func EvaluateSource(text string) error {
	prog, err := Parse(text)
	if err != nil {
		return WrapErrorWithSource(err)
	}
	ip := NewInterpreter()
	if err := ip.Run(prog); err != nil {
		return WrapErrorWithSource(err)
	}
	return nil
}

// Session holds a persistent global frame across repeated EvaluateLine
// calls, as a REPL does. It is not safe for concurrent use: evaluation is
// single-threaded and synchronous.
type Session struct {
	ip *Interpreter
}

// NewSession creates a Session with a fresh global frame, built-ins
// registered exactly as EvaluateSource's interpreter is.
func NewSession() *Session {
	return &Session{ip: NewInterpreter()}
}

// EvaluateLine parses zero or more top-level statements from text and
// evaluates them against the session's persistent global frame. It returns
// the display form of the last expression statement (if any), and whether
// such a display value exists. On error, the session's global frame is
// rolled back to its state before this call so a failing line leaves no
// partial effect, and the error is returned for the caller to report; the
// session remains usable for the next line.
func (s *Session) EvaluateLine(text string) (display string, hasDisplay bool, err error) {
	prog, perr := Parse(text)
	if perr != nil {
		return "", false, WrapErrorWithSource(perr)
	}

	snap := s.ip.Global.snapshot()

	var last Value
	var lastOK bool
	for _, stmt := range prog.Statements {
		v, ok, rerr := s.ip.evalTopLevelStatement(stmt, s.ip.Global)
		if rerr != nil {
			s.ip.Global.restore(snap)
			return "", false, WrapErrorWithSource(rerr)
		}
		last, lastOK = v, ok
	}
	if lastOK {
		return Display(last), true, nil
	}
	return "", false, nil
}
