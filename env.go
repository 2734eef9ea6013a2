// env.go implements Shark's lexically-scoped environment chain.
package shark

// Env is one frame of bindings, chained to its lexical parent. The global
// frame has a nil parent.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a fresh frame chained to parent (nil for a global frame).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Define always creates a new binding in this frame, shadowing any binding
// of the same name in an outer frame.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get walks the frame chain from innermost to outermost and returns the
// first binding found.
func (e *Env) Get(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Set updates the nearest frame containing name, walking outward from e. It
// reports false if no frame defines name.
func (e *Env) Set(name string, v Value) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.table[name]; ok {
			f.table[name] = v
			return true
		}
	}
	return false
}

// snapshot captures the current bindings of this single frame, for the
// REPL's rollback of a failed line. Shark has no aliased mutable heap
// objects (operations on arrays return new arrays), so restoring the global
// frame's binding set undoes every effect a failed line had on that frame.
// Other frames are not covered: an assignment made through a closure to a
// variable of a frame that closure captured (a frame other than this one)
// is not undone by restore.
func (e *Env) snapshot() map[string]Value {
	cp := make(map[string]Value, len(e.table))
	for k, v := range e.table {
		cp[k] = v
	}
	return cp
}

// restore replaces this frame's bindings with a previously captured
// snapshot, discarding anything defined or updated since.
func (e *Env) restore(snap map[string]Value) {
	e.table = snap
}
