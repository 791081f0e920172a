package motion

// Sequence is a named one-shot animation signal owned by a single page render.
// Once started it stays started; later Start calls are no-ops.
type Sequence struct {
	name    string
	started bool
}

// NewSequence returns a sequence that has not started.
func NewSequence(name string) *Sequence {
	return &Sequence{name: name}
}

// Name returns the sequence name subscribers are keyed to.
func (s *Sequence) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Start marks the sequence as started and reports whether this call did it.
// Starting a nil sequence does nothing.
func (s *Sequence) Start() bool {
	if s == nil || s.started {
		return false
	}
	s.started = true
	return true
}

// Started reports whether Start has been called. A nil sequence never starts.
func (s *Sequence) Started() bool {
	return s != nil && s.started
}
