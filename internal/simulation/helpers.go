package simulation

import "sync"

// Recorder is an Observer that keeps every failure event it sees.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []FailureEvent
}

// OnFailure records e.
func (r *Recorder) OnFailure(e FailureEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []FailureEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FailureEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Replacements returns only the events that replaced the whole unit.
func (r *Recorder) Replacements() []FailureEvent {
	var out []FailureEvent
	for _, e := range r.Events() {
		if e.ReplacedUnit {
			out = append(out, e)
		}
	}
	return out
}

// CountByComponent tallies failures per component name.
func (r *Recorder) CountByComponent() map[string]int {
	counts := make(map[string]int)
	for _, e := range r.Events() {
		counts[e.Component]++
	}
	return counts
}
