package tween

import "gonum.org/v1/gonum/spatial/r3"

// Sequence runs interpolators back to back: each step must complete
// before the next begins. A back-and-forth platform patrol is two
// position eases in a sequence.
//
// A step that returns false from Update without reporting complete (for
// example a step whose target went missing) stalls the sequence rather
// than skipping ahead.
type Sequence struct {
	steps []Interpolator
	index int
}

// NewSequence creates a sequence over the given steps.
func NewSequence(steps ...Interpolator) *Sequence {
	return &Sequence{steps: steps}
}

// Add appends steps to the sequence.
func (s *Sequence) Add(steps ...Interpolator) {
	s.steps = append(s.steps, steps...)
}

// Update advances the current step and reports whether the sequence is
// still running.
func (s *Sequence) Update(deltaTime float64) bool {
	if s.index >= len(s.steps) {
		return false
	}

	step := s.steps[s.index]
	if step.Update(deltaTime) {
		return true
	}

	if !step.IsComplete() {
		// Stalled, not finished. Keep retrying this step.
		return false
	}

	s.index++
	return s.index < len(s.steps)
}

// IsComplete reports whether every step has completed.
func (s *Sequence) IsComplete() bool {
	return s.index >= len(s.steps)
}

// Value returns the most recent value of the active step, or of the last
// step once the sequence has completed.
func (s *Sequence) Value() r3.Vec {
	if len(s.steps) == 0 {
		return r3.Vec{}
	}
	i := s.index
	if i >= len(s.steps) {
		i = len(s.steps) - 1
	}
	return s.steps[i].Value()
}

// Reset rewinds the sequence to its first step and resets every step.
func (s *Sequence) Reset() {
	for _, step := range s.steps {
		step.Reset()
	}
	s.index = 0
}
