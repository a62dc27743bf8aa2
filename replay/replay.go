// Package replay applies a sortviz step trace to a copy of an item slice,
// validating every step against the trace invariants as it goes. It is the
// reference consumer of the step vocabulary: a renderer that interprets
// steps the way this package does will always animate a legal sequence, and
// tests use it to check that a trace replays to the directly sorted array.
package replay

import (
	"fmt"

	"github.com/lanrat/sortviz"
)

// StepError reports a step that violates the trace invariants: an index out
// of bounds, a nested or unbalanced hold, or a joining-area slot conflict.
type StepError struct {
	// Pos is the offset of the offending step in the trace
	Pos int
	// Step is the offending step
	Step sortviz.Step
	// Reason describes the violation
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("replay: step %d %s: %s", e.Pos, e.Step, e.Reason)
}

// Replayer applies steps one at a time to its own copy of an item slice. It
// tracks the lifted item of an open hold and the occupancy of the joining
// area, so every invariant violation is caught at the step that commits it.
type Replayer[E any] struct {
	arr    []E
	pos    int
	held   *E
	hole   int
	joined []*E
	moved  []bool
}

// New copies items into a fresh Replayer. The caller's slice is not touched
// by subsequent Apply calls.
func New[E any](items []E) *Replayer[E] {
	r := &Replayer[E]{
		arr:    make([]E, len(items)),
		joined: make([]*E, len(items)),
		moved:  make([]bool, len(items)),
	}
	copy(r.arr, items)
	return r
}

// Items returns the current arrangement. The result aliases the replayer's
// working array; callers that keep it across Apply calls should copy it.
func (r *Replayer[E]) Items() []E {
	return r.arr
}

// Apply replays one step, mutating the working array.
func (r *Replayer[E]) Apply(step sortviz.Step) error {
	defer func() { r.pos++ }()
	switch s := step.(type) {
	case sortviz.Compare:
		if err := r.check(step, s.I); err != nil {
			return err
		}
		return r.check(step, s.J)
	case sortviz.Swap:
		if err := r.check(step, s.I); err != nil {
			return err
		}
		if err := r.check(step, s.J); err != nil {
			return err
		}
		r.arr[s.I], r.arr[s.J] = r.arr[s.J], r.arr[s.I]
		return nil
	case sortviz.Hold:
		if err := r.check(step, s.Index); err != nil {
			return err
		}
		if r.held != nil {
			return r.fail(step, "hold while a hold is already open")
		}
		held := r.arr[s.Index]
		r.held = &held
		r.hole = s.Index
		return nil
	case sortviz.Unhold:
		if r.held == nil {
			return r.fail(step, "unhold without an open hold")
		}
		r.arr[r.hole] = *r.held
		r.held = nil
		return nil
	case sortviz.Slide:
		if err := r.check(step, s.From); err != nil {
			return err
		}
		if err := r.check(step, s.To); err != nil {
			return err
		}
		if r.held != nil && s.To != r.hole {
			return r.fail(step, fmt.Sprintf("slide into %d but the hole is at %d", s.To, r.hole))
		}
		r.arr[s.To] = r.arr[s.From]
		r.hole = s.From
		return nil
	case sortviz.Join:
		if err := r.check(step, s.From); err != nil {
			return err
		}
		if err := r.check(step, s.To); err != nil {
			return err
		}
		if r.moved[s.From] {
			return r.fail(step, fmt.Sprintf("position %d already moved to the joining area", s.From))
		}
		if r.joined[s.To] != nil {
			return r.fail(step, fmt.Sprintf("joining slot %d already occupied", s.To))
		}
		item := r.arr[s.From]
		r.joined[s.To] = &item
		r.moved[s.From] = true
		return nil
	case sortviz.MergeComplete:
		for i, item := range r.joined {
			if item != nil {
				r.arr[i] = *item
				r.joined[i] = nil
			}
			r.moved[i] = false
		}
		return nil
	default:
		return r.fail(step, "unknown step variant")
	}
}

// Finish verifies that the trace left nothing dangling: no open hold and an
// empty joining area.
func (r *Replayer[E]) Finish() error {
	if r.held != nil {
		return &StepError{Pos: r.pos, Step: sortviz.Hold{Index: r.hole}, Reason: "trace ended with an open hold"}
	}
	for i, item := range r.joined {
		if item != nil {
			return &StepError{Pos: r.pos, Step: sortviz.Join{To: i}, Reason: "trace ended with an occupied joining area"}
		}
	}
	return nil
}

func (r *Replayer[E]) check(step sortviz.Step, index int) error {
	if index < 0 || index >= len(r.arr) {
		return r.fail(step, fmt.Sprintf("index %d out of range [0, %d)", index, len(r.arr)))
	}
	return nil
}

func (r *Replayer[E]) fail(step sortviz.Step, reason string) error {
	return &StepError{Pos: r.pos, Step: step, Reason: reason}
}

// Apply replays a whole trace against a copy of items and returns the final
// arrangement. The input slice is never mutated.
func Apply[E any](items []E, steps []sortviz.Step) ([]E, error) {
	r := New(items)
	for _, step := range steps {
		if err := r.Apply(step); err != nil {
			return nil, err
		}
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return r.Items(), nil
}
