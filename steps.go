package sortviz

import "fmt"

// Intensity is the visual weight of a Compare step. A small compare is a
// plain inspection; a large compare is one that triggered a swap.
type Intensity int

const (
	// IntensitySmall marks an ordinary comparison.
	IntensitySmall Intensity = iota

	// IntensityLarge marks a comparison that caused the pair to be swapped.
	IntensityLarge
)

func (i Intensity) String() string {
	switch i {
	case IntensitySmall:
		return "small"
	case IntensityLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Step is one atomic, replayable operation in a sort trace. The set of
// implementations is closed: Compare, Swap, Hold, Unhold, Slide, Join and
// MergeComplete. Steps carry positions in the coordinate space of the
// original array; they never carry values or timestamps. Pacing and drawing
// are the renderer's concern.
type Step interface {
	fmt.Stringer

	// step is the marker method that closes the set.
	step()
}

// Compare highlights the items at positions I and J while they are compared.
type Compare struct {
	I, J      int
	Intensity Intensity
}

// Swap exchanges the contents of positions I and J.
type Swap struct {
	I, J int
}

// Hold lifts the item at Index out of the array. Insertion sort holds the
// item being inserted while its neighbors slide right underneath it.
type Hold struct {
	Index int
}

// Unhold places the most recently held item back into the array. It carries
// no index: the destination is the insertion point reached by the Slide
// steps since the matching Hold (the hold position itself if none occurred).
type Unhold struct{}

// Slide shifts a single item from position From to position To without a
// full swap. To is always directly adjacent to From.
type Slide struct {
	From, To int
}

// Join moves the item at array position From into the joining area (the
// merge buffer) at absolute position To. Both coordinates are expressed
// against the original array length, never a sub-array.
type Join struct {
	From, To int
}

// MergeComplete marks the end of one merge: every slot of the joining area
// collapses back into the main array at the same absolute position.
type MergeComplete struct{}

func (Compare) step()       {}
func (Swap) step()          {}
func (Hold) step()          {}
func (Unhold) step()        {}
func (Slide) step()         {}
func (Join) step()          {}
func (MergeComplete) step() {}

func (s Compare) String() string {
	return fmt.Sprintf("compare(%d, %d, %s)", s.I, s.J, s.Intensity)
}

func (s Swap) String() string {
	return fmt.Sprintf("swap(%d, %d)", s.I, s.J)
}

func (s Hold) String() string {
	return fmt.Sprintf("hold(%d)", s.Index)
}

func (Unhold) String() string {
	return "unhold"
}

func (s Slide) String() string {
	return fmt.Sprintf("slide(%d, %d)", s.From, s.To)
}

func (s Join) String() string {
	return fmt.Sprintf("join(%d, %d)", s.From, s.To)
}

func (MergeComplete) String() string {
	return "merge-complete"
}
