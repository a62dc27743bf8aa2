package sortviz

import "fmt"

// Algorithm selects which sorting algorithm generates the trace.
type Algorithm int

const (
	// BubbleSort compares adjacent pairs and bubbles larger items upward.
	BubbleSort Algorithm = iota

	// InsertionSort lifts each item out and slides its neighbors right
	// until the insertion point is found.
	InsertionSort

	// SelectionSort scans for the minimum of the unsorted suffix and swaps
	// it into place.
	SelectionSort

	// MergeSort recursively splits, sorts and merges through the joining
	// area. The only stable algorithm in the set.
	MergeSort

	// StupidSort shuffles repeatedly instead of sorting. A demonstration of
	// what not to do.
	StupidSort

	numAlgorithms // keep last
)

// Next returns the algorithm that follows a in the demonstration cycle:
// bubble, insertion, selection, merge, stupid, and back to bubble. Any
// out-of-range value maps to BubbleSort so Next is total.
func (a Algorithm) Next() Algorithm {
	if a < BubbleSort || a >= numAlgorithms {
		return BubbleSort
	}
	return (a + 1) % numAlgorithms
}

// Algorithms returns every algorithm in cycle order.
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, InsertionSort, SelectionSort, MergeSort, StupidSort}
}

func (a Algorithm) String() string {
	switch a {
	case BubbleSort:
		return "bubble"
	case InsertionSort:
		return "insertion"
	case SelectionSort:
		return "selection"
	case MergeSort:
		return "merge"
	case StupidSort:
		return "stupid"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts a name produced by String back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, NewUnknownAlgorithmError(name)
}

// MarshalText implements encoding.TextMarshaler so Algorithm values encode
// as their names in JSON and YAML documents.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < BubbleSort || a >= numAlgorithms {
		return nil, &UnknownAlgorithmError{Name: a.String()}
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
