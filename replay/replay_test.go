package replay_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lanrat/sortviz"
	"github.com/lanrat/sortviz/replay"
)

func TestApplySwaps(t *testing.T) {
	final, err := replay.Apply([]string{"a", "b", "c"}, []sortviz.Step{
		sortviz.Swap{I: 0, J: 2},
		sortviz.Swap{I: 0, J: 1},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "c", "a"}, final); diff != "" {
		t.Errorf("final arrangement (-want +got):\n%s", diff)
	}
}

func TestApplyHoldSlideUnhold(t *testing.T) {
	// lift index 2, slide the smaller neighbors right, place at 0
	final, err := replay.Apply([]int{2, 3, 1}, []sortviz.Step{
		sortviz.Hold{Index: 2},
		sortviz.Slide{From: 1, To: 2},
		sortviz.Slide{From: 0, To: 1},
		sortviz.Unhold{},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, final); diff != "" {
		t.Errorf("final arrangement (-want +got):\n%s", diff)
	}
}

func TestApplyJoinAndMergeComplete(t *testing.T) {
	final, err := replay.Apply([]int{2, 1}, []sortviz.Step{
		sortviz.Join{From: 1, To: 0},
		sortviz.Join{From: 0, To: 1},
		sortviz.MergeComplete{},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, final); diff != "" {
		t.Errorf("final arrangement (-want +got):\n%s", diff)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []int{3, 1, 2}
	if _, err := replay.Apply(items, []sortviz.Step{sortviz.Swap{I: 0, J: 1}}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]int{3, 1, 2}, items); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func applyError(t *testing.T, items []int, steps []sortviz.Step) *replay.StepError {
	t.Helper()
	_, err := replay.Apply(items, steps)
	if err == nil {
		t.Fatal("expected a step error")
	}
	var stepErr *replay.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("got %v, want StepError", err)
	}
	return stepErr
}

func TestNestedHoldRejected(t *testing.T) {
	stepErr := applyError(t, []int{1, 2, 3}, []sortviz.Step{
		sortviz.Hold{Index: 0},
		sortviz.Hold{Index: 1},
	})
	if stepErr.Pos != 1 {
		t.Errorf("error at step %d, want 1", stepErr.Pos)
	}
}

func TestUnbalancedUnholdRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{sortviz.Unhold{}})
}

func TestOutOfBoundsIndexRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{sortviz.Compare{I: 0, J: 3}})
	applyError(t, []int{1, 2, 3}, []sortviz.Step{sortviz.Swap{I: -1, J: 0}})
	applyError(t, []int{1, 2, 3}, []sortviz.Step{sortviz.Join{From: 0, To: 5}})
}

func TestJoinSlotCollisionRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{
		sortviz.Join{From: 0, To: 0},
		sortviz.Join{From: 1, To: 0},
	})
}

func TestJoinFromMovedSlotRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{
		sortviz.Join{From: 0, To: 0},
		sortviz.Join{From: 0, To: 1},
	})
}

func TestDanglingHoldRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{sortviz.Hold{Index: 1}})
}

func TestDanglingJoinRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{sortviz.Join{From: 0, To: 0}})
}

func TestSlideOutsideHoleRejected(t *testing.T) {
	applyError(t, []int{1, 2, 3}, []sortviz.Step{
		sortviz.Hold{Index: 2},
		sortviz.Slide{From: 0, To: 1},
	})
}
