package tracefile_test

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lanrat/sortviz"
	"github.com/lanrat/sortviz/replay"
	"github.com/lanrat/sortviz/tracefile"
)

func testTrace(t *testing.T) (tracefile.Header, []sortviz.Step) {
	t.Helper()
	values := []float64{5, 3, 4, 1, 2}
	steps, err := sortviz.Sort(sortviz.ScalarItems(values...), "happiness", sortviz.InsertionSort)
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	return tracefile.NewHeader(sortviz.InsertionSort, "happiness", values), steps
}

func TestRoundTrip(t *testing.T) {
	header, steps := testTrace(t)

	var buf bytes.Buffer
	w, err := tracefile.NewWriter(&buf, header)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if err := w.WriteSteps(steps); err != nil {
		t.Fatalf("write steps: %v", err)
	}
	if w.Steps() != len(steps) {
		t.Errorf("writer counted %d steps, want %d", w.Steps(), len(steps))
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	r, err := tracefile.NewReader(&buf)
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	got := r.Header()
	if got.ID != header.ID || got.Algorithm != header.Algorithm || got.Trait != header.Trait {
		t.Errorf("header = %+v, want %+v", got, header)
	}
	if !got.CreatedAt.Equal(header.CreatedAt) {
		t.Errorf("created at = %v, want %v", got.CreatedAt, header.CreatedAt)
	}
	if diff := cmp.Diff(header.Values, got.Values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}

	readSteps, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if diff := cmp.Diff(steps, readSteps); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}

	// a loaded trace must still replay
	final, err := replay.Apply(got.Values, readSteps)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 5}, final); diff != "" {
		t.Errorf("replayed arrangement (-want +got):\n%s", diff)
	}
}

func TestReadFileWriteFile(t *testing.T) {
	header, steps := testTrace(t)
	path := filepath.Join(t.TempDir(), "trace.jsonl")

	if err := tracefile.WriteFile(path, header, steps); err != nil {
		t.Fatalf("write file: %v", err)
	}
	gotHeader, gotSteps, err := tracefile.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if gotHeader.ID != header.ID {
		t.Errorf("id = %q, want %q", gotHeader.ID, header.ID)
	}
	if diff := cmp.Diff(steps, gotSteps); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
}

func formatError(t *testing.T, input string) *tracefile.FormatError {
	t.Helper()
	r, err := tracefile.NewReader(strings.NewReader(input))
	if err == nil {
		_, err = r.ReadAll()
	}
	if err == nil {
		t.Fatal("expected a format error")
	}
	var formatErr *tracefile.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v, want FormatError", err)
	}
	return formatErr
}

func TestMissingHeader(t *testing.T) {
	if got := formatError(t, "").Line; got != 1 {
		t.Errorf("error at line %d, want 1", got)
	}
}

func TestMalformedHeader(t *testing.T) {
	formatError(t, "not json at all\n")
}

func TestUnsupportedVersion(t *testing.T) {
	err := formatError(t, `{"id":"x","version":99,"algorithm":"bubble","trait":"t","values":[1]}`+"\n")
	if !strings.Contains(err.Msg, "version") {
		t.Errorf("msg = %q, want version complaint", err.Msg)
	}
}

func TestMalformedStepLine(t *testing.T) {
	input := `{"id":"x","version":1,"algorithm":"bubble","trait":"t","values":[1]}` + "\n" +
		`{"op":"swap","i":0,"j":1}` + "\n" +
		`{"op":"teleport"}` + "\n"
	err := formatError(t, input)
	if err.Line != 3 {
		t.Errorf("error at line %d, want 3", err.Line)
	}
}

func TestNextReturnsEOF(t *testing.T) {
	input := `{"id":"x","version":1,"algorithm":"bubble","trait":"t","values":[1]}` + "\n"
	r, err := tracefile.NewReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}
