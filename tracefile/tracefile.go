// Package tracefile reads and writes sortviz traces as JSON-lines documents:
// one header line identifying the trace, then one step envelope per line.
// The format is line-oriented so a renderer can stream a trace without
// loading it whole, and a truncated file fails cleanly at the first bad line.
package tracefile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lanrat/sortviz"
)

// Version is the trace document version this package writes.
const Version = 1

// writer IO buffer size per trace file
const fileBufferSize = 1 << 16 // 64k

// Header is the first line of a trace document. Values are the initial
// trait values of the items the trace was computed over, in input order;
// replaying the steps against them reproduces the sorted arrangement.
type Header struct {
	ID        string            `json:"id"`
	Version   int               `json:"version"`
	Algorithm sortviz.Algorithm `json:"algorithm"`
	Trait     sortviz.Trait     `json:"trait"`
	Values    []float64         `json:"values"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewHeader creates a Header for a fresh trace with a random id.
func NewHeader(algorithm sortviz.Algorithm, trait sortviz.Trait, values []float64) Header {
	return Header{
		ID:        uuid.NewString(),
		Version:   Version,
		Algorithm: algorithm,
		Trait:     trait,
		Values:    values,
		CreatedAt: time.Now().UTC(),
	}
}

// FormatError reports a malformed trace document.
type FormatError struct {
	// Line is the 1-based line number of the malformed record
	Line int
	// Msg describes the problem
	Msg string
	// Err is the underlying decode error, if any
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tracefile: line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Writer writes one trace document to an underlying writer.
type Writer struct {
	bufWriter *bufio.Writer
	steps     int
}

// NewWriter writes header to w and returns a Writer accepting steps. The
// caller must Flush when done.
func NewWriter(w io.Writer, header Header) (*Writer, error) {
	tw := &Writer{bufWriter: bufio.NewWriterSize(w, fileBufferSize)}
	if err := tw.writeLine(header); err != nil {
		return nil, err
	}
	return tw, nil
}

// WriteStep appends one step line to the document.
func (w *Writer) WriteStep(step sortviz.Step) error {
	if err := w.writeLine(step); err != nil {
		return err
	}
	w.steps++
	return nil
}

// WriteSteps appends a whole step sequence.
func (w *Writer) WriteSteps(steps []sortviz.Step) error {
	for _, step := range steps {
		if err := w.WriteStep(step); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns the number of steps written so far.
func (w *Writer) Steps() int {
	return w.steps
}

// Flush writes any buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	return w.bufWriter.Flush()
}

func (w *Writer) writeLine(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.bufWriter.Write(data); err != nil {
		return err
	}
	return w.bufWriter.WriteByte('\n')
}

// Reader reads one trace document from an underlying reader.
type Reader struct {
	scanner *bufio.Scanner
	header  Header
	line    int
}

// NewReader reads and validates the header line of a trace document.
func NewReader(r io.Reader) (*Reader, error) {
	tr := &Reader{scanner: bufio.NewScanner(r)}
	tr.scanner.Buffer(make([]byte, 0, fileBufferSize), fileBufferSize)
	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, &FormatError{Line: 1, Msg: "missing header"}
	}
	tr.line = 1
	if err := json.Unmarshal(tr.scanner.Bytes(), &tr.header); err != nil {
		return nil, &FormatError{Line: 1, Msg: "malformed header", Err: err}
	}
	if tr.header.Version != Version {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("unsupported version %d", tr.header.Version)}
	}
	return tr, nil
}

// Header returns the document header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next step of the document, or io.EOF after the last one.
func (r *Reader) Next() (sortviz.Step, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	r.line++
	step, err := sortviz.UnmarshalStep(r.scanner.Bytes())
	if err != nil {
		return nil, &FormatError{Line: r.line, Msg: "malformed step", Err: err}
	}
	return step, nil
}

// ReadAll returns every remaining step of the document.
func (r *Reader) ReadAll() ([]sortviz.Step, error) {
	var steps []sortviz.Step
	for {
		step, err := r.Next()
		if err == io.EOF {
			return steps, nil
		}
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
}

// WriteFile writes a complete trace document to path.
func WriteFile(path string, header Header, steps []sortviz.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w, err := NewWriter(f, header)
	if err != nil {
		f.Close()
		return err
	}
	if err := w.WriteSteps(steps); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a complete trace document from path.
func ReadFile(path string) (Header, []sortviz.Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()
	r, err := NewReader(f)
	if err != nil {
		return Header{}, nil, err
	}
	steps, err := r.ReadAll()
	if err != nil {
		return Header{}, nil, err
	}
	return r.Header(), steps, nil
}
