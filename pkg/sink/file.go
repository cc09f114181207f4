package sink

import (
	"sort"

	"github.com/matzehuels/foldcut/pkg/errors"
)

// Output formats.
const (
	FormatDXF  = "dxf"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats lists the supported output formats.
var ValidFormats = map[string]bool{
	FormatDXF:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Formats returns the supported formats in a stable order.
func Formats() []string {
	out := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Encoder writes a primitive list to a file.
type Encoder interface {
	// Format returns the format name, which is also the file extension.
	Format() string
	// Write replaces the file at path with prims.
	Write(path string, prims []Primitive) error
}

// EncoderFor returns the default encoder for format.
func EncoderFor(format string) (Encoder, error) {
	switch format {
	case FormatDXF:
		return DXF{}, nil
	case FormatSVG:
		return NewSVG(), nil
	case FormatPDF:
		return PDF{}, nil
	case FormatJSON:
		return JSON{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
}

// File is a Sink backed by a named artifact. Flush rewrites the artifact with
// every primitive appended so far; a Flush with nothing new is a no-op.
type File struct {
	Path    string
	Encoder Encoder

	rec     Recorder
	written int // primitives persisted by the last successful flush
	writes  int
}

// NewFile returns a file sink writing to path with enc.
func NewFile(path string, enc Encoder) *File {
	return &File{Path: path, Encoder: enc, written: -1}
}

// Append implements Sink.
func (f *File) Append(p Primitive) {
	f.rec.Append(p)
}

// AppendAll appends prims in order.
func (f *File) AppendAll(prims []Primitive) {
	for _, p := range prims {
		f.rec.Append(p)
	}
}

// Flush implements Sink.
func (f *File) Flush() error {
	if f.rec.Len() == f.written {
		return nil
	}
	prims := f.rec.Primitives()
	for i, p := range prims {
		if err := p.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPrimitive, err, "primitive %d", i)
		}
	}
	if err := f.Encoder.Write(f.Path, prims); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", f.Path)
	}
	f.written = len(prims)
	f.writes++
	return nil
}

// Primitives returns the primitives appended so far.
func (f *File) Primitives() []Primitive {
	return f.rec.Primitives()
}

// Writes returns how many times the artifact was actually written.
func (f *File) Writes() int {
	return f.writes
}
