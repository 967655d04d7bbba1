package sgr

import (
	"io"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// Escape sequence framing per ECMA-48: CSI, parameters joined by ';',
// final byte 'm'.
const (
	introducer = "\x1b["
	terminator = "m"

	// ResetSeq is the universal reset sequence, the single code 0 that
	// reverts every attribute at once. It is its own sequence, not the
	// reduction of a Text that clears everything.
	ResetSeq = "\x1b[0m"
)

// Sink is the narrow destination capability a [Writer] renders into.
// *strings.Builder and *bytes.Buffer satisfy it directly and never
// fail; [NewStreamWriter] adapts any io.Writer, whose failures
// propagate to the caller.
type Sink interface {
	WriteString(s string) (int, error)
}

// streamSink adapts a byte-oriented io.Writer to the Sink capability.
type streamSink struct {
	w io.Writer
}

func (s streamSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

// codepageSink transcodes rendered text to a single-byte legacy
// charmap before it reaches the underlying writer. Escape sequences
// are plain ASCII and pass through byte for byte.
type codepageSink struct {
	w  io.Writer
	cm *charmap.Charmap
}

func (s codepageSink) WriteString(str string) (int, error) {
	p := make([]byte, 0, len(str))
	for _, r := range str {
		b, ok := s.cm.EncodeRune(r)
		if !ok {
			b = '?'
		}
		p = append(p, b)
	}
	return s.w.Write(p)
}

// Writer renders styled text into a Sink. Every sink kind produces
// byte-identical escape sequences for the same Text; only where the
// bytes land differs.
//
// A Writer keeps no state between calls: each render is self-contained
// and nothing remembers which attributes earlier calls left active on
// the terminal. Callers sharing one streaming sink across goroutines
// must serialise whole render calls themselves.
type Writer struct {
	sink Sink
}

// NewWriter returns a Writer rendering into sink, typically an
// in-memory buffer such as *strings.Builder.
func NewWriter(sink Sink) *Writer {
	return &Writer{sink: sink}
}

// NewStreamWriter returns a Writer rendering into a byte stream such
// as os.Stdout. Write failures of w surface from the render methods.
func NewStreamWriter(w io.Writer) *Writer {
	return &Writer{sink: streamSink{w: w}}
}

// NewCodepageWriter returns a stream Writer that transcodes output to
// a single-byte legacy codepage. Use [charmap.CodePage437] for DOS-era
// terminals and ANSI art, or [charmap.ISO8859_1] for Amiga artwork.
// Runes outside the codepage degrade to '?'. A nil cm falls back to
// [charmap.XUserDefined], which passes ASCII through unchanged.
func NewCodepageWriter(w io.Writer, cm *charmap.Charmap) *Writer {
	if cm == nil {
		cm = charmap.XUserDefined
	}
	return &Writer{sink: codepageSink{w: w, cm: cm}}
}

func (w *Writer) write(s string) error {
	_, err := w.sink.WriteString(s)
	return err
}

// Print renders the Text: its reduced escape sequence if any, then the
// prefix, payload and suffix verbatim. The Text is not mutated and may
// be printed again. On a sink failure the render stops where it was;
// already written bytes are not rolled back.
func (w *Writer) Print(t Text) error {
	var b Builder
	if err := b.Codes(t.Reduce()...).WriteTo(w); err != nil {
		return err
	}
	if t.prefix != "" {
		if err := w.write(t.prefix); err != nil {
			return err
		}
	}
	if t.payload != "" {
		if err := w.write(t.payload); err != nil {
			return err
		}
	}
	if t.suffix != "" {
		return w.write(t.suffix)
	}
	return nil
}

// Clean writes the sequence reversing the Text's applied attributes,
// see [Text.CleanCodes]. A Text that applied nothing writes nothing.
func (w *Writer) Clean(t Text) error {
	var b Builder
	return b.Codes(t.CleanCodes()...).WriteTo(w)
}

// Reset writes the universal reset sequence [ResetSeq] and nothing else.
func (w *Writer) Reset() error {
	return w.write(ResetSeq)
}

// Inline writes a one-off escape sequence built from discrete codes,
// for callers mixing in codes the catalog does not model. No codes
// writes nothing.
func (w *Writer) Inline(codes ...uint8) error {
	var b Builder
	return b.Codes(codes...).WriteTo(w)
}

// Builder accumulates SGR codes before they are flushed as one
// sequence, keeping chained contributions in arrival order. The zero
// value is ready to use.
type Builder struct {
	codes []uint8
}

// Code appends a single code, returning the Builder for chaining.
func (b *Builder) Code(c uint8) *Builder {
	b.codes = append(b.codes, c)
	return b
}

// Codes appends codes in order, returning the Builder for chaining.
func (b *Builder) Codes(cs ...uint8) *Builder {
	b.codes = append(b.codes, cs...)
	return b
}

// Len reports how many codes are buffered.
func (b *Builder) Len() int {
	return len(b.codes)
}

// WriteTo flushes the buffered codes to w as a single sequence:
// the introducer, the codes joined by ';' with no duplicate or
// trailing separator, and the terminator. An empty Builder writes
// nothing at all; a bare "\x1b[m" is never emitted. The Builder is
// drained and can be reused.
func (b *Builder) WriteTo(w *Writer) error {
	if len(b.codes) == 0 {
		return nil
	}
	if err := w.write(introducer); err != nil {
		return err
	}
	if err := b.WritePartial(w); err != nil {
		return err
	}
	return w.write(terminator)
}

// WritePartial flushes the joined codes without the introducer or
// terminator, for callers splicing codes into a sequence they frame
// themselves. The Builder is drained.
func (b *Builder) WritePartial(w *Writer) error {
	if len(b.codes) == 0 {
		return nil
	}
	if err := w.write(strconv.Itoa(int(b.codes[0]))); err != nil {
		return err
	}
	for _, c := range b.codes[1:] {
		if err := w.write(";"); err != nil {
			return err
		}
		if err := w.write(strconv.Itoa(int(c))); err != nil {
			return err
		}
	}
	b.codes = b.codes[:0]
	return nil
}
