package sgr_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/termtext/sgr"
	"golang.org/x/text/encoding/charmap"
)

func TestPrint(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	w := sgr.NewWriter(&b)
	err := w.Print(sgr.New("Hi").Bold().FG(sgr.Red))
	be.Err(t, err, nil)
	be.Equal(t, b.String(), "\x1b[1;31mHi")
}

func TestPrintPlain(t *testing.T) {
	t.Parallel()
	// no intentions, no escape introducer
	var b strings.Builder
	w := sgr.NewWriter(&b)
	err := w.Print(sgr.New("plain").Prefix(">").Suffix("<"))
	be.Err(t, err, nil)
	be.Equal(t, b.String(), ">plain<")
}

func TestPrintOrder(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	w := sgr.NewWriter(&b)
	err := w.Print(sgr.New("mid").Underline().Prefix("pre").Suffix("post"))
	be.Err(t, err, nil)
	be.Equal(t, b.String(), "\x1b[4mpre"+"mid"+"post")
}

func TestReset(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	w := sgr.NewWriter(&b)
	err := w.Reset()
	be.Err(t, err, nil)
	be.Equal(t, b.String(), "\x1b[0m")
}

func TestPrintThenReset(t *testing.T) {
	t.Parallel()
	// two renders concatenate on the same sink
	var b strings.Builder
	w := sgr.NewWriter(&b)
	be.Err(t, w.Print(sgr.New("Hi").Bold().FG(sgr.Red)), nil)
	be.Err(t, w.Reset(), nil)
	be.Equal(t, b.String(), "\x1b[1;31mHi\x1b[0m")
}

func TestClean(t *testing.T) {
	t.Parallel()
	styled := sgr.New("Hi").Bold().FG(sgr.Red)
	var b strings.Builder
	w := sgr.NewWriter(&b)
	be.Err(t, w.Print(styled), nil)
	be.Err(t, w.Clean(styled), nil)
	be.Equal(t, b.String(), "\x1b[1;31mHi\x1b[22;39m")
	// nothing applied, nothing to clean
	b.Reset()
	be.Err(t, w.Clean(sgr.New("plain")), nil)
	be.Equal(t, b.String(), "")
}

func TestInline(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	w := sgr.NewWriter(&b)
	be.Err(t, w.Inline(sgr.Underline.On(), sgr.Green.FG()), nil)
	be.Equal(t, b.String(), "\x1b[4;32m")
	b.Reset()
	be.Err(t, w.Inline(), nil)
	be.Equal(t, b.String(), "")
}

func TestBuilder(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	w := sgr.NewWriter(&b)
	var sb sgr.Builder
	sb.Code(1).Codes(31, 44)
	be.Equal(t, sb.Len(), 3)
	be.Err(t, sb.WriteTo(w), nil)
	be.Equal(t, b.String(), "\x1b[1;31;44m")
	// drained after the flush
	be.Equal(t, sb.Len(), 0)
	b.Reset()
	be.Err(t, sb.WriteTo(w), nil)
	be.Equal(t, b.String(), "")
}

func TestBuilderPartial(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	w := sgr.NewWriter(&b)
	var sb sgr.Builder
	be.Err(t, sb.Codes(38, 5, 93).WritePartial(w), nil)
	be.Equal(t, b.String(), "38;5;93")
}

func TestSinkParity(t *testing.T) {
	t.Parallel()
	styled := sgr.New("parity").Faint().Strike().BG(sgr.BrightYellow)
	var sb strings.Builder
	be.Err(t, sgr.NewWriter(&sb).Print(styled), nil)
	var bb bytes.Buffer
	be.Err(t, sgr.NewStreamWriter(&bb).Print(styled), nil)
	be.Equal(t, bb.String(), sb.String())
	var cb bytes.Buffer
	be.Err(t, sgr.NewCodepageWriter(&cb, charmap.CodePage437).Print(styled), nil)
	be.Equal(t, cb.String(), sb.String())
}

func TestCodepageWriter(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	w := sgr.NewCodepageWriter(&b, charmap.CodePage437)
	err := w.Print(sgr.New("«é»").FG(sgr.Blue))
	be.Err(t, err, nil)
	be.Equal(t, b.String(), "\x1b[34m\xae\x82\xaf")
	// runes outside the codepage degrade to '?'
	b.Reset()
	be.Err(t, w.Print(sgr.New("€")), nil)
	be.Equal(t, b.String(), "?")
}

var errSink = errors.New("sink closed")

// failWriter fails every write, standing in for a broken stream.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errSink
}

func TestStreamFailure(t *testing.T) {
	t.Parallel()
	w := sgr.NewStreamWriter(failWriter{})
	err := w.Print(sgr.New("Hi").Bold())
	be.Err(t, err, errSink)
	be.Err(t, w.Reset(), errSink)
	// the failure is the sink's own error, unwrapped
	be.True(t, errors.Is(err, errSink))
}

func TestFprint(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	err := sgr.Fprint(&b, sgr.New("ok").FG(sgr.Green))
	be.Err(t, err, nil)
	be.Equal(t, b.String(), "\x1b[32mok")
	be.Err(t, sgr.Fprint(nil, sgr.New("ok")), sgr.ErrWriter)
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()
	styled := sgr.New("s").Invert()
	be.Equal(t, sgr.String(styled), "\x1b[7ms")
	be.Equal(t, sgr.Bytes(styled), []byte("\x1b[7ms"))
	be.Equal(t, sgr.Clean(styled), "\x1b[27m")
	be.Equal(t, styled.String(), "\x1b[7ms")
}
