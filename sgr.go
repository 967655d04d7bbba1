// Package sgr composes ANSI Select Graphic Rendition escape sequences,
// the terminal codes controlling color, weight and emphasis.
//
// A [Text] gathers any number of styling intentions through chained
// calls and renders them as one minimal escape sequence rather than
// one sequence per attribute:
//
//	fmt.Print(sgr.New("ready").Bold().FG(sgr.Green))
//
// writes "\x1b[1;32mready". Rendering is stateless: nothing tracks
// what earlier renders left active on the terminal, so callers end a
// styled run themselves with [Writer.Reset] or [Writer.Clean].
package sgr

import (
	"errors"
	"io"
	"strings"
)

var ErrWriter = errors.New("writer is nil")

// String renders the Text to a fresh string.
func String(t Text) string {
	var b strings.Builder
	w := NewWriter(&b)
	_ = w.Print(t) // a strings.Builder never fails
	return b.String()
}

// Bytes renders the Text to a fresh byte slice.
func Bytes(t Text) []byte {
	return []byte(String(t))
}

// Clean returns the sequence reversing the Text's applied attributes,
// see [Text.CleanCodes].
func Clean(t Text) string {
	var b strings.Builder
	_ = NewWriter(&b).Clean(t)
	return b.String()
}

// Fprint renders the Text to a byte stream such as os.Stdout,
// propagating any write failure of w unchanged.
func Fprint(w io.Writer, t Text) error {
	if w == nil {
		return ErrWriter
	}
	return NewStreamWriter(w).Print(t)
}
