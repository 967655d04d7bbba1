package sgr

// Intention is the instruction a [Text] carries for a single attribute:
// leave the attribute however the terminal currently has it, apply a
// code, or emit the attribute's dedicated clear code. The zero value
// is the leave-unchanged intention.
type Intention struct {
	op   uint8
	code uint8
}

const (
	opUnchanged uint8 = iota
	opApply
	opClear
)

// Unchanged is the intention that leaves an attribute untouched,
// inheriting whatever is in effect on the terminal.
var Unchanged = Intention{}

// Apply returns the intention to emit code, switching its attribute on.
func Apply(code uint8) Intention {
	return Intention{op: opApply, code: code}
}

// Clear returns the intention to emit code, switching its attribute
// back to the terminal default.
func Clear(code uint8) Intention {
	return Intention{op: opClear, code: code}
}

// Code returns the SGR code the intention contributes to a reduction
// and whether it contributes one at all. Unchanged contributes nothing.
func (i Intention) Code() (uint8, bool) {
	return i.code, i.op != opUnchanged
}

// IsApply reports whether the intention switches its attribute on.
func (i Intention) IsApply() bool {
	return i.op == opApply
}

// Merge resolves two intentions aimed at the same attribute. The
// override wins unless it is Unchanged, in which case i is kept. Merge
// is associative with Unchanged as identity, and deliberately not
// commutative: the later intention of a chain wins on conflict.
func (i Intention) Merge(override Intention) Intention {
	if override.op == opUnchanged {
		return i
	}
	return override
}

// Text is a payload string together with the styling intentions to
// render around it. The zero value, like New(""), carries no payload
// and leaves every attribute unchanged.
//
// Configuration methods use value semantics: each takes its receiver
// by value and returns the updated copy, so calls chain without
// aliasing surprises and a configured Text can be rendered any number
// of times.
//
//	warn := sgr.New("offline").Bold().FG(sgr.Red)
type Text struct {
	styles  [styleCount]Intention
	fg      Intention
	bg      Intention
	prefix  string
	suffix  string
	payload string
}

// New returns a plain Text for payload with every attribute unchanged.
func New(payload string) Text {
	return Text{payload: payload}
}

// Set stores an intention for a style. Most callers want the named
// shorthands such as [Text.Bold]; Set is for code that picks styles at
// runtime.
func (t Text) Set(s Style, i Intention) Text {
	t.styles[s] = i
	return t
}

// With sets the intention to apply s.
func (t Text) With(s Style) Text {
	t.styles[s] = Apply(s.On())
	return t
}

// Without sets the intention to clear s.
func (t Text) Without(s Style) Text {
	t.styles[s] = Clear(s.Off())
	return t
}

func (t Text) Bold() Text      { return t.With(Bold) }
func (t Text) Faint() Text     { return t.With(Faint) }
func (t Text) Italic() Text    { return t.With(Italic) }
func (t Text) Underline() Text { return t.With(Underline) }
func (t Text) Blink() Text     { return t.With(Blink) }
func (t Text) Invert() Text    { return t.With(Invert) }
func (t Text) Conceal() Text   { return t.With(Conceal) }
func (t Text) Strike() Text    { return t.With(Strike) }

func (t Text) NotBold() Text      { return t.Without(Bold) }
func (t Text) NotFaint() Text     { return t.Without(Faint) }
func (t Text) NotItalic() Text    { return t.Without(Italic) }
func (t Text) NotUnderline() Text { return t.Without(Underline) }
func (t Text) NotBlink() Text     { return t.Without(Blink) }
func (t Text) NotInvert() Text    { return t.Without(Invert) }
func (t Text) NotConceal() Text   { return t.Without(Conceal) }
func (t Text) NotStrike() Text    { return t.Without(Strike) }

// FG sets the intention to color the foreground c.
func (t Text) FG(c Color) Text {
	t.fg = Apply(c.FG())
	return t
}

// BG sets the intention to color the background c.
func (t Text) BG(c Color) Text {
	t.bg = Apply(c.BG())
	return t
}

// ClearFG sets the intention to restore the default foreground color.
func (t Text) ClearFG() Text {
	t.fg = Clear(DefaultFG)
	return t
}

// ClearBG sets the intention to restore the default background color.
func (t Text) ClearBG() Text {
	t.bg = Clear(DefaultBG)
	return t
}

// SetFG stores a foreground intention picked at runtime.
func (t Text) SetFG(i Intention) Text {
	t.fg = i
	return t
}

// SetBG stores a background intention picked at runtime.
func (t Text) SetBG(i Intention) Text {
	t.bg = i
	return t
}

// Prefix sets literal text written between the escape sequence and the
// payload, an escape hatch for raw or custom codes.
func (t Text) Prefix(s string) Text {
	t.prefix = s
	return t
}

// Suffix sets literal text written after the payload.
func (t Text) Suffix(s string) Text {
	t.suffix = s
	return t
}

// Payload replaces the text content.
func (t Text) Payload(s string) Text {
	t.payload = s
	return t
}

// Merge combines two Texts attribute by attribute: for each style and
// color slot the override's intention wins unless it is Unchanged. The
// payload, prefix and suffix of the override win when non-empty. Merge
// never mutates its arguments.
func Merge(base, override Text) Text {
	for i := range base.styles {
		base.styles[i] = base.styles[i].Merge(override.styles[i])
	}
	base.fg = base.fg.Merge(override.fg)
	base.bg = base.bg.Merge(override.bg)
	if override.prefix != "" {
		base.prefix = override.prefix
	}
	if override.suffix != "" {
		base.suffix = override.suffix
	}
	if override.payload != "" {
		base.payload = override.payload
	}
	return base
}

// Reduce flattens the Text's intentions into the ordered code sequence
// to emit. The order is fixed regardless of the order the intentions
// were set: styles in their declaration order, then foreground, then
// background. A Text with every attribute unchanged reduces to an
// empty sequence, which the render layer suppresses entirely.
func (t Text) Reduce() []uint8 {
	codes := make([]uint8, 0, styleCount+2)
	for _, in := range t.styles {
		if c, ok := in.Code(); ok {
			codes = append(codes, c)
		}
	}
	if c, ok := t.fg.Code(); ok {
		codes = append(codes, c)
	}
	if c, ok := t.bg.Code(); ok {
		codes = append(codes, c)
	}
	return codes
}

// CleanCodes returns the codes that reverse every Apply intention in
// the Text: the clear code of each applied style and the default color
// code for each colored slot. Clear and Unchanged intentions need no
// reversing and contribute nothing. The order mirrors [Text.Reduce].
func (t Text) CleanCodes() []uint8 {
	codes := make([]uint8, 0, styleCount+2)
	for s, in := range t.styles {
		if !in.IsApply() {
			continue
		}
		off := Style(s).Off()
		// Bold and Faint share a clear code, emit it once.
		if n := len(codes); n > 0 && codes[n-1] == off {
			continue
		}
		codes = append(codes, off)
	}
	if t.fg.IsApply() {
		codes = append(codes, DefaultFG)
	}
	if t.bg.IsApply() {
		codes = append(codes, DefaultBG)
	}
	return codes
}

// String renders the Text to a string, escape sequence included, so a
// Text can be handed straight to fmt and friends.
func (t Text) String() string {
	return String(t)
}
