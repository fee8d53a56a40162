package seqcursor

import (
	"unicode/utf8"
)

func (c *RuneCursor[A]) charEnd() int {
	return c.state.charStart + c.state.width
}

// Preserved returns the text the cursor has already passed in the current
// direction, not including the current rune. When moving backwards this
// is everything after the current rune.
func (c *RuneCursor[A]) Preserved() string {
	switch {
	case !c.state.init:
		return ""
	case c.Backwards():
		return c.text[c.charEnd():]
	default:
		return c.text[:c.state.charStart]
	}
}

// Remaining returns the text ahead of the cursor in the current
// direction, not including the current rune. The text is never reversed;
// when moving backwards it is everything before the current rune.
func (c *RuneCursor[A]) Remaining() string {
	switch {
	case !c.state.init:
		return c.text
	case c.Backwards():
		return c.text[:c.state.charStart]
	default:
		return c.text[c.charEnd():]
	}
}

// Loaded returns the text between the rune recorded by the last Save and
// the current rune, both included. Whichever of the two comes first
// contributes its lead byte, the other its last byte, so the result is
// always cut on rune boundaries.
func (c *RuneCursor[A]) Loaded() string {
	if !c.state.init && !c.saved.init {
		return ""
	}

	lo, hi := c.saved.charStart, c.state.charStart
	if lo > hi {
		lo, hi = hi, lo
	}
	if end := c.saved.charStart + c.saved.width; end > hi {
		hi = end
	}
	if end := c.charEnd(); end > hi {
		hi = end
	}
	return c.text[lo:hi]
}

// scout returns a throwaway copy of the cursor, used to look ahead
// without moving. It shares the text but nothing else.
func (c *RuneCursor[A]) scout() *RuneCursor[Nop[rune]] {
	bytes := *c.bytes
	return &RuneCursor[Nop[rune]]{
		text:  c.text,
		bytes: &bytes,
		state: runeState[Nop[rune]]{
			init:      c.state.init,
			pos:       c.state.pos,
			charStart: c.state.charStart,
			width:     c.state.width,
			current:   c.state.current,
		},
		length: c.length,
	}
}

// Peek returns the n-th rune (base 1) that Next would return, without
// moving the cursor. On error, it returns utf8.RuneError and false
func (c *RuneCursor[A]) Peek(n int) (rune, bool) {
	if n <= 0 {
		return utf8.RuneError, false
	}

	s := c.scout()
	var r rune
	for i := 0; i < n; i++ {
		var ok bool
		if r, ok = s.Next(); !ok {
			return utf8.RuneError, false
		}
	}
	return r, true
}

// HasPrefix checks if the runes Next would return, in order, spell out
// s. This method does NOT move the cursor
func (c *RuneCursor[A]) HasPrefix(s string) bool {
	if len(s) == 0 {
		return true
	}

	sc := c.scout()
	for _, want := range s {
		got, ok := sc.Next()
		if !ok || got != want {
			return false
		}
	}
	return true
}

// ConsumePrefix checks if the runes Next would return spell out s, and
// if they do, moves the cursor over them. The accumulator sees every
// step.
func (c *RuneCursor[A]) ConsumePrefix(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}

	for range s {
		c.Next()
	}
	return true
}
