package seqcursor

import (
	"unicode/utf8"
)

const contMask = 0x3F

// IsContinuation reports whether b is a UTF-8 continuation byte, i.e. one
// whose top two bits are 10. Such a byte never starts a rune.
func IsContinuation(b byte) bool {
	return int8(b) < -64
}

// leadWidth returns the length of the sequence started by x, or 0 if x is
// a continuation byte
func leadWidth(x byte) int {
	switch {
	case x < utf8.RuneSelf:
		return 1
	case x >= 0xF0:
		return 4
	case x >= 0xE0:
		return 3
	case x >= 0xC0:
		return 2
	default:
		return 0
	}
}

// leadBody masks off the length marker of a lead byte
func leadBody(x byte, width int) rune {
	switch width {
	case 2:
		return rune(x & 0x1F)
	case 3:
		return rune(x & 0x0F)
	default:
		return rune(x & 0x07)
	}
}

func accContinuation(ch rune, b byte) rune {
	return ch<<6 | rune(b&contMask)
}

func checkRune(ch rune) rune {
	if !utf8.ValidRune(ch) {
		return utf8.RuneError
	}
	return ch
}

// DecodeRune decodes the rune whose lead byte is under c, reading forward.
// It returns the rune and the number of bytes consumed, and leaves c on the
// last byte it consumed. If c is moving backwards it is turned around for
// the duration of the call, and its direction is restored before returning.
//
// The input is trusted to be valid UTF-8. If it ends in the middle of a
// sequence the missing bytes are treated as zero, and a continuation byte
// found where a lead byte should be decodes to utf8.RuneError with a width
// of 1. The third return value is false only if c is not on any byte.
func DecodeRune[A Accumulator[byte, A]](c *Cursor[byte, A]) (rune, int, bool) {
	x, ok := c.Current()
	if !ok {
		return utf8.RuneError, 0, false
	}

	w := leadWidth(x)
	switch w {
	case 0:
		return utf8.RuneError, 1, true
	case 1:
		return rune(x), 1, true
	}

	backwards := c.Backwards()
	if backwards {
		c.Turnaround()
	}

	// Decode from a byte combination out of: [[[x y] z] w]
	ch := leadBody(x, w)
	consumed := 1
	for i := 1; i < w; i++ {
		b, ok := c.Next()
		if ok {
			consumed++
		}
		ch = accContinuation(ch, b) // b is 0 when we ran out of input
	}

	if backwards {
		c.Turnaround()
	}
	return checkRune(ch), consumed, true
}

// DecodeLastRune decodes the rune whose last byte is under c, reading
// backwards until it finds the lead byte. It returns the rune and the
// number of bytes consumed, and leaves c on the lead byte. If c is moving
// forward it is turned around for the duration of the call, and its
// direction is restored before returning.
//
// As with DecodeRune the input is trusted. If the start of the buffer is
// reached before a lead byte is found, a zero lead byte is assumed.
func DecodeLastRune[A Accumulator[byte, A]](c *Cursor[byte, A]) (rune, int, bool) {
	last, ok := c.Current()
	if !ok {
		return utf8.RuneError, 0, false
	}

	if last < utf8.RuneSelf {
		return rune(last), 1, true
	}

	if !IsContinuation(last) {
		// a lead byte whose tail got cut off
		w := leadWidth(last)
		ch := leadBody(last, w)
		for i := 1; i < w; i++ {
			ch = accContinuation(ch, 0)
		}
		return checkRune(ch), 1, true
	}

	backwards := c.Backwards()
	if !backwards {
		c.Turnaround()
	}

	// Decode from a byte combination out of: [x [y [z w]]], collecting
	// from the right
	var buf [utf8.UTFMax]byte
	n := 1
	buf[utf8.UTFMax-n] = last
	for n < utf8.UTFMax {
		b, ok := c.Next()
		if !ok {
			break
		}
		n++
		buf[utf8.UTFMax-n] = b
		if !IsContinuation(b) {
			break
		}
	}

	if !backwards {
		c.Turnaround()
	}

	seq := buf[utf8.UTFMax-n:]
	var ch rune
	if IsContinuation(seq[0]) {
		// no lead byte in sight. fold everything onto a zero lead
		for _, b := range seq {
			ch = accContinuation(ch, b)
		}
		return checkRune(ch), n, true
	}

	ch = leadBody(seq[0], n)
	for _, b := range seq[1:] {
		ch = accContinuation(ch, b)
	}
	return checkRune(ch), n, true
}
