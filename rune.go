package seqcursor

import (
	"errors"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat/go-seqcursor/internal/unsafe"
)

// ErrInvalidUTF8 is returned by NewRuneCursorChecked
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// NewRuneCursor creates a cursor over the runes of s. The cursor does not
// copy s, and is not positioned on any rune until the first successful
// call to Next or Jump.
//
// s is trusted to be valid UTF-8. Use NewRuneCursorChecked when it may
// not be.
func NewRuneCursor(s string) *RuneCursor[Nop[rune]] {
	return NewRuneCursorWithAccumulator(s, Nop[rune]{})
}

// NewRuneCursorBytes creates a cursor over the runes of b. b must not be
// modified while the cursor is in use.
func NewRuneCursorBytes(b []byte) *RuneCursor[Nop[rune]] {
	return NewRuneCursor(unsafe.ToString(b))
}

// NewRuneCursorChecked is like NewRuneCursor, but returns ErrInvalidUTF8
// instead of a cursor if s is not valid UTF-8.
func NewRuneCursorChecked(s string) (*RuneCursor[Nop[rune]], error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	return NewRuneCursor(s), nil
}

// NewRuneCursorWithAccumulator creates a cursor over the runes of s that
// reports every position change to acc
func NewRuneCursorWithAccumulator[A Accumulator[rune, A]](s string, acc A) *RuneCursor[A] {
	c := &RuneCursor[A]{
		text:  s,
		bytes: NewByteCursor(unsafe.ToBytes(s)),
	}
	c.state.acc = acc
	c.saved = c.snapshot(c.state)
	return c
}

func (c *RuneCursor[A]) snapshot(s runeState[A]) runeState[A] {
	s.acc = s.acc.Clone()
	return s
}

// String returns the whole underlying text
func (c *RuneCursor[A]) String() string {
	return c.text
}

// ByteLen returns the length of the underlying text in bytes
func (c *RuneCursor[A]) ByteLen() int {
	return len(c.text)
}

// IsEmpty returns true if the underlying text is empty
func (c *RuneCursor[A]) IsEmpty() bool {
	return len(c.text) == 0
}

// IsInit returns true once the cursor has been placed on a rune
func (c *RuneCursor[A]) IsInit() bool {
	return c.state.init
}

// Pos returns the current position, counted in runes
func (c *RuneCursor[A]) Pos() int {
	return c.state.pos
}

// BytePos returns the position of the underlying byte cursor. Depending
// on the direction this is either the first or the last byte of the
// current rune.
func (c *RuneCursor[A]) BytePos() int {
	return c.bytes.Pos()
}

// CharStart returns the byte offset of the first byte of the current rune
func (c *RuneCursor[A]) CharStart() int {
	return c.state.charStart
}

// Backwards returns true if Next moves towards the start of the text
func (c *RuneCursor[A]) Backwards() bool {
	return c.bytes.Backwards()
}

// Current returns the rune under the cursor. The second return value is
// false if the cursor has not been placed on a rune yet.
func (c *RuneCursor[A]) Current() (rune, bool) {
	if !c.state.init {
		return utf8.RuneError, false
	}
	return c.state.current, true
}

// sync puts the byte cursor where the next step expects it: on the last
// byte of the current rune when moving forward, on its lead byte when
// moving backwards
func (c *RuneCursor[A]) sync() {
	if !c.state.init {
		return
	}

	if c.bytes.state.backwards {
		c.bytes.state.pos = c.state.charStart
	} else {
		c.bytes.state.pos = c.state.charStart + c.state.width - 1
	}
}

func (c *RuneCursor[A]) setPos(pos int) {
	moved := pos != c.state.pos
	c.state.init = true
	c.state.pos = pos
	if moved && !c.noEffects {
		c.state.acc.Change(c.state.current, pos)
	}
}

// place makes the rune whose lead byte is at off the current rune, at
// position pos
func (c *RuneCursor[A]) place(off, pos int) (rune, bool) {
	if off < 0 || off >= len(c.text) {
		return utf8.RuneError, false
	}

	c.bytes.state.init = true
	c.bytes.state.pos = off
	r, w, _ := DecodeRune(c.bytes)

	c.state.charStart = off
	c.state.width = w
	c.state.current = r
	c.setPos(pos)
	c.sync()
	return r, true
}

// Next moves one rune in the current direction and returns it. The first
// call on a fresh cursor places it on the first rune regardless of
// direction. At either end it returns false and does not move.
func (c *RuneCursor[A]) Next() (rune, bool) {
	if !c.state.init {
		return c.place(0, 0)
	}

	if c.bytes.Backwards() {
		if c.state.pos == 0 {
			return utf8.RuneError, false
		}
		if _, ok := c.bytes.Next(); !ok {
			return utf8.RuneError, false
		}
		r, w, _ := DecodeLastRune(c.bytes)
		c.state.charStart = c.bytes.Pos()
		c.state.width = w
		c.state.current = r
		c.setPos(c.state.pos - 1)
		return r, true
	}

	if _, ok := c.bytes.Next(); !ok {
		return utf8.RuneError, false
	}
	start := c.bytes.Pos()
	r, w, _ := DecodeRune(c.bytes)
	c.state.charStart = start
	c.state.width = w
	c.state.current = r
	c.setPos(c.state.pos + 1)
	return r, true
}

// Jump moves the cursor to the n-th rune (base 0).
//
// Runes have no fixed width, so this counts lead bytes starting from the
// closest known position: the start of the text, the current rune, or
// the end of the text if Len has been called before. The cost is
// O(distance), not O(1).
func (c *RuneCursor[A]) Jump(n int) (rune, bool) {
	if pdebug.Enabled {
		g := pdebug.IPrintf("START RuneCursor.Jump(%d) from %d", n, c.state.pos)
		defer g.IRelease("END RuneCursor.Jump")
	}

	if n < 0 {
		return utf8.RuneError, false
	}

	if c.state.init && n == c.state.pos {
		return c.state.current, true
	}

	off, ok := c.offsetOf(n)
	if !ok {
		if pdebug.Enabled {
			pdebug.Printf("rune %d is out of range", n)
		}
		return utf8.RuneError, false
	}
	return c.place(off, n)
}

// offsetOf returns the byte offset of the lead byte of the n-th rune
func (c *RuneCursor[A]) offsetOf(n int) (int, bool) {
	b := c.bytes.items
	if n == 0 {
		return 0, len(b) > 0
	}

	const (
		fromStart = iota
		fromCurrent
		fromEnd
	)

	from, dist := fromStart, n
	if c.state.init {
		d := n - c.state.pos
		if d < 0 {
			d = -d
		}
		if d < dist {
			from, dist = fromCurrent, d
		}
	}
	if c.length.ok {
		if n >= c.length.n {
			return 0, false
		}
		if d := c.length.n - 1 - n; d < dist {
			from = fromEnd
		}
	}

	switch from {
	case fromCurrent:
		if n > c.state.pos {
			return seekForward(b, c.state.charStart+1, n-c.state.pos)
		}
		return seekBackward(b, c.state.charStart-1, c.state.pos-n)
	case fromEnd:
		return seekBackward(b, len(b)-1, c.length.n-n)
	default:
		return seekForward(b, 0, n+1)
	}
}

// JumpToOffset moves the cursor delta runes away from the current
// position, independently of the direction. On a fresh cursor an offset of
// 1 or -1 is a single step onto the first rune, exactly like the first
// Next. Like Jump, this is O(delta).
func (c *RuneCursor[A]) JumpToOffset(delta int) (rune, bool) {
	switch {
	case delta == 0:
		return c.Current()
	case !c.state.init && (delta == 1 || delta == -1):
		return c.place(0, 0)
	}

	pos, ok := moveOffset(c.state.pos, delta)
	if !ok {
		return utf8.RuneError, false
	}
	return c.Jump(pos)
}

// JumpToFirst moves the cursor to the first rune
func (c *RuneCursor[A]) JumpToFirst() (rune, bool) {
	return c.Jump(0)
}

// JumpToLast moves the cursor to the last rune. This calls Len.
func (c *RuneCursor[A]) JumpToLast() (rune, bool) {
	l := c.Len()
	if l == 0 {
		return utf8.RuneError, false
	}
	return c.Jump(l - 1)
}

// NextToLast calls Next until it fails, and returns the rune the cursor
// ends up on.
func (c *RuneCursor[A]) NextToLast() (rune, bool) {
	for {
		if _, ok := c.Next(); !ok {
			break
		}
	}
	return c.Current()
}

// Len returns the number of runes in the text. The first call counts the
// lead bytes after the current rune, which is O(n) in the remaining
// length. The result is kept until Reset.
func (c *RuneCursor[A]) Len() int {
	if c.length.ok {
		return c.length.n
	}

	if pdebug.Enabled {
		g := pdebug.IPrintf("START RuneCursor.Len")
		defer func() {
			g.IRelease("END RuneCursor.Len %d runes", c.length.n)
		}()
	}

	var n int
	if c.state.init {
		n = c.state.pos + 1 + countRunes(c.bytes.items[c.state.charStart+1:])
	} else {
		n = countRunes(c.bytes.items)
	}
	c.length = lengthCache{n: n, ok: true}
	return n
}

// Turnaround reverses the direction of the cursor. The position does not
// change.
func (c *RuneCursor[A]) Turnaround() {
	c.bytes.Turnaround()
	c.sync()
}

// HeadToLeft makes Next move towards the start of the text
func (c *RuneCursor[A]) HeadToLeft() {
	if !c.Backwards() {
		c.Turnaround()
	}
}

// HeadToRight makes Next move towards the end of the text
func (c *RuneCursor[A]) HeadToRight() {
	if c.Backwards() {
		c.Turnaround()
	}
}

// Reset puts the cursor back in its initial state, resets the
// accumulator and forgets the length computed by Len. The checkpoint is
// left untouched.
func (c *RuneCursor[A]) Reset() {
	c.bytes.Reset()
	c.state.init = false
	c.state.pos = 0
	c.state.charStart = 0
	c.state.width = 0
	c.state.current = 0
	c.state.acc.Reset()
	c.length = lengthCache{}
}

// Save records the current state in the checkpoint slot, overwriting
// whatever was saved before.
func (c *RuneCursor[A]) Save() {
	c.saved = c.snapshot(c.state)
	c.bytes.Save()
}

// Load restores the state recorded by the last Save. The accumulator is
// not notified.
func (c *RuneCursor[A]) Load() {
	c.state = c.snapshot(c.saved)
	c.bytes.Load()
}

// Saved returns the contents of the checkpoint slot. Pos is counted in
// runes.
func (c *RuneCursor[A]) Saved() Checkpoint[A] {
	return Checkpoint[A]{
		Init:      c.saved.init,
		Backwards: c.bytes.saved.backwards,
		Pos:       c.saved.pos,
		Extras:    c.saved.acc,
	}
}

// SavedPos returns the position recorded by the last Save
func (c *RuneCursor[A]) SavedPos() int {
	return c.saved.pos
}

// Extras returns the live accumulator
func (c *RuneCursor[A]) Extras() A {
	return c.state.acc
}

// CloneExtras returns a snapshot of the accumulator
func (c *RuneCursor[A]) CloneExtras() A {
	return c.state.acc.Clone()
}

// TakeExtras hands the live accumulator over to the caller. The cursor
// continues with a freshly reset copy.
func (c *RuneCursor[A]) TakeExtras() A {
	acc := c.state.acc
	c.state.acc = acc.Clone()
	c.state.acc.Reset()
	return acc
}

// SetNoEffects stops (or resumes) notifying the accumulator of position
// changes.
func (c *RuneCursor[A]) SetNoEffects(v bool) {
	c.noEffects = v
}

// NoEffects returns true if the accumulator is currently not notified
func (c *RuneCursor[A]) NoEffects() bool {
	return c.noEffects
}
