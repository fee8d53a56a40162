// Package seqcursor contains bidirectional cursors over borrowed slices
// and UTF-8 text.
//
// A Cursor moves over a slice one item at a time in either direction,
// can jump anywhere in O(1), and keeps exactly one checkpoint that can be
// restored later. A RuneCursor does the same over the runes of a UTF-8
// buffer, decoding lazily so that no []rune is ever materialized.
//
// Neither cursor ever fails loudly: running past either end, jumping out
// of range or overflowing an offset all return (zero, false) and leave the
// cursor where it was.
package seqcursor

import (
	"math"

	"github.com/lestrrat/go-seqcursor/internal/debug"
)

// New creates a new cursor over s. The cursor is not positioned on any
// item until the first successful call to Next or Jump.
func New[T any](s []T) *Cursor[T, Nop[T]] {
	return NewWithAccumulator(s, Nop[T]{})
}

// NewWithAccumulator creates a new cursor over s that reports every
// position change to acc. acc is usually a pointer, so that Reset and
// Change can modify it in place.
func NewWithAccumulator[T any, A Accumulator[T, A]](s []T, acc A) *Cursor[T, A] {
	c := &Cursor[T, A]{items: s}
	c.state.acc = acc
	c.saved = c.snapshot(c.state)
	return c
}

func (c *Cursor[T, A]) snapshot(s cursorState[A]) cursorState[A] {
	s.acc = s.acc.Clone()
	return s
}

// Len returns the number of items in the underlying slice
func (c *Cursor[T, A]) Len() int {
	return len(c.items)
}

// IsEmpty returns true if the underlying slice has no items
func (c *Cursor[T, A]) IsEmpty() bool {
	return len(c.items) == 0
}

// Slice returns the whole underlying slice. It must not be modified.
func (c *Cursor[T, A]) Slice() []T {
	return c.items
}

// IsInit returns true once the cursor has been placed on an item
func (c *Cursor[T, A]) IsInit() bool {
	return c.state.init
}

// Pos returns the current index. It is 0 for an uninitialized cursor,
// so check IsInit if the difference matters.
func (c *Cursor[T, A]) Pos() int {
	return c.state.pos
}

// Backwards returns true if Next moves towards the start of the slice
func (c *Cursor[T, A]) Backwards() bool {
	return c.state.backwards
}

// Current returns the item under the cursor. The second return value is
// false if the cursor has not been placed on an item yet.
func (c *Cursor[T, A]) Current() (T, bool) {
	if !c.state.init {
		var zero T
		return zero, false
	}
	return c.items[c.state.pos], true
}

func (c *Cursor[T, A]) setPos(pos int) (T, bool) {
	if pos < 0 || pos >= len(c.items) {
		var zero T
		return zero, false
	}

	if pos == c.state.pos {
		// either a no-op, or the initial placement on index 0. neither
		// is a move as far as the accumulator is concerned
		c.state.init = true
		return c.items[pos], true
	}

	c.state.init = true
	c.state.pos = pos
	c.blush()
	return c.items[pos], true
}

func (c *Cursor[T, A]) blush() {
	if c.noEffects {
		return
	}
	c.state.acc.Change(c.items[c.state.pos], c.state.pos)
}

// Next moves one item in the current direction and returns it. The first
// call on a fresh cursor places it on index 0 regardless of direction.
// At either end it returns false and does not move.
func (c *Cursor[T, A]) Next() (T, bool) {
	if !c.state.init {
		return c.setPos(0)
	}

	if c.state.backwards {
		return c.setPos(c.state.pos - 1)
	}
	return c.setPos(c.state.pos + 1)
}

// Jump moves the cursor to index i. It returns false without moving if i is
// out of range. Jumping to the current index does not notify the
// accumulator.
func (c *Cursor[T, A]) Jump(i int) (T, bool) {
	if debug.Enabled {
		debug.Printf("Cursor.Jump(%d) from %d", i, c.state.pos)
	}
	return c.setPos(i)
}

// JumpToOffset moves the cursor delta items away from the current index,
// independently of the direction. On a fresh cursor an offset of 1 or -1
// behaves exactly like the first Next.
func (c *Cursor[T, A]) JumpToOffset(delta int) (T, bool) {
	if debug.Enabled {
		debug.Printf("Cursor.JumpToOffset(%d) from %d", delta, c.state.pos)
	}

	switch {
	case delta == 0:
		return c.Current()
	case !c.state.init && (delta == 1 || delta == -1):
		return c.Next()
	}

	pos, ok := moveOffset(c.state.pos, delta)
	if !ok {
		if debug.Enabled {
			debug.Printf("  -> offset overflows, false")
		}
		var zero T
		return zero, false
	}
	return c.setPos(pos)
}

// JumpToFirst moves the cursor to the first item
func (c *Cursor[T, A]) JumpToFirst() (T, bool) {
	return c.setPos(0)
}

// JumpToLast moves the cursor to the last item
func (c *Cursor[T, A]) JumpToLast() (T, bool) {
	return c.setPos(len(c.items) - 1)
}

// NextToLast calls Next until it fails, and returns the item the cursor
// ends up on.
func (c *Cursor[T, A]) NextToLast() (T, bool) {
	for {
		if _, ok := c.Next(); !ok {
			break
		}
	}
	return c.Current()
}

// Turnaround reverses the direction of the cursor. The position does not
// change.
func (c *Cursor[T, A]) Turnaround() {
	c.state.backwards = !c.state.backwards
}

// HeadToLeft makes Next move towards the start of the slice
func (c *Cursor[T, A]) HeadToLeft() {
	c.state.backwards = true
}

// HeadToRight makes Next move towards the end of the slice
func (c *Cursor[T, A]) HeadToRight() {
	c.state.backwards = false
}

// Reset puts the cursor back in its initial state, and resets the
// accumulator. The checkpoint is left untouched.
func (c *Cursor[T, A]) Reset() {
	c.state.init = false
	c.state.backwards = false
	c.state.pos = 0
	c.state.acc.Reset()
}

// Save records the current state in the checkpoint slot, overwriting
// whatever was saved before.
func (c *Cursor[T, A]) Save() {
	c.saved = c.snapshot(c.state)
}

// Load restores the state recorded by the last Save. The accumulator is
// not notified.
func (c *Cursor[T, A]) Load() {
	if debug.Enabled {
		debug.Printf("Cursor.Load() %d -> %d", c.state.pos, c.saved.pos)
		debug.Dump(c.saved)
	}
	c.state = c.snapshot(c.saved)
}

// Saved returns the contents of the checkpoint slot
func (c *Cursor[T, A]) Saved() Checkpoint[A] {
	return Checkpoint[A]{
		Init:      c.saved.init,
		Backwards: c.saved.backwards,
		Pos:       c.saved.pos,
		Extras:    c.saved.acc,
	}
}

// SavedPos returns the position recorded by the last Save
func (c *Cursor[T, A]) SavedPos() int {
	return c.saved.pos
}

// Preserved returns the items the cursor has already passed in the
// current direction, not including the current one. When moving
// backwards this is everything after the current index.
func (c *Cursor[T, A]) Preserved() []T {
	switch {
	case !c.state.init:
		return c.items[:0]
	case c.state.backwards:
		return c.items[c.state.pos+1:]
	default:
		return c.items[:c.state.pos]
	}
}

// Remaining returns the items ahead of the cursor in the current
// direction, not including the current one. The slice is never
// reversed; when moving backwards it is everything before the current
// index.
func (c *Cursor[T, A]) Remaining() []T {
	switch {
	case !c.state.init:
		return c.items
	case c.state.backwards:
		return c.items[:c.state.pos]
	default:
		return c.items[c.state.pos+1:]
	}
}

// Loaded returns the items between the checkpoint and the current
// position, both ends included.
func (c *Cursor[T, A]) Loaded() []T {
	if !c.state.init && !c.saved.init {
		return c.items[:0]
	}

	lo, hi := c.saved.pos, c.state.pos
	if lo > hi {
		lo, hi = hi, lo
	}
	return c.items[lo : hi+1]
}

// Extras returns the live accumulator
func (c *Cursor[T, A]) Extras() A {
	return c.state.acc
}

// CloneExtras returns a snapshot of the accumulator
func (c *Cursor[T, A]) CloneExtras() A {
	return c.state.acc.Clone()
}

// TakeExtras hands the live accumulator over to the caller. The cursor
// continues with a freshly reset copy.
func (c *Cursor[T, A]) TakeExtras() A {
	acc := c.state.acc
	c.state.acc = acc.Clone()
	c.state.acc.Reset()
	return acc
}

// SetNoEffects stops (or resumes) notifying the accumulator of position
// changes.
func (c *Cursor[T, A]) SetNoEffects(v bool) {
	c.noEffects = v
}

// NoEffects returns true if the accumulator is currently not notified
func (c *Cursor[T, A]) NoEffects() bool {
	return c.noEffects
}

// moveOffset adds delta to pos, failing instead of wrapping around
func moveOffset(pos, delta int) (int, bool) {
	if delta > 0 && pos > math.MaxInt-delta {
		return 0, false
	}
	if delta < 0 && pos < math.MinInt-delta {
		return 0, false
	}
	return pos + delta, true
}
