package seqcursor

// Accumulator receives a callback every time a cursor's position actually
// changes. It is handed the newly current item and its new position.
//
// A is the concrete accumulator type itself, so that Clone can return
// something the cursor can store without a type assertion. A typical
// implementation looks like
//
//	type Counter struct{ n int }
//	func (c *Counter) Change(v byte, _ int) { c.n++ }
//	func (c *Counter) Clone() *Counter     { return &Counter{n: c.n} }
//	func (c *Counter) Reset()              { c.n = 0 }
type Accumulator[T, A any] interface {
	// Change is called once per effective position change. Jumping to
	// the index the cursor is already on does not trigger it, and neither
	// does the initial placement of the cursor on its first item.
	Change(item T, pos int)

	// Clone returns an independent copy. Used by Save/Load.
	Clone() A

	// Reset brings the accumulator back to its initial state
	Reset()
}

// Nop is an Accumulator that does nothing. It is the default for cursors
// that do not need to keep track of anything.
type Nop[T any] struct{}

func (Nop[T]) Change(T, int) {}
func (Nop[T]) Clone() Nop[T] { return Nop[T]{} }
func (Nop[T]) Reset()        {}

// Cursor is a bidirectional cursor over a borrowed slice. The slice is
// never modified. All movements are O(1).
type Cursor[T any, A Accumulator[T, A]] struct {
	items     []T
	state     cursorState[A] // live state
	saved     cursorState[A] // the one checkpoint slot, see Save/Load
	noEffects bool           // suppress Accumulator.Change
}

type cursorState[A any] struct {
	init      bool // false until the first successful step
	backwards bool // direction used by Next
	pos       int  // valid only when init is true
	acc       A
}

// Checkpoint is a read-only view of the state captured by Save
type Checkpoint[A any] struct {
	Init      bool
	Backwards bool
	Pos       int
	Extras    A
}

// ByteCursor is a Cursor over raw bytes that does not track anything.
// RuneCursor uses one internally.
type ByteCursor = Cursor[byte, Nop[byte]]

// RuneCursor is a cursor over the runes of a UTF-8 encoded buffer. It
// decodes lazily in either direction, and keeps its position in runes
// distinct from the byte position of the underlying ByteCursor.
type RuneCursor[A Accumulator[rune, A]] struct {
	text      string
	bytes     *ByteCursor
	state     runeState[A]
	saved     runeState[A]
	length    lengthCache // memoized rune count, dropped by Reset
	noEffects bool
}

type runeState[A any] struct {
	init      bool
	pos       int  // position in runes
	charStart int  // byte offset of the lead byte of current
	width     int  // number of bytes consumed decoding current
	current   rune // valid only when init is true
	acc       A
}

type lengthCache struct {
	n  int
	ok bool
}
