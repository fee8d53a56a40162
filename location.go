package seqcursor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Location is an Accumulator for RuneCursor that keeps track of the line
// and column of the current rune. It must be created over the same text
// as the cursor it is attached to.
//
// Moving forward is incremental. Moving backwards walks back to the
// start of the line to recompute the column.
type Location struct {
	text   string
	pos    int // rune position
	offset int // byte offset
	line   int // line number
	column int // column number, in runes
	cells  int // column number, in terminal cells
}

// NewLocation creates a Location for text, pointing at its first rune
func NewLocation(text string) *Location {
	l := &Location{text: text}
	l.Reset()
	return l
}

// NewRuneCursorWithLocation creates a RuneCursor over s that tracks the
// line and column of the current rune
func NewRuneCursorWithLocation(s string) *RuneCursor[*Location] {
	return NewRuneCursorWithAccumulator(s, NewLocation(s))
}

func (l *Location) Change(_ rune, pos int) {
	switch {
	case pos > l.pos:
		l.forward(pos)
	case pos < l.pos:
		l.backward(pos)
	}
}

func (l *Location) Clone() *Location {
	v := *l
	return &v
}

func (l *Location) Reset() {
	l.pos = 0
	l.offset = 0
	l.line = 1
	l.column = 1
	l.cells = 1
}

func (l *Location) forward(pos int) {
	for l.pos < pos && l.offset < len(l.text) {
		r, w := utf8.DecodeRuneInString(l.text[l.offset:])
		l.offset += w
		l.pos++
		if r == '\n' {
			l.line++
			l.column = 1
			l.cells = 1
		} else {
			l.column++
			l.cells += runewidth.RuneWidth(r)
		}
	}
}

func (l *Location) backward(pos int) {
	for l.pos > pos && l.offset > 0 {
		r, w := utf8.DecodeLastRuneInString(l.text[:l.offset])
		l.offset -= w
		l.pos--
		if r == '\n' {
			l.line--
		}
	}

	start := strings.LastIndexByte(l.text[:l.offset], '\n') + 1
	l.column = 1
	l.cells = 1
	for _, r := range l.text[start:l.offset] {
		l.column++
		l.cells += runewidth.RuneWidth(r)
	}
}

// Pos returns the position of the current rune, in runes
func (l *Location) Pos() int {
	return l.pos
}

// Offset returns the byte offset of the current rune
func (l *Location) Offset() int {
	return l.offset
}

// Line returns the current line number, starting at 1
func (l *Location) Line() int {
	return l.line
}

// Column returns the current column number, starting at 1
func (l *Location) Column() int {
	return l.column
}

// DisplayColumn returns the current column number as it would appear on
// a terminal, where wide characters take up two cells
func (l *Location) DisplayColumn() int {
	return l.cells
}

func (l *Location) String() string {
	return fmt.Sprintf("%d:%d", l.line, l.column)
}
