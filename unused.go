package seqcursor

import (
	"fmt"
	"io"
	"strings"

	"github.com/lestrrat-go/pdebug"
)

// NewRuneCursorReader reads everything from in, and returns a cursor over
// the result. The cursor needs random access, so the whole input is
// buffered once.
func NewRuneCursorReader(in io.Reader) (*RuneCursor[Nop[rune]], error) {
	if pdebug.Enabled {
		g := pdebug.IPrintf("START NewRuneCursorReader")
		defer g.IRelease("END NewRuneCursorReader")
	}

	buf, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read cursor input: %w", err)
	}
	return NewRuneCursorBytes(buf), nil
}

// Unused returns a new io.Reader that contains everything that is ahead
// of the cursor, as returned by Remaining
func (c *RuneCursor[A]) Unused() io.Reader {
	return strings.NewReader(c.Remaining())
}
