package seqcursor_test

import (
	"strings"
	"testing"

	"github.com/lestrrat/go-seqcursor"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var alphabet = []rune{'a', 'z', ' ', '\n', 'é', '한', '〜', '😀'}

func textGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return string(rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 24).Draw(t, "runes"))
	})
}

func TestPropertyJump(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := textGen().Draw(t, "text")
		runes := []rune(s)
		if len(runes) == 0 {
			t.Skip("empty text")
		}

		cur := seqcursor.NewRuneCursor(s)
		for i := 0; i < 8; i++ {
			n := rapid.IntRange(0, len(runes)-1).Draw(t, "n")
			r, ok := cur.Jump(n)
			if !ok {
				t.Fatalf("Jump(%d) failed on %q", n, s)
			}
			if r != runes[n] {
				t.Fatalf("Jump(%d) = %q, want %q", n, r, runes[n])
			}
			if want := len(string(runes[:n])); cur.CharStart() != want {
				t.Fatalf("CharStart() after Jump(%d) = %d, want %d", n, cur.CharStart(), want)
			}
		}
	})
}

func TestPropertyDecode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := string(rapid.SliceOfN(rapid.Rune(), 1, 16).Draw(t, "runes"))

		var forward []rune
		c := seqcursor.NewByteCursor([]byte(s))
		for _, ok := c.Next(); ok; _, ok = c.Next() {
			r, _, _ := seqcursor.DecodeRune(c)
			forward = append(forward, r)
		}

		var backward []rune
		c.HeadToLeft()
		c.JumpToLast()
		for {
			r, _, _ := seqcursor.DecodeLastRune(c)
			backward = append(backward, r)
			if _, ok := c.Next(); !ok {
				break
			}
		}
		for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
			backward[i], backward[j] = backward[j], backward[i]
		}

		if string(forward) != s {
			t.Fatalf("forward decode = %q, want %q", string(forward), s)
		}
		if string(backward) != s {
			t.Fatalf("backward decode = %q, want %q", string(backward), s)
		}
	})
}

func TestPropertyLocation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := textGen().Draw(t, "text")
		runes := []rune(s)
		if len(runes) == 0 {
			t.Skip("empty text")
		}

		cur := seqcursor.NewRuneCursorWithLocation(s)
		for i := 0; i < 8; i++ {
			n := rapid.IntRange(0, len(runes)-1).Draw(t, "n")
			cur.Jump(n)

			before := runes[:n]
			line := 1 + strings.Count(string(before), "\n")
			column := len(before) + 1
			for j := len(before) - 1; j >= 0; j-- {
				if before[j] == '\n' {
					column = len(before) - j
					break
				}
			}

			loc := cur.Extras()
			if loc.Line() != line || loc.Column() != column {
				t.Fatalf("Jump(%d) on %q: got %s, want %d:%d", n, s, loc, line, column)
			}
		}
	})
}

// runeModel is the trivial []rune implementation the cursor must agree with
type runeModel struct {
	runes     []rune
	init      bool
	backwards bool
	pos       int
}

func (m *runeModel) next() (rune, bool) {
	switch {
	case len(m.runes) == 0:
		return 0, false
	case !m.init:
		m.init = true
		m.pos = 0
	case m.backwards:
		if m.pos == 0 {
			return 0, false
		}
		m.pos--
	default:
		if m.pos == len(m.runes)-1 {
			return 0, false
		}
		m.pos++
	}
	return m.runes[m.pos], true
}

func (m *runeModel) jump(n int) (rune, bool) {
	if n < 0 || n >= len(m.runes) {
		return 0, false
	}
	m.init = true
	m.pos = n
	return m.runes[n], true
}

func (m *runeModel) span(lo, hi int) string {
	return string(m.runes[lo:hi])
}

func TestPropertyRuneCursorModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := textGen().Draw(t, "text")
		cur := seqcursor.NewRuneCursor(s)
		m := &runeModel{runes: []rune(s)}
		saved := *m

		check := func(op string, got rune, gotOK bool, want rune, wantOK bool) {
			if gotOK != wantOK || (wantOK && got != want) {
				t.Fatalf("%s = (%q, %v), want (%q, %v)", op, got, gotOK, want, wantOK)
			}
		}

		t.Repeat(map[string]func(*rapid.T){
			"Next": func(t *rapid.T) {
				r, ok := cur.Next()
				want, wantOK := m.next()
				check("Next", r, ok, want, wantOK)
			},
			"Turnaround": func(t *rapid.T) {
				cur.Turnaround()
				m.backwards = !m.backwards
			},
			"Jump": func(t *rapid.T) {
				n := rapid.IntRange(-1, len(m.runes)).Draw(t, "n")
				r, ok := cur.Jump(n)
				want, wantOK := m.jump(n)
				check("Jump", r, ok, want, wantOK)
			},
			"JumpToOffset": func(t *rapid.T) {
				d := rapid.IntRange(-3, 3).Draw(t, "delta")
				r, ok := cur.JumpToOffset(d)

				var want rune
				var wantOK bool
				switch {
				case d == 0:
					if m.init {
						want, wantOK = m.runes[m.pos], true
					}
				case !m.init && (d == 1 || d == -1):
					want, wantOK = m.jump(0)
				default:
					want, wantOK = m.jump(m.pos + d)
				}
				check("JumpToOffset", r, ok, want, wantOK)
			},
			"Save": func(t *rapid.T) {
				cur.Save()
				saved = *m
			},
			"Load": func(t *rapid.T) {
				cur.Load()
				*m = saved
			},
			"Reset": func(t *rapid.T) {
				cur.Reset()
				m.init = false
				m.backwards = false
				m.pos = 0
			},
			"Peek": func(t *rapid.T) {
				k := rapid.IntRange(1, 3).Draw(t, "k")
				r, ok := cur.Peek(k)

				scout := *m
				var want rune
				var wantOK bool
				for i := 0; i < k; i++ {
					if want, wantOK = scout.next(); !wantOK {
						break
					}
				}
				check("Peek", r, ok, want, wantOK)
			},
			"": func(t *rapid.T) {
				if cur.Len() != len(m.runes) {
					t.Fatalf("Len() = %d, want %d", cur.Len(), len(m.runes))
				}
				if cur.IsInit() != m.init || cur.Backwards() != m.backwards {
					t.Fatalf("state = (init %v, backwards %v), want (%v, %v)", cur.IsInit(), cur.Backwards(), m.init, m.backwards)
				}
				if !m.init {
					assert.Equal(t, "", cur.Preserved())
					assert.Equal(t, s, cur.Remaining())
					return
				}

				r, _ := cur.Current()
				check("Current", r, true, m.runes[m.pos], true)
				if cur.Pos() != m.pos {
					t.Fatalf("Pos() = %d, want %d", cur.Pos(), m.pos)
				}

				before, after := m.span(0, m.pos), m.span(m.pos+1, len(m.runes))
				if m.backwards {
					before, after = after, before
				}
				assert.Equal(t, before, cur.Preserved(), "Preserved")
				assert.Equal(t, after, cur.Remaining(), "Remaining")

				lo, hi := saved.pos, m.pos
				if lo > hi {
					lo, hi = hi, lo
				}
				assert.Equal(t, m.span(lo, hi+1), cur.Loaded(), "Loaded")
			},
		})
	})
}

func TestPropertyAccumulator(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(rapid.Uint8(), 1, 32).Draw(t, "items")
		c := seqcursor.NewWithAccumulator(items, &changeLog{})

		// a fresh cursor sits on index 0, so landing there is not a move
		var want []int
		var prev int
		for i := 0; i < 16; i++ {
			n := rapid.IntRange(-1, len(items)).Draw(t, "n")
			if _, ok := c.Jump(n); !ok {
				continue
			}
			if n != prev {
				want = append(want, n)
			}
			prev = n
		}
		assert.Equal(t, want, c.Extras().positions)
	})
}
