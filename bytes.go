package seqcursor

// NewByteCursor creates a cursor over raw bytes
func NewByteCursor(b []byte) *ByteCursor {
	return New(b)
}

// countRunes counts the lead bytes in b
func countRunes(b []byte) int {
	var n int
	for _, x := range b {
		if !IsContinuation(x) {
			n++
		}
	}
	return n
}

// seekForward returns the offset of the n-th lead byte (base 1) found
// walking forward from offset from, inclusive
func seekForward(b []byte, from, n int) (int, bool) {
	if n <= 0 || from < 0 {
		return 0, false
	}

	for i := from; i < len(b); i++ {
		if IsContinuation(b[i]) {
			continue
		}
		n--
		if n == 0 {
			return i, true
		}
	}
	return 0, false
}

// seekBackward returns the offset of the n-th lead byte (base 1) found
// walking backwards from offset from, inclusive
func seekBackward(b []byte, from, n int) (int, bool) {
	if n <= 0 || from >= len(b) {
		return 0, false
	}

	for i := from; i >= 0; i-- {
		if IsContinuation(b[i]) {
			continue
		}
		n--
		if n == 0 {
			return i, true
		}
	}
	return 0, false
}
