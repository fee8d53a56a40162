package unsafe

import (
	"unsafe"
)

// ToString converts a byte slice to a string with zero allocation.
// NB: The byte slice is fully owned by the string returned and must not be mutated.
func ToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// ToBytes converts a string to a byte slice with zero allocation.
// NB: The returned slice shares memory with the string and must never be
// written to.
func ToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
