//go:build encoding

package seqcursor_test

import (
	"bytes"
	"testing"

	"github.com/lestrrat/go-seqcursor"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"
)

func TestEncoding(t *testing.T) {
	txt := `はろう、World!`
	euc, err := japanese.EUCJP.NewEncoder().String(txt)
	if !assert.NoError(t, err, "Encoder.String works") {
		return
	}

	// The same bytes once as a raw ByteCursor, to skip over a marker,
	// and once decoded through encoding.Decoder.Reader into a RuneCursor
	buf := []byte{0xfe, 0xff}
	buf = append(buf, euc...)

	bcur := seqcursor.NewByteCursor(buf)
	bcur.Jump(1)
	if !assert.Equal(t, []byte{0xfe, 0xff}, bcur.Loaded(), "marker is in place") {
		return
	}

	rcur, err := seqcursor.NewRuneCursorReader(japanese.EUCJP.NewDecoder().Reader(bytes.NewReader(bcur.Remaining())))
	if !assert.NoError(t, err, "NewRuneCursorReader works") {
		return
	}
	if !assert.True(t, rcur.ConsumePrefix(txt), "ConsumePrefix works") {
		return
	}

	_, ok := rcur.Next()
	if !assert.False(t, ok, "everything was consumed") {
		return
	}
}
