package textutil

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel trims surrounding whitespace and converts the label to NFC so
// that "é" typed as a single rune and "e" plus a combining accent compare equal.
func NormalizeLabel(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewUTF8Reader wraps r so that a leading byte-order mark is consumed. A
// UTF-8 BOM is dropped; UTF-16 input with a BOM is decoded to UTF-8. All other
// bytes pass through untouched, invalid UTF-8 included, so callers can reject
// it.
func NewUTF8Reader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		return br
	}
	return transform.NewReader(br, unicode.BOMOverride(encoding.Nop.NewDecoder()))
}
