package analysis

import "unicode/utf8"

// OffsetIndex maps character ordinals to byte offsets of a text.
// It holds one entry per character plus a trailing sentinel equal to the text byte length.
type OffsetIndex []int

// NewOffsetIndex scans text once and builds its OffsetIndex.
// An invalid UTF-8 byte counts as a single character, the same way ranging over a string does.
func NewOffsetIndex(text string) OffsetIndex {
	idx := make(OffsetIndex, 0, utf8.RuneCountInString(text)+1)
	for offset := range text {
		idx = append(idx, offset)
	}
	return append(idx, len(text))
}

// Chars returns the number of characters indexed
func (idx OffsetIndex) Chars() int {
	return len(idx) - 1
}

// ByteOffset returns the byte offset of the i-th character,
// i == Chars() resolves to the sentinel (text byte length)
func (idx OffsetIndex) ByteOffset(i int) int {
	return idx[i]
}

// Contains reports whether span lies inside the indexed text
func (idx OffsetIndex) Contains(span Span) bool {
	return span.Start >= 0 && span.Start <= span.End && span.End <= idx.Chars()
}
