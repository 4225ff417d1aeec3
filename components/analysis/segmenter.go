package analysis

import "fmt"

// Span is a word boundary reported by a Segmenter.
// Start and End are character (rune) ordinals, End is exclusive.
type Span struct {
	Start int
	End   int
}

// Segmenter defines the word segmentation capability consumed by Tokenizer.
// Implementations always work in multi-granularity (search) mode, so the
// returned spans may overlap: a compound word and its sub-words are both reported.
// A Segmenter must be safe for concurrent use once constructed.
type Segmenter interface {
	// Segment returns word spans in emission order, 0 <= Start <= End <= rune count of text
	Segment(text string) []Span
}

// SegmenterFunc adapts an ordinary function to the Segmenter interface
type SegmenterFunc func(text string) []Span

// Segment implements Segmenter interface
func (fn SegmenterFunc) Segment(text string) []Span {
	return fn(text)
}

// SpanError is the panic value raised when a Segmenter reports a span outside of the text
type SpanError struct {
	Span  Span
	Chars int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("analysis: segmenter span [%d, %d) out of range for %d chars", e.Span.Start, e.Span.End, e.Chars)
}
