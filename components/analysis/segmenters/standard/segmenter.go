package standard

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/words"

	"github.com/bububa/jieba-analysis/components/analysis"
)

// Segmenter splits text on Unicode (UAX #29) word boundaries.
// Ideographs come out one per span, whitespace runs are dropped.
// It needs no dictionary and has no compound words, so its spans never overlap.
type Segmenter struct{}

var _ analysis.Segmenter = (*Segmenter)(nil)

func New() *Segmenter {
	return new(Segmenter)
}

// Segment implements analysis.Segmenter interface
func (s *Segmenter) Segment(text string) []analysis.Span {
	var (
		spans []analysis.Span
		start int
	)
	for _, part := range words.SegmentAll([]byte(text)) {
		width := utf8.RuneCount(part)
		if !isSpace(part) {
			spans = append(spans, analysis.Span{Start: start, End: start + width})
		}
		start += width
	}
	return spans
}

func isSpace(part []byte) bool {
	return strings.TrimFunc(string(part), unicode.IsSpace) == ""
}
