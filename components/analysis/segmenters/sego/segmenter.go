package sego

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huichen/sego"
	"github.com/rs/zerolog"

	"github.com/bububa/jieba-analysis/components/analysis"
)

// ErrNoDictionary is returned when no dictionary file is configured
var ErrNoDictionary = errors.New("sego: dictionary path is required")

// Segmenter wraps a sego segmenter and reports search mode spans:
// the sub-segments of a compound word come before the word itself.
type Segmenter struct {
	seg sego.Segmenter
	Options
}

var _ analysis.Segmenter = (*Segmenter)(nil)

// New loads the dictionaries and returns a ready to use Segmenter
func New(opts ...Option) (*Segmenter, error) {
	ret := &Segmenter{
		Options: Options{
			logger: zerolog.Nop(),
		},
	}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if len(ret.dictPaths) == 0 {
		return nil, ErrNoDictionary
	}
	// sego exits the process on a missing dictionary, check them first
	for _, fname := range ret.dictPaths {
		if _, err := os.Stat(fname); err != nil {
			return nil, fmt.Errorf("failed to load dictionary %s: %w", fname, err)
		}
	}
	startTime := time.Now()
	ret.seg.LoadDictionary(strings.Join(ret.dictPaths, ","))
	ret.logger.Info().
		Strs("dicts", ret.dictPaths).
		Dur("elapsed", time.Since(startTime)).
		Msg("sego dictionary loaded")
	return ret, nil
}

// Segment implements analysis.Segmenter interface
func (s *Segmenter) Segment(text string) []analysis.Span {
	if text == "" {
		return nil
	}
	chars := charIndex(text)
	segs := s.seg.Segment([]byte(text))
	spans := make([]analysis.Span, 0, len(segs))
	for i := range segs {
		start := segs[i].Start()
		for _, b := range tokenSpans(segs[i].Token(), start) {
			spans = append(spans, analysis.Span{Start: chars[b[0]], End: chars[b[1]]})
		}
	}
	return spans
}

// tokenSpans returns the byte spans of token starting at offset, sub-segments first.
// Sub-segments are only expanded when one of them is itself a compound.
func tokenSpans(token *sego.Token, offset int) [][2]int {
	var spans [][2]int
	subs := token.Segments()
	terminal := true
	for _, sub := range subs {
		if sub != nil && len(sub.Token().Segments()) > 1 {
			terminal = false
			break
		}
	}
	if !terminal {
		cursor := offset
		for _, sub := range subs {
			if sub == nil {
				continue
			}
			spans = append(spans, tokenSpans(sub.Token(), cursor)...)
			cursor += len(sub.Token().Text())
		}
	}
	return append(spans, [2]int{offset, offset + len(token.Text())})
}

// charIndex maps every rune start byte offset and the end of text to its character ordinal
func charIndex(text string) []int {
	ret := make([]int, len(text)+1)
	var n int
	for offset := range text {
		ret[offset] = n
		n++
	}
	ret[len(text)] = n
	return ret
}
