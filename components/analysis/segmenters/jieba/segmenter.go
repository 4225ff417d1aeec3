package jieba

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/wangbin/jiebago"
	"github.com/wangbin/jiebago/dictionary"

	"github.com/bububa/jieba-analysis/components/analysis"
)

// ErrNoDictionary is returned when no dictionary path is configured
var ErrNoDictionary = errors.New("jieba: dictionary path is required")

// Segmenter is a jieba segmenter working in search mode.
// For every word cut from the text it reports the in-dictionary 2-grams and
// 3-grams inside the word before the word itself.
type Segmenter struct {
	seg   jiebago.Segmenter
	words *wordSet
	Options
}

var _ analysis.Segmenter = (*Segmenter)(nil)

// New loads the dictionaries and returns a ready to use Segmenter
func New(opts ...Option) (*Segmenter, error) {
	ret := &Segmenter{
		words: newWordSet(),
		Options: Options{
			logger: zerolog.Nop(),
		},
	}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.dictPath == "" {
		return nil, ErrNoDictionary
	}
	startTime := time.Now()
	if err := ret.seg.LoadDictionary(ret.dictPath); err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", ret.dictPath, err)
	}
	if err := dictionary.LoadDictionary(ret.words, ret.dictPath); err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s: %w", ret.dictPath, err)
	}
	if ret.userDictPath != "" {
		if err := ret.seg.LoadUserDictionary(ret.userDictPath); err != nil {
			return nil, fmt.Errorf("failed to load user dictionary %s: %w", ret.userDictPath, err)
		}
		if err := dictionary.LoadDictionary(ret.words, ret.userDictPath); err != nil {
			return nil, fmt.Errorf("failed to load user dictionary %s: %w", ret.userDictPath, err)
		}
	}
	ret.logger.Info().
		Str("dict", ret.dictPath).
		Str("user_dict", ret.userDictPath).
		Bool("hmm", ret.hmm).
		Dur("elapsed", time.Since(startTime)).
		Msg("jieba dictionary loaded")
	return ret, nil
}

// Segment implements analysis.Segmenter interface
func (s *Segmenter) Segment(text string) []analysis.Span {
	var (
		spans      []analysis.Span
		byteCursor int
		charCursor int
	)
	for word := range s.seg.Cut(text, s.hmm) {
		if word == "" {
			continue
		}
		idx := strings.Index(text[byteCursor:], word)
		if idx < 0 {
			s.logger.Warn().Str("word", word).Int("offset", byteCursor).Msg("jieba word not found in text")
			continue
		}
		start := charCursor + utf8.RuneCountInString(text[byteCursor:byteCursor+idx])
		runes := []rune(word)
		width := len(runes)
		spans = append(spans, s.grams(runes, start, 2)...)
		spans = append(spans, s.grams(runes, start, 3)...)
		spans = append(spans, analysis.Span{Start: start, End: start + width})
		byteCursor += idx + len(word)
		charCursor = start + width
	}
	return spans
}

// grams returns spans of the n-grams of word listed in the dictionary,
// zero frequency entries included. Only words longer than n are split
func (s *Segmenter) grams(word []rune, start int, n int) []analysis.Span {
	if len(word) <= n {
		return nil
	}
	var spans []analysis.Span
	for i := 0; i+n <= len(word); i++ {
		if s.words.Contains(string(word[i : i+n])) {
			spans = append(spans, analysis.Span{Start: start + i, End: start + i + n})
		}
	}
	return spans
}

// AddWord adds a word to the dictionary with the given frequency
func (s *Segmenter) AddWord(word string, freq float64) {
	s.seg.AddWord(word, freq)
	s.words.AddToken(dictionary.NewToken(word, freq, ""))
}
