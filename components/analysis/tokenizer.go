package analysis

import "github.com/rs/zerolog"

// Options holds the configuration of a Tokenizer
type Options struct {
	logger zerolog.Logger
}

// Option is a function type for configuring Tokenizer Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

// WithLogger sets the logger used to report segmenter faults
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// Tokenizer turns text into position-ordered tokens with byte offsets,
// using a multi-granularity Segmenter for word boundaries.
// Tokenizer holds no per-call state and is safe for concurrent use
// as long as its Segmenter is.
type Tokenizer struct {
	segmenter Segmenter
	Options
}

// NewTokenizer creates a Tokenizer on top of segmenter
func NewTokenizer(segmenter Segmenter, opts ...Option) *Tokenizer {
	ret := &Tokenizer{
		segmenter: segmenter,
		Options: Options{
			logger: zerolog.Nop(),
		},
	}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

// Segmenter returns the underlying segmenter
func (t *Tokenizer) Segmenter() Segmenter {
	return t.segmenter
}

// Tokenize segments text and emits one Token per segmenter span, in the
// segmenter's order. Overlapping spans are kept as distinct tokens, positions
// are 0..n-1 without gaps. Tokenize panics with *SpanError if the segmenter
// reports a span outside of text.
func (t *Tokenizer) Tokenize(text string) []Token {
	if text == "" {
		return []Token{}
	}
	idx := NewOffsetIndex(text)
	spans := t.segmenter.Segment(text)
	tokens := make([]Token, 0, len(spans))
	for _, span := range spans {
		tokens = append(tokens, idx.token(text, span, len(tokens), t.logger))
	}
	return tokens
}

// token translates a character span into a byte-offset token
func (idx OffsetIndex) token(text string, span Span, position int, logger zerolog.Logger) Token {
	if !idx.Contains(span) {
		err := &SpanError{Span: span, Chars: idx.Chars()}
		logger.Error().Err(err).Int("position", position).Msg("invalid segmenter span")
		panic(err)
	}
	start, end := idx.ByteOffset(span.Start), idx.ByteOffset(span.End)
	return Token{
		Term:        text[start:end],
		StartOffset: start,
		EndOffset:   end,
		Position:    position,
	}
}
