package jieba

import "github.com/rs/zerolog"

// Options holds the configuration of a jieba Segmenter
type Options struct {
	// dictPath is the main dictionary file, one "word freq [pos]" per line
	dictPath string
	// userDictPath is an optional user dictionary in the same format
	userDictPath string
	// hmm enables HMM based new word discovery
	hmm    bool
	logger zerolog.Logger
}

// Option is a function type for configuring jieba Segmenter Options.
type Option func(*Options)

func WithDictionary(path string) Option {
	return func(o *Options) {
		o.dictPath = path
	}
}

func WithUserDictionary(path string) Option {
	return func(o *Options) {
		o.userDictPath = path
	}
}

func WithHMM(enabled bool) Option {
	return func(o *Options) {
		o.hmm = enabled
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// HMM returns whether HMM is enabled
func (o Options) HMM() bool {
	return o.hmm
}
