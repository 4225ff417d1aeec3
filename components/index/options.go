package index

import (
	"github.com/rs/zerolog"

	"github.com/bububa/jieba-analysis/components/analysis"
)

type Options struct {
	EngineType EngineType          // Index type (e.g., "memory")
	TopK       int                 // Maximum number of results to return
	Tokenizer  *analysis.Tokenizer // Tokenizer used for documents and queries
	Logger     zerolog.Logger
}

// Option is a function type for configuring index Engine instances.
// It follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

func WithEngine(engine EngineType) Option {
	return func(c *Options) {
		c.EngineType = engine
	}
}

// WithTopK sets the default maximum number of results to return.
//
// Example:
//
//	engine, err := memory.New(
//	    index.WithTopK(10), // Return top 10 results
//	)
func WithTopK(k int) Option {
	return func(c *Options) {
		c.TopK = k
	}
}

// WithTokenizer sets the tokenizer feeding the index.
// Documents and queries must be analyzed by the same tokenizer.
func WithTokenizer(tokenizer *analysis.Tokenizer) Option {
	return func(c *Options) {
		c.Tokenizer = tokenizer
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Options) {
		c.Logger = logger
	}
}
