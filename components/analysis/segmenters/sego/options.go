package sego

import "github.com/rs/zerolog"

type Options struct {
	dictPaths []string
	logger    zerolog.Logger
}

type Option func(*Options)

// WithDictionary appends dictionary files, loaded in order
func WithDictionary(paths ...string) Option {
	return func(o *Options) {
		for _, v := range paths {
			if v != "" {
				o.dictPaths = append(o.dictPaths, v)
			}
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
