package segmenters

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bububa/jieba-analysis/components/analysis"
	"github.com/bububa/jieba-analysis/components/analysis/segmenters/jieba"
	"github.com/bububa/jieba-analysis/components/analysis/segmenters/sego"
	"github.com/bububa/jieba-analysis/components/analysis/segmenters/standard"
)

var (
	FromJieba    = jieba.New
	FromSego     = sego.New
	FromStandard = standard.New
)

// Kind names a segmenter backend
type Kind string

const (
	Jieba    Kind = "jieba"
	Sego     Kind = "sego"
	Standard Kind = "standard"
)

// Config is the backend independent segmenter configuration
type Config struct {
	Kind         Kind
	DictPath     string
	UserDictPath string
	HMM          bool
	Logger       zerolog.Logger
}

// New builds the segmenter named by cfg.Kind
func New(cfg Config) (analysis.Segmenter, error) {
	switch cfg.Kind {
	case Jieba:
		seg, err := FromJieba(
			jieba.WithDictionary(cfg.DictPath),
			jieba.WithUserDictionary(cfg.UserDictPath),
			jieba.WithHMM(cfg.HMM),
			jieba.WithLogger(cfg.Logger),
		)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case Sego:
		seg, err := FromSego(
			sego.WithDictionary(cfg.DictPath, cfg.UserDictPath),
			sego.WithLogger(cfg.Logger),
		)
		if err != nil {
			return nil, err
		}
		return seg, nil
	case Standard:
		return FromStandard(), nil
	}
	return nil, fmt.Errorf("unknown segmenter kind %q", cfg.Kind)
}
