package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bububa/jieba-analysis/components/analysis/segmenters"
	"github.com/bububa/jieba-analysis/components/document"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "JIEBATOK"

// Config holds the runtime configuration of the tokenizer CLI.
type Config struct {
	Segmenter    string `mapstructure:"SEGMENTER" validate:"oneof=jieba sego standard"`
	DictPath     string `mapstructure:"DICT_PATH" validate:"required_unless=Segmenter standard"`
	UserDictPath string `mapstructure:"USER_DICT_PATH"`
	HMM          bool   `mapstructure:"HMM"`
	LogLevel     string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	Output       string `mapstructure:"OUTPUT" validate:"oneof=json yaml text"`
	PDFPassword  string `mapstructure:"PDF_PASSWORD"`
}

var defaults = map[string]any{
	"SEGMENTER":      string(segmenters.Jieba),
	"DICT_PATH":      "",
	"USER_DICT_PATH": "",
	"HMM":            true,
	"LOG_LEVEL":      "info",
	"OUTPUT":         "json",
	"PDF_PASSWORD":   "",
}

// Load reads jiebatok.env from path (if present) then JIEBATOK_* environment variables
func Load(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("jiebatok")
	v.SetConfigType("env")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}
	err = config.Validate()
	return
}

// Validate checks the config fields
func (config Config) Validate() error {
	return validator.New().Struct(config)
}

// SegmenterConfig returns the segmenter settings of config
func (config Config) SegmenterConfig(logger zerolog.Logger) segmenters.Config {
	return segmenters.Config{
		Kind:         segmenters.Kind(config.Segmenter),
		DictPath:     config.DictPath,
		UserDictPath: config.UserDictPath,
		HMM:          config.HMM,
		Logger:       logger,
	}
}

// DocumentOptions returns the options used to extract text from input files
func (config Config) DocumentOptions() []document.Option {
	if config.PDFPassword == "" {
		return nil
	}
	return []document.Option{document.WithPDFPassword(config.PDFPassword)}
}

// Level returns the zerolog level of LogLevel
func (config Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
