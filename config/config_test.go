package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bububa/jieba-analysis/components/analysis/segmenters"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "env file",
			path: "testdata",
			want: Config{Segmenter: "sego", DictPath: "/usr/share/dict/zh.txt", HMM: false, LogLevel: "info", Output: "yaml"},
		},
		{
			name: "env overrides file",
			path: "testdata",
			env:  map[string]string{"JIEBATOK_OUTPUT": "text", "JIEBATOK_LOG_LEVEL": "debug", "JIEBATOK_PDF_PASSWORD": "secret"},
			want: Config{Segmenter: "sego", DictPath: "/usr/share/dict/zh.txt", HMM: false, LogLevel: "debug", Output: "text", PDFPassword: "secret"},
		},
		{
			name: "defaults without file",
			path: t.TempDir(),
			env:  map[string]string{"JIEBATOK_DICT_PATH": "dict.txt"},
			want: Config{Segmenter: "jieba", DictPath: "dict.txt", HMM: true, LogLevel: "info", Output: "json"},
		},
		{
			name: "standard needs no dictionary",
			path: t.TempDir(),
			env:  map[string]string{"JIEBATOK_SEGMENTER": "standard"},
			want: Config{Segmenter: "standard", HMM: true, LogLevel: "info", Output: "json"},
		},
		{
			name:    "jieba needs a dictionary",
			path:    t.TempDir(),
			wantErr: true,
		},
		{
			name:    "unknown output",
			path:    t.TempDir(),
			env:     map[string]string{"JIEBATOK_SEGMENTER": "standard", "JIEBATOK_OUTPUT": "xml"},
			wantErr: true,
		},
		{
			name:    "unknown segmenter",
			path:    t.TempDir(),
			env:     map[string]string{"JIEBATOK_SEGMENTER": "ngram", "JIEBATOK_DICT_PATH": "dict.txt"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := Load(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSegmenterConfig(t *testing.T) {
	cfg := Config{Segmenter: "jieba", DictPath: "d.txt", UserDictPath: "u.txt", HMM: true, LogLevel: "warn"}
	got := cfg.SegmenterConfig(zerolog.Nop())
	require.Equal(t, segmenters.Jieba, got.Kind)
	require.Equal(t, "d.txt", got.DictPath)
	require.Equal(t, "u.txt", got.UserDictPath)
	require.True(t, got.HMM)
	require.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestDocumentOptions(t *testing.T) {
	require.Empty(t, Config{}.DocumentOptions())
	require.Len(t, Config{PDFPassword: "secret"}.DocumentOptions(), 1)
}

func TestValidateOutputOverride(t *testing.T) {
	t.Setenv("JIEBATOK_SEGMENTER", "standard")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	cfg.Output = "csv"
	require.Error(t, cfg.Validate())
	cfg.Output = "text"
	require.NoError(t, cfg.Validate())
}
