package segmenters

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bububa/jieba-analysis/components/analysis"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    []string
		wantErr bool
	}{
		{
			name: "jieba",
			cfg:  Config{Kind: Jieba, DictPath: "jieba/testdata/dict.txt"},
			want: []string{"你", "今天", "很帅", "气"},
		},
		{
			name: "jieba with user dictionary",
			cfg:  Config{Kind: Jieba, DictPath: "jieba/testdata/dict.txt", UserDictPath: "jieba/testdata/user_dict.txt"},
			want: []string{"你", "今天", "很", "帅气"},
		},
		{
			name: "standard",
			cfg:  Config{Kind: Standard},
			want: []string{"你", "今", "天", "很", "帅", "气"},
		},
		{
			name:    "jieba without dictionary",
			cfg:     Config{Kind: Jieba},
			wantErr: true,
		},
		{
			name:    "unknown",
			cfg:     Config{Kind: "ngram"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = zerolog.Nop()
			seg, err := New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tokens := analysis.NewTokenizer(seg).Tokenize("你今天很帅气")
			require.Equal(t, tt.want, analysis.Terms(tokens))
		})
	}
}
