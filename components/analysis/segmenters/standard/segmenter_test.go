package standard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bububa/jieba-analysis/components/analysis"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "latin",
			input: "Hello, world",
			want:  []string{"Hello", ",", "world"},
		},
		{
			name:  "ideographs",
			input: "你好 go",
			want:  []string{"你", "好", "go"},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			want:  []string{},
		},
	}

	tokenizer := analysis.NewTokenizer(New())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := tokenizer.Tokenize(tt.input)
			require.Equal(t, tt.want, analysis.Terms(tokens))
			for i, tok := range tokens {
				require.Equal(t, i, tok.Position)
				require.Equal(t, tt.input[tok.StartOffset:tok.EndOffset], tok.Term)
			}
		})
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tokens := analysis.NewTokenizer(New()).Tokenize("über 世界")
	require.Equal(t, []analysis.Token{
		{Term: "über", StartOffset: 0, EndOffset: 5, Position: 0},
		{Term: "世", StartOffset: 6, EndOffset: 9, Position: 1},
		{Term: "界", StartOffset: 9, EndOffset: 12, Position: 2},
	}, tokens)
}
