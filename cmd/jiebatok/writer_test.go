package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bububa/jieba-analysis/components/analysis"
	"github.com/bububa/jieba-analysis/components/analysis/segmenters/standard"
)

var testTokens = []analysis.Token{
	{Term: "你", StartOffset: 0, EndOffset: 3, Position: 0},
	{Term: "今天", StartOffset: 3, EndOffset: 9, Position: 1},
}

func TestWriteTokens(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "text",
			format: "text",
			want:   "0\t0\t3\t你\n1\t3\t9\t今天\n",
		},
		{
			name:   "json",
			format: "json",
			want: `{
  "source": "-",
  "tokens": [
    {
      "term": "你",
      "start_offset": 0,
      "end_offset": 3,
      "position": 0
    },
    {
      "term": "今天",
      "start_offset": 3,
      "end_offset": 9,
      "position": 1
    }
  ]
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, newWriter(buf, tt.format).WriteTokens("-", testTokens))
			require.Equal(t, tt.want, buf.String())
		})
	}

	buf := new(bytes.Buffer)
	require.NoError(t, newWriter(buf, "yaml").WriteTokens("-", tokens))
	require.Contains(t, buf.String(), "tokens: []")
}

func TestWriteTokensYAML(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, newWriter(buf, "yaml").WriteTokens("-", testTokens))
	var got tokenStream
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, tokenStream{Source: "-", Tokens: testTokens}, got)
}

func TestWriteTokensEmptyInput(t *testing.T) {
	tokens := analysis.NewTokenizer(standard.New()).Tokenize("")
	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: "{\n  \"source\": \"-\",\n  \"tokens\": []\n}\n"},
		{format: "text", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			buf := new(bytes.Buffer)
			require.NoError(t, newWriter(buf, tt.format).WriteTokens("-", tokens))
			require.Equal(t, tt.want, buf.String())
		})
	}

	buf := new(bytes.Buffer)
	require.NoError(t, newWriter(buf, "yaml").WriteTokens("-", tokens))
	require.Contains(t, buf.String(), "tokens: []")
}
