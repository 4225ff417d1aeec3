package document

import (
	"context"
	"os"
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/require"
)

func TestFileReadText(t *testing.T) {
	tests := []struct {
		name  string
		fname string
		want  string
	}{
		{name: "plain text", fname: "testdata/plain.txt", want: "中华人民共和国\n"},
		{name: "html", fname: "testdata/page.html", want: "你今天很帅！\nhello world"},
		{name: "pdf", fname: "testdata/hello.pdf", want: "Hello\nWorld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFile(tt.fname)
			require.NoError(t, err)
			require.Equal(t, tt.fname, f.Path())
			require.NotEmpty(t, f.Meta["modtime"])
			got, err := f.ReadText(context.Background())
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewFileDirectory(t *testing.T) {
	_, err := NewFile("testdata")
	require.Error(t, err)
}

func TestParseTextUnsupported(t *testing.T) {
	_, err := ParseText(context.Background(), []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0})
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestHTMLParserSelector(t *testing.T) {
	got, err := ParseTextWith(context.Background(), NewHTMLParser(HTMLParserWithSelector("p")), "<html><body><h1>title</h1><p>第一段</p><p>second</p></body></html>")
	require.NoError(t, err)
	require.Equal(t, "第一段\nsecond", got)
}

func TestParserForPDFPassword(t *testing.T) {
	bs, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)
	mtype := mimetype.Detect(bs)
	require.True(t, mtype.Is("application/pdf"))

	parser, err := ParserFor(mtype, WithPDFPassword("secret"))
	require.NoError(t, err)
	require.Equal(t, NewPDFParser(PDFParserWithPassword("secret")), parser)

	parser, err = ParserFor(mtype)
	require.NoError(t, err)
	require.Equal(t, NewPDFParser(), parser)

	f, err := NewFile("testdata/hello.pdf")
	require.NoError(t, err)
	got, err := f.ReadText(context.Background(), WithPDFPassword("secret"))
	require.NoError(t, err)
	require.Equal(t, "Hello\nWorld", got)
}
