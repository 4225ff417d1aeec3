package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupported is returned for content no parser can turn into text
var ErrUnsupported = errors.New("document: unsupported content type")

// Parser extracts plain text from a document content
type Parser interface {
	Parse(context.Context, *bytes.Reader, io.Writer) error
}

// Option configures the parsers picked by ParserFor
type Option func(*options)

type options struct {
	pdfPassword string
}

// WithPDFPassword sets the password used to decrypt PDF content
func WithPDFPassword(password string) Option {
	return func(o *options) {
		o.pdfPassword = password
	}
}

// ParserFor returns the parser for the detected MIME type of content
func ParserFor(mtype *mimetype.MIME, opts ...Option) (Parser, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case mtype.Is("text/html"):
		return NewHTMLParser(), nil
	case mtype.Is("application/pdf"):
		return NewPDFParser(PDFParserWithPassword(o.pdfPassword)), nil
	case strings.HasPrefix(mtype.String(), "text/"):
		return new(TextParser), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, mtype.String())
}

// ParseText detects the content type of bs and extracts its text
func ParseText(ctx context.Context, bs []byte, opts ...Option) (string, error) {
	parser, err := ParserFor(mimetype.Detect(bs), opts...)
	if err != nil {
		return "", err
	}
	return ParseTextWith(ctx, parser, string(bs))
}

// TextParser copies plain text content as is
type TextParser struct{}

var _ Parser = (*TextParser)(nil)

// Parse implements Parser interface
func (p *TextParser) Parse(_ context.Context, reader *bytes.Reader, writer io.Writer) error {
	_, err := reader.WriteTo(writer)
	return err
}

// ParseTextWith extracts the text of content with the given parser
func ParseTextWith(ctx context.Context, parser Parser, content string) (string, error) {
	out := new(strings.Builder)
	if err := parser.Parse(ctx, bytes.NewReader([]byte(content)), out); err != nil {
		return "", err
	}
	return out.String(), nil
}
