package document

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLParser extracts the visible text of a html page
type HTMLParser struct {
	selector string
}

var _ Parser = (*HTMLParser)(nil)

type HTMLParserOption func(*HTMLParser)

// HTMLParserWithSelector limits the extracted text to the matched elements, "body" by default
func HTMLParserWithSelector(selector string) HTMLParserOption {
	return func(p *HTMLParser) {
		p.selector = selector
	}
}

func NewHTMLParser(opts ...HTMLParserOption) *HTMLParser {
	ret := &HTMLParser{selector: "body"}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Parse try to parse a html content from a bytes.Reader and write its text to an io.Writer
func (p *HTMLParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return err
	}
	doc.Find("script,style,noscript").Remove()
	var lines []string
	doc.Find(p.selector).Each(func(_ int, s *goquery.Selection) {
		for _, line := range strings.Split(s.Text(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	})
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = io.WriteString(writer, strings.Join(lines, "\n"))
	return err
}
