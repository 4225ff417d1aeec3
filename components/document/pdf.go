package document

import (
	"bytes"
	"context"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDFParser is a parser which extracts the text of a PDF row by row
type PDFParser struct {
	password string
}

var _ Parser = (*PDFParser)(nil)

type PDFParserOption func(*PDFParser)

func PDFParserWithPassword(password string) PDFParserOption {
	return func(p *PDFParser) {
		p.password = password
	}
}

func NewPDFParser(opts ...PDFParserOption) *PDFParser {
	ret := new(PDFParser)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Parse try to parse a pdf content from a bytes.Reader and write its text to an io.Writer
func (p *PDFParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	r, err := p.open(reader)
	if err != nil {
		return err
	}
	var rowCount int
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			if rowCount > 0 {
				if _, err := writer.Write([]byte{'\n'}); err != nil {
					return err
				}
			}
			rowCount++
			for _, word := range row.Content {
				if _, err := io.WriteString(writer, word.S); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *PDFParser) open(reader *bytes.Reader) (*pdf.Reader, error) {
	if p.password != "" {
		return pdf.NewReaderEncrypted(reader, reader.Size(), func() string {
			return p.password
		})
	}
	return pdf.NewReader(reader, reader.Size())
}
