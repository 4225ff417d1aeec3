package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bububa/jieba-analysis/components/analysis"
	"github.com/bububa/jieba-analysis/components/index"
)

type tokenStream struct {
	Source string           `json:"source" yaml:"source"`
	Tokens []analysis.Token `json:"tokens" yaml:"tokens"`
}

// writer prints token streams and search records in the configured format
type writer struct {
	out    io.Writer
	format string
}

func newWriter(out io.Writer, format string) *writer {
	return &writer{out: out, format: format}
}

func (w *writer) WriteTokens(source string, tokens []analysis.Token) error {
	if w.format == "text" {
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w.out, "%d\t%d\t%d\t%s\n", tok.Position, tok.StartOffset, tok.EndOffset, tok.Term); err != nil {
				return err
			}
		}
		return nil
	}
	return w.encode(tokenStream{Source: source, Tokens: tokens})
}

func (w *writer) WriteRecords(records []index.Record) error {
	if w.format == "text" {
		for _, r := range records {
			if _, err := fmt.Fprintf(w.out, "%g\t%s\n", r.Score, r.ID); err != nil {
				return err
			}
		}
		return nil
	}
	return w.encode(records)
}

func (w *writer) encode(v any) error {
	if w.format == "yaml" {
		enc := yaml.NewEncoder(w.out)
		defer enc.Close()
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
