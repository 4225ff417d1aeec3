package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bububa/jieba-analysis/components/analysis"
	"github.com/bububa/jieba-analysis/components/analysis/segmenters"
	"github.com/bububa/jieba-analysis/components/document"
	"github.com/bububa/jieba-analysis/components/index"
	"github.com/bububa/jieba-analysis/components/index/engines"
	"github.com/bububa/jieba-analysis/config"
)

func main() {
	var (
		configPath string
		format     string
		query      string
		topK       int
	)
	flag.StringVar(&configPath, "config", ".", "directory containing jiebatok.env")
	flag.StringVar(&format, "format", "", "output format: json, yaml or text (overrides OUTPUT)")
	flag.StringVar(&query, "query", "", "index the inputs and search them with this query")
	flag.IntVar(&topK, "top", 10, "maximum number of search results")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if format != "" {
		cfg.Output = format
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Str("format", format).Msg("invalid output format")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seg, err := segmenters.New(cfg.SegmenterConfig(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create segmenter")
	}
	tokenizer := analysis.NewTokenizer(seg, analysis.WithLogger(log.Logger))

	inputs, err := readInputs(ctx, flag.Args(), cfg.DocumentOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}

	w := newWriter(os.Stdout, cfg.Output)
	if query == "" {
		for _, in := range inputs {
			if err := w.WriteTokens(in.ID, tokenizer.Tokenize(in.Text)); err != nil {
				log.Fatal().Err(err).Msg("cannot write tokens")
			}
		}
		return
	}

	engine, err := engines.FromMemory(
		index.WithTokenizer(tokenizer),
		index.WithTopK(topK),
		index.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create index")
	}
	if err := engine.Insert(ctx, "", inputs...); err != nil {
		log.Fatal().Err(err).Msg("cannot index input")
	}
	log.Info().Int64("docs", engine.Count()).Msg("inputs indexed")
	records, err := engine.Search(ctx, query)
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}
	if err := w.WriteRecords(records); err != nil {
		log.Fatal().Err(err).Msg("cannot write records")
	}
}

// readInputs turns every file argument into a document, stdin when there is none
func readInputs(ctx context.Context, args []string, opts ...document.Option) ([]index.Document, error) {
	if len(args) == 0 {
		bs, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []index.Document{{ID: "-", Text: string(bs)}}, nil
	}
	docs := make([]index.Document, 0, len(args))
	for _, fname := range args {
		f, err := document.NewFile(fname)
		if err != nil {
			return nil, err
		}
		text, err := f.ReadText(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		docs = append(docs, index.Document{ID: fname, Text: text, Meta: f.Meta})
	}
	return docs, nil
}
