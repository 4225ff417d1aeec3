package index

import "context"

type EngineType string

const (
	Memory EngineType = "memory"
)

// Engine is the indexing side of the analysis pipeline: it consumes the
// token streams of documents and answers term queries.
type Engine interface {
	Insert(context.Context, string, ...Document) error
	Search(context.Context, string, ...SearchOption) ([]Record, error)
}
