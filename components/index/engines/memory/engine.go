package memory

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/bububa/jieba-analysis/components/index"
)

var (
	// ErrNoTokenizer is returned by New when no tokenizer is configured
	ErrNoTokenizer = errors.New("memory: tokenizer is required")
	// ErrCollectionNotFound is returned when searching a collection never inserted into
	ErrCollectionNotFound = errors.New("memory: collection not found")
	// errCollectionDropped is returned by Collection.Add after DropCollection
	errCollectionDropped = errors.New("memory: collection dropped")
)

// Engine implements the index.Engine interface using in-memory postings.
// It provides thread-safe operations for managing collections and
// answering term queries without the need for external storage.
type Engine struct {
	// collections stores all collections in memory
	collections *sync.Map
	// docs counts indexed documents across collections
	docs *atomic.Int64
	index.Options
}

var _ index.Engine = (*Engine)(nil)

// Collection is a named set of documents and the postings of their terms.
type Collection struct {
	docs     map[string]index.Document
	postings map[string][]index.Posting
	dropped  bool
	// mu provides thread-safety for concurrent operations
	mu sync.RWMutex
}

func newCollection() *Collection {
	return &Collection{
		docs:     make(map[string]index.Document),
		postings: make(map[string][]index.Posting),
	}
}

// Add stores doc with its postings, replacing a document with the same ID.
// It reports whether the document is new to the collection.
func (c *Collection) Add(doc index.Document, postings map[string][]index.Posting) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dropped {
		return false, errCollectionDropped
	}
	_, exists := c.docs[doc.ID]
	if exists {
		c.remove(doc.ID)
	}
	c.docs[doc.ID] = doc
	for term, list := range postings {
		c.postings[term] = append(c.postings[term], list...)
	}
	return !exists, nil
}

// drop marks the collection as dropped and returns its document count
func (c *Collection) drop() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropped = true
	return len(c.docs)
}

// remove drops every posting of docID, the caller holds the write lock
func (c *Collection) remove(docID string) {
	for term, list := range c.postings {
		kept := list[:0]
		for _, p := range list {
			if p.DocID != docID {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			delete(c.postings, term)
			continue
		}
		c.postings[term] = kept
	}
	delete(c.docs, docID)
}

// Postings returns a copy of the postings of term
func (c *Collection) Postings(term string) []index.Posting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := c.postings[term]
	ret := make([]index.Posting, len(list))
	copy(ret, list)
	return ret
}

// Document returns the document stored under id
func (c *Collection) Document(id string) (index.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	return doc, ok
}

// Size returns the number of documents in the collection
func (c *Collection) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// New creates a new in-memory index.
// It initializes an empty collection map and returns a ready-to-use engine.
func New(opts ...index.Option) (*Engine, error) {
	ret := &Engine{
		collections: new(sync.Map),
		docs:        atomic.NewInt64(0),
		Options: index.Options{
			EngineType: index.Memory,
			Logger:     zerolog.Nop(),
		},
	}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.Tokenizer == nil {
		return nil, ErrNoTokenizer
	}
	return ret, nil
}

// HasCollection checks if a collection with the given name exists.
func (e *Engine) HasCollection(name string) bool {
	_, exists := e.collections.Load(name)
	return exists
}

// DropCollection removes a collection and all its documents.
func (e *Engine) DropCollection(name string) {
	if col, loaded := e.collections.LoadAndDelete(name); loaded {
		e.docs.Sub(int64(col.(*Collection).drop()))
	}
}

// Collection returns the named collection, creating it when missing.
func (e *Engine) Collection(name string) *Collection {
	col, _ := e.collections.LoadOrStore(name, newCollection())
	return col.(*Collection)
}

// lookup returns the named collection without creating it
func (e *Engine) lookup(name string) (*Collection, bool) {
	col, ok := e.collections.Load(name)
	if !ok {
		return nil, false
	}
	return col.(*Collection), true
}

// Count returns the number of indexed documents across collections
func (e *Engine) Count() int64 {
	return e.docs.Load()
}

// Insert tokenizes docs and adds their postings to the collection.
// Documents without ID get one derived from their content.
func (e *Engine) Insert(ctx context.Context, collectionName string, docs ...index.Document) error {
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if doc.ID == "" {
			doc.ID = doc.UUID()
		}
		tokens := e.Tokenizer.Tokenize(doc.Text)
		postings := make(map[string][]index.Posting, len(tokens))
		for _, tok := range tokens {
			postings[tok.Term] = append(postings[tok.Term], index.Posting{
				DocID:       doc.ID,
				Position:    tok.Position,
				StartOffset: tok.StartOffset,
				EndOffset:   tok.EndOffset,
			})
		}
		added, err := e.add(collectionName, doc, postings)
		if err != nil {
			return err
		}
		if added {
			e.docs.Inc()
		}
		e.Logger.Debug().
			Str("collection", collectionName).
			Str("id", doc.ID).
			Int("tokens", len(tokens)).
			Int("terms", len(postings)).
			Msg("document indexed")
	}
	return nil
}

// add stores doc in the named collection, recreating it when it was
// dropped between lookup and write
func (e *Engine) add(collectionName string, doc index.Document, postings map[string][]index.Posting) (bool, error) {
	for {
		added, err := e.Collection(collectionName).Add(doc, postings)
		if errors.Is(err, errCollectionDropped) {
			continue
		}
		return added, err
	}
}

// Search tokenizes query and ranks the documents containing its terms
// by the number of term occurrences.
func (e *Engine) Search(ctx context.Context, query string, opts ...index.SearchOption) ([]index.Record, error) {
	var option index.SearchOptions
	for _, opt := range opts {
		opt(&option)
	}
	col, ok := e.lookup(option.Collection)
	if !ok {
		return nil, ErrCollectionNotFound
	}
	seen := make(map[string]struct{})
	matched := make(map[string][]index.Posting)
	for _, tok := range e.Tokenizer.Tokenize(query) {
		if _, ok := seen[tok.Term]; ok {
			continue
		}
		seen[tok.Term] = struct{}{}
		for _, p := range col.Postings(tok.Term) {
			matched[p.DocID] = append(matched[p.DocID], p)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]index.Record, 0, len(matched))
	for id, postings := range matched {
		doc, ok := col.Document(id)
		if !ok {
			continue
		}
		sort.Slice(postings, func(i, j int) bool {
			return postings[i].Position < postings[j].Position
		})
		records = append(records, index.Record{
			ID:       id,
			Score:    float64(len(postings)),
			Document: doc,
			Postings: postings,
		})
	}
	records = filterRecords(records, &option)
	sort.Slice(records, func(i, j int) bool {
		if records[i].Score == records[j].Score {
			return records[i].ID < records[j].ID
		}
		return records[i].Score > records[j].Score
	})
	if option.TopK == 0 {
		option.TopK = e.TopK
	}
	if option.TopK > 0 && option.TopK < len(records) {
		records = records[:option.TopK]
	}
	return records, nil
}

// filterRecords filters records by document metadata.
// It does this concurrently.
func filterRecords(records []index.Record, opts *index.SearchOptions) []index.Record {
	if len(opts.Meta) == 0 {
		return records
	}
	filtered := make([]index.Record, 0, len(records))
	var filteredLock sync.Mutex

	// Use number of records or CPUs, whichever is smaller.
	concurrency := min(runtime.NumCPU(), len(records))

	recordChan := make(chan index.Record, concurrency*2)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range recordChan {
				if recordMatchesFilters(&record, opts) {
					filteredLock.Lock()
					filtered = append(filtered, record)
					filteredLock.Unlock()
				}
			}
		}()
	}

	for _, record := range records {
		recordChan <- record
	}
	close(recordChan)

	wg.Wait()
	return filtered
}

// recordMatchesFilters checks if a document has all the metadata of the filter.
func recordMatchesFilters(record *index.Record, opts *index.SearchOptions) bool {
	for k, v := range opts.Meta {
		if record.Document.Meta[k] != v {
			return false
		}
	}
	return true
}
