package index

type SearchOptions struct {
	Collection string
	TopK       int
	Meta       map[string]string
}

type SearchOption func(*SearchOptions)

func SearchWithCollection(name string) SearchOption {
	return func(r *SearchOptions) {
		r.Collection = name
	}
}

func SearchWithTopK(topK int) SearchOption {
	return func(r *SearchOptions) {
		r.TopK = topK
	}
}

func SearchWithMeta(meta map[string]string) SearchOption {
	return func(r *SearchOptions) {
		r.Meta = meta
	}
}

// Record represents a single document matched by a search
type Record struct {
	// ID is the identifier of the document
	ID string `json:"id"`
	// Score is the number of query term occurrences in the document
	Score float64 `json:"score"`
	// Document is the matched document
	Document Document `json:"document"`
	// Postings are the matched term occurrences, ordered by position
	Postings []Posting `json:"postings"`
}
