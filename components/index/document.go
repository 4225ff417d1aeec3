package index

import (
	"bytes"
	"sort"

	"github.com/google/uuid"
)

// Document is a piece of text to index with associated metadata
type Document struct {
	ID   string            `json:"id"`
	Text string            `json:"text"`
	Meta map[string]string `json:"meta,omitempty"`
}

// UUID returns a stable id derived from the document text and metadata
func (d Document) UUID() string {
	keys := make([]string, 0, len(d.Meta))
	for k := range d.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb := new(bytes.Buffer)
	sb.WriteString(d.Text)
	for _, k := range keys {
		sb.WriteByte('\n')
		sb.WriteString(k + ":" + d.Meta[k])
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, sb.Bytes()).String()
}

// Posting is one occurrence of a term in a document
type Posting struct {
	DocID       string `json:"doc_id"`
	Position    int    `json:"position"`
	StartOffset int    `json:"start_offset"`
	EndOffset   int    `json:"end_offset"`
}
