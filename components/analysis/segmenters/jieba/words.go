package jieba

import (
	"sync"

	"github.com/wangbin/jiebago/dictionary"
)

// wordSet records every word listed in the loaded dictionaries whatever its
// frequency. The jiebago frequency map also holds word prefixes with a zero
// frequency, so it cannot tell a zero frequency word from a prefix.
type wordSet struct {
	sync.RWMutex
	words map[string]struct{}
}

var _ dictionary.DictLoader = (*wordSet)(nil)

func newWordSet() *wordSet {
	return &wordSet{words: make(map[string]struct{})}
}

// Load implements dictionary.DictLoader interface
func (w *wordSet) Load(ch <-chan dictionary.Token) {
	w.Lock()
	defer w.Unlock()
	for token := range ch {
		w.add(token.Text())
	}
}

// AddToken implements dictionary.DictLoader interface
func (w *wordSet) AddToken(token dictionary.Token) {
	w.Lock()
	defer w.Unlock()
	w.add(token.Text())
}

func (w *wordSet) add(word string) {
	if word != "" {
		w.words[word] = struct{}{}
	}
}

// Contains reports whether word is a dictionary entry
func (w *wordSet) Contains(word string) bool {
	w.RLock()
	defer w.RUnlock()
	_, ok := w.words[word]
	return ok
}
