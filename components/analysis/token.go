package analysis

// Token is an indexable term cut out of the analyzed text.
type Token struct {
	// Term is a substring of the original text, it shares the text's memory
	Term string `json:"term" yaml:"term"`
	// StartOffset is the byte offset of the first byte of Term
	StartOffset int `json:"start_offset" yaml:"start_offset"`
	// EndOffset is the byte offset right after the last byte of Term (exclusive)
	EndOffset int `json:"end_offset" yaml:"end_offset"`
	// Position is the zero-based emission order of the token
	Position int `json:"position" yaml:"position"`
}

// Len returns the byte length of the token term
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// Terms returns the terms of tokens in position order
func Terms(tokens []Token) []string {
	ret := make([]string, 0, len(tokens))
	for _, v := range tokens {
		ret = append(ret, v.Term)
	}
	return ret
}
