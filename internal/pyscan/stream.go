package pyscan

// Stream is a cursor over a token slice with the small skip and consume
// operations the locator needs.
type Stream struct {
	toks []Token
	pos  int
}

// NewStream returns a stream positioned at the first token.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Current returns the token under the cursor, or nil when the stream is
// exhausted.
func (s *Stream) Current() *Token {
	if s.pos >= len(s.toks) {
		return nil
	}
	return &s.toks[s.pos]
}

// Next advances past the current token and returns it.
func (s *Stream) Next() *Token {
	tok := s.Current()
	if tok != nil {
		s.pos++
	}
	return tok
}

// Skip advances past any run of tokens whose kind is in kinds.
func (s *Stream) Skip(kinds ...Kind) {
	for {
		tok := s.Current()
		if tok == nil {
			return
		}
		matched := false
		for _, k := range kinds {
			if tok.Kind == k {
				matched = true
				break
			}
		}
		if !matched {
			return
		}
		s.pos++
	}
}

// SkipUntilValue advances until the current token's value is one of
// values, or the stream ends.
func (s *Stream) SkipUntilValue(values ...string) {
	for {
		tok := s.Current()
		if tok == nil {
			return
		}
		for _, v := range values {
			if tok.Value == v {
				return
			}
		}
		s.pos++
	}
}
