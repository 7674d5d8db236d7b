package jack

// TokenCursor walks a read-only token sequence. The position never exceeds
// the length of the sequence.
type TokenCursor struct {
	tokens   []*Token
	position int
}

// NewTokenCursor creates a cursor positioned at the first token.
func NewTokenCursor(tokens []*Token) *TokenCursor {
	return &TokenCursor{tokens, 0}
}

// Current returns the token at the current position.
func (c *TokenCursor) Current() (*Token, error) {
	if c.Exhausted() {
		return nil, newEndOfInputError(c.position)
	}
	return c.tokens[c.position], nil
}

// Advance moves past the current token. Moving past the last token is
// allowed once, after which the cursor is exhausted.
func (c *TokenCursor) Advance() error {
	if c.Exhausted() {
		return newEndOfInputError(c.position)
	}
	c.position++
	return nil
}

// Position returns the index of the current token.
func (c *TokenCursor) Position() int {
	return c.position
}

// Len returns the length of the underlying sequence.
func (c *TokenCursor) Len() int {
	return len(c.tokens)
}

// Exhausted reports whether every token has been consumed.
func (c *TokenCursor) Exhausted() bool {
	return c.position >= len(c.tokens)
}
