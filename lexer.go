package arith

import (
	"fmt"
	"strconv"
)

// lexer represents a tokenizer for an arithmetic statement.
type lexer struct {
	input  string  // Statement being scanned
	tokens []token // Emitted tokens
	start  int     // Start offset of the pending number literal
	pos    int     // Current byte offset
}

// tokenize splits a validated statement into a token sequence.
func tokenize(statement string) ([]token, error) {
	l := &lexer{input: statement}

	for ; l.pos < len(l.input); l.pos++ {
		c := l.input[l.pos]
		if isNumberByte(c) {
			// Digits and '.' accumulate into the pending number literal.
			continue
		}

		// Parentheses and operators end the pending literal.
		if err := l.flushNumber(); err != nil {
			return nil, err
		}

		switch c {
		case '(':
			l.tokens = append(l.tokens, token{Type: tokLParen, Lit: "(", Pos: l.pos})
		case ')':
			l.tokens = append(l.tokens, token{Type: tokRParen, Lit: ")", Pos: l.pos})
		case '+', '-', '*', '/':
			l.tokens = append(l.tokens, token{Type: tokOperator, Lit: string(c), Pos: l.pos})
		default:
			return nil, l.errorf("unexpected character %q", c)
		}
		l.start = l.pos + 1
	}

	if err := l.flushNumber(); err != nil {
		return nil, err
	}

	if len(l.tokens) == 0 {
		return nil, l.errorf("no tokens")
	}

	// A statement cannot end in a binary operator.
	if last := l.tokens[len(l.tokens)-1]; last.Type == tokOperator {
		return nil, l.errorf("trailing operator %q", last.Lit)
	}

	return l.tokens, nil
}

// flushNumber emits the pending number literal, if any, as a number token.
func (l *lexer) flushNumber() error {
	lit := l.input[l.start:l.pos]
	if lit == "" {
		return nil
	}

	num, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return l.errorf("malformed number %q", lit)
	}

	l.tokens = append(l.tokens, token{Type: tokNumber, Lit: lit, Num: num, Pos: l.start})
	return nil
}

// errorf formats an error message and returns an error.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrLex, l.pos, fmt.Sprintf(format, args...))
}
