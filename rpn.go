package arith

import "fmt"

// toPostfix converts an infix token sequence into reverse Polish notation
// using the shunting-yard algorithm. Numbers are appended to the output as
// they arrive; operators wait on a stack until an operator of equal or lower
// priority, a closing parenthesis, or the end of input flushes them.
func toPostfix(tokens []token) ([]token, error) {
	out := make([]token, 0, len(tokens))
	var stack []token

	for _, tok := range tokens {
		switch tok.Type {
		case tokNumber:
			out = append(out, tok)

		case tokOperator:
			// All four operators are left-associative, so an operator of
			// equal priority on the stack top pops before the push.
			for len(stack) > 0 && priority(tok) <= priority(stack[len(stack)-1]) {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case tokLParen:
			stack = append(stack, tok)

		case tokRParen:
			open := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].Type == tokLParen {
					open = i
					break
				}
			}
			if open < 0 {
				return nil, fmt.Errorf("%w: unbalanced ')' at offset %d", ErrParse, tok.Pos)
			}
			for i := len(stack) - 1; i > open; i-- {
				out = append(out, stack[i])
			}
			stack = stack[:open]

		default:
			return nil, fmt.Errorf("%w: unexpected token %q at offset %d", ErrParse, tok.Lit, tok.Pos)
		}
	}

	// Drain the stack; anything left that is not an operator is a stray '('.
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Type != tokOperator {
			return nil, fmt.Errorf("%w: unbalanced %q at offset %d", ErrParse, stack[i].Lit, stack[i].Pos)
		}
		out = append(out, stack[i])
	}

	return out, nil
}
