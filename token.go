package arith

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokNumber   tokenType = iota // Decimal number literal
	tokOperator                  // One of '+', '-', '*', '/'
	tokLParen                    // Left parenthesis
	tokRParen                    // Right parenthesis
)

// token represents a token of an arithmetic statement.
type token struct {
	Lit  string    // Literal value of the token
	Num  float64   // Parsed value for number tokens
	Type tokenType // Type of the token
	Pos  int       // Byte offset of the token in the statement
}

// priority returns the binding rank of an operator token.
// A left parenthesis ranks lowest so nothing pops past it; anything that is
// not an operator or '(' ranks above every operator and always flushes.
func priority(t token) int {
	switch t.Type {
	case tokLParen:
		return 1
	case tokOperator:
		if t.Lit == "+" || t.Lit == "-" {
			return 2
		}
		return 3
	default:
		return 4
	}
}

// isOperatorByte checks if a byte is an operator symbol.
func isOperatorByte(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// isNumberByte checks if a byte is part of a number literal.
func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}
