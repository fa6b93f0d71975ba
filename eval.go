package arith

import (
	"fmt"
	"math"
	"strconv"
)

// evalPostfix evaluates a token sequence in reverse Polish notation on a
// value stack and returns the unrounded result.
func evalPostfix(tokens []token) (float64, error) {
	var stack []float64

	for _, tok := range tokens {
		if tok.Type == tokNumber {
			stack = append(stack, tok.Num)
			continue
		}

		if tok.Type != tokOperator {
			return 0, fmt.Errorf("%w: unexpected token %q at offset %d", ErrEval, tok.Lit, tok.Pos)
		}

		switch len(stack) {
		case 0:
			return 0, fmt.Errorf("%w: operator %q without operands at offset %d", ErrEval, tok.Lit, tok.Pos)

		case 1:
			// A lone value admits only unary negation.
			if tok.Lit != "-" {
				return 0, fmt.Errorf("%w: operator %q with single operand at offset %d", ErrEval, tok.Lit, tok.Pos)
			}
			stack[0] = -stack[0]

		default:
			left := stack[len(stack)-2]
			right := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			var res float64
			switch tok.Lit {
			case "+":
				res = left + right
			case "-":
				res = left - right
			case "*":
				res = left * right
			case "/":
				if right == 0 {
					return 0, fmt.Errorf("%w: division by zero at offset %d", ErrEval, tok.Pos)
				}
				res = left / right
			default:
				return 0, fmt.Errorf("%w: unknown operator %q at offset %d", ErrEval, tok.Lit, tok.Pos)
			}
			stack[len(stack)-1] = res
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on stack", ErrEval, len(stack))
	}

	res := stack[0]
	if math.IsInf(res, 0) || math.IsNaN(res) {
		return 0, fmt.Errorf("%w: result is not a finite number", ErrEval)
	}

	return res, nil
}

// roundHalfUp rounds v half-up (toward positive infinity) to the given number
// of decimal places, so 0.00005 rounds to 0.0001 and -0.00005 rounds to 0.
func roundHalfUp(v float64, precision int) float64 {
	pow := math.Pow(10, float64(precision))
	scaled := v * pow
	if math.IsInf(scaled, 0) {
		// At this magnitude the fractional part is not representable anyway.
		return v
	}

	return math.Floor(scaled+0.5) / pow
}

// formatResult renders a rounded result, dropping the fractional part when
// the value is whole (e.g. "151" rather than "151.0").
func formatResult(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
