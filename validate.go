package arith

import "fmt"

// validate checks that the statement contains only permitted symbols and no
// adjacent operator pair. Permitted symbols are '(', ')', '*', '+', '-', '.',
// '/' and '0'..'9', i.e. byte codes 40-43 and 45-57 with ',' (44) excluded.
func validate(statement string, opt EvalOptions) error {
	// Legacy scan never compares the first character pair.
	first := 1
	if opt.DisableLeadingPairCheck {
		first = 2
	}

	for i := 0; i < len(statement); i++ {
		c := statement[i]
		if c < 40 || c == 44 || c > 57 {
			return fmt.Errorf("%w: invalid character %q at offset %d", ErrValidate, c, i)
		}

		if i >= first && isOperatorByte(statement[i-1]) && isOperatorByte(c) {
			return fmt.Errorf("%w: adjacent operators %q at offset %d", ErrValidate, statement[i-1:i+1], i-1)
		}
	}

	return nil
}
