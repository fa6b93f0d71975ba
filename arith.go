package arith

import "strings"

// Evaluate evaluates an arithmetic statement and renders the rounded result
// as a decimal string. Whole results render without a fractional part.
func Evaluate(statement string, opt *EvalOptions) (string, error) {
	res, err := EvaluateValue(statement, opt)
	if err != nil {
		return "", err
	}

	return formatResult(res), nil
}

// EvaluateValue evaluates an arithmetic statement and returns the rounded
// numeric result.
func EvaluateValue(statement string, opt *EvalOptions) (float64, error) {
	eopt := opt.normalize()

	// Only space characters are stripped; any other whitespace is rejected
	// by the validator as a disallowed character.
	statement = strings.ReplaceAll(statement, " ", "")
	if statement == "" {
		return 0, ErrEmpty
	}

	if err := validate(statement, eopt); err != nil {
		return 0, err
	}

	tokens, err := tokenize(statement)
	if err != nil {
		return 0, err
	}

	rpn, err := toPostfix(tokens)
	if err != nil {
		return 0, err
	}

	res, err := evalPostfix(rpn)
	if err != nil {
		return 0, err
	}

	return roundHalfUp(res, eopt.Precision), nil
}
