/*
Package arith evaluates arithmetic statements given as text.

A statement may contain decimal numbers, parentheses, and the four binary
operators '+', '-', '*', '/'. Evaluation runs a linear pipeline: the statement
is validated, tokenized, converted to reverse Polish notation with the
shunting-yard algorithm, and folded on a value stack. The result is rounded
half-up to four decimal places (configurable via EvalOptions.Precision) and
whole results render without a fractional part.

Every failure, from a disallowed character to a division by zero, surfaces as
a non-nil error and nothing partial is returned. Errors wrap the stage
sentinels ErrValidate, ErrLex, ErrParse, and ErrEval for callers that want to
distinguish them.

String result example:

	out, err := arith.Evaluate("(1+38)*4-5", nil)
	if err != nil {
		// handle error
	}
	// out == "151"

Numeric result example:

	res, err := arith.EvaluateValue("102.12356", nil)
	if err != nil {
		// handle error
	}
	// res == 102.1236

Options example:

	out, err := arith.Evaluate("1/3", &arith.EvalOptions{Precision: 2})
	if err != nil {
		// handle error
	}
	// out == "0.33"
*/
package arith
