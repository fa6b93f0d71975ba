package arith

// defaultPrecision is the number of decimal places kept in results.
const defaultPrecision = 4

// EvalOptions controls evaluation behavior.
type EvalOptions struct {
	// DisableLeadingPairCheck restores the lenient validator scan that starts
	// comparing adjacent characters only from the third one, so a statement
	// opening with two operators (e.g. "*-1") passes validation and fails
	// later during evaluation instead.
	DisableLeadingPairCheck bool
	// Precision is the number of decimal places the result is rounded to
	// (default is four).
	Precision int
}

// normalize normalizes the EvalOptions.
func (o *EvalOptions) normalize() EvalOptions {
	if o == nil {
		return EvalOptions{Precision: defaultPrecision}
	}

	out := *o
	if out.Precision <= 0 {
		out.Precision = defaultPrecision
	}

	return out
}
