package arith

import "errors"

var (
	// ErrEmpty indicates an empty (or all-space) statement.
	ErrEmpty = errors.New("empty statement")

	// ErrValidate indicates a disallowed character or operator sequence.
	ErrValidate = errors.New("validate error")

	// ErrLex indicates a tokenizer failure.
	ErrLex = errors.New("lex error")

	// ErrParse indicates an infix to postfix conversion failure.
	ErrParse = errors.New("parse error")

	// ErrEval indicates a postfix evaluation failure.
	ErrEval = errors.New("eval error")
)
