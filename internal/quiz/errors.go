package quiz

import "errors"

// These are contract violations, not user errors: the UI only ever
// offers valid option ids, so hitting one of these means an integration
// bug. Callers should reject the request, never swallow them.
var (
	// ErrInvalidOption means the option id is not on the question being answered.
	ErrInvalidOption = errors.New("quiz: option does not belong to question")

	// ErrIllegalState means an operation was called in the wrong session state,
	// e.g. reading the result before the last question is answered.
	ErrIllegalState = errors.New("quiz: operation not valid in current session state")

	// ErrOutOfRange means a question index outside [0, QuestionCount).
	ErrOutOfRange = errors.New("quiz: question index out of range")
)
