package recovery

import "errors"

var (
	// ErrAccountNotFound means no record matched the name/birth-date pair.
	ErrAccountNotFound = errors.New("no matching account")

	// ErrNoRecoveryQuestion means a record matched but has no usable
	// recovery question configured.
	ErrNoRecoveryQuestion = errors.New("no recovery question configured")

	// ErrAccountLost means the record identified in the first step was gone
	// when the answer was verified.
	ErrAccountLost = errors.New("account no longer present")

	// ErrQuestionMismatch means the record's question changed between the
	// identify and answer steps.
	ErrQuestionMismatch = errors.New("recovery question changed")

	// ErrAnswerIncorrect means the supplied answer did not match.
	ErrAnswerIncorrect = errors.New("answer does not match")

	// ErrNotInStep means a transition was invoked from the wrong step.
	ErrNotInStep = errors.New("transition not valid in current step")
)
