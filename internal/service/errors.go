package service

import "errors"

var (
	// ErrInvalidPayload marks caller errors: missing or malformed fields.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrQuizNotFound marks references to a quiz that does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrDuplicateSubmission marks a second submission for the same
	// (quiz, voter email) pair. A business-rule rejection, not a fault.
	ErrDuplicateSubmission = errors.New("duplicate submission")
	// ErrEmptyRoster marks an attempt to leave a quiz with no candidates.
	ErrEmptyRoster = errors.New("quiz candidate list must not be empty")
	// ErrStorageFailure marks transient store faults. Never retried here;
	// a silent retry could double-submit.
	ErrStorageFailure = errors.New("storage failure")
)
