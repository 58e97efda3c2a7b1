package document

import "errors"

// Workflow error taxonomy. Every transition surfaces exactly one of these
// to the caller; none of them leaves partial state behind.
var (
	ErrNotFound            = errors.New("document not found")
	ErrForbidden           = errors.New("not authorized for this document")
	ErrInvalidTransition   = errors.New("document status does not allow this action")
	ErrInvalidAction       = errors.New("action is not valid for this stage")
	ErrOutOfSequence       = errors.New("previous signatures must be completed first")
	ErrNoPendingSignature  = errors.New("no pending signature for this user")
	ErrNoReviewerAvailable = errors.New("no reviewer available")
	ErrNoSignerAvailable   = errors.New("no signer available")
)
