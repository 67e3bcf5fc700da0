package gang

import "errors"

// Error kinds surfaced to the user. All are recoverable: a failed operation
// leaves the aggregate untouched and only produces a status message.
var (
	ErrValidation   = errors.New("invalid input")
	ErrDuplicate    = errors.New("name already in use")
	ErrConstraint   = errors.New("not allowed in current state")
	ErrCapacity     = errors.New("court capacity exceeded")
	ErrPrecondition = errors.New("precondition not met")
)
