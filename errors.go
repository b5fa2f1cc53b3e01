package hat

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid element position.
	ErrIndexOutOfBounds = errors.New("hat: index out of bounds")
	// ErrInvalidState signals a violated structural invariant of a tree.
	ErrInvalidState = errors.New("hat: invalid tree state")
)
