package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnrecognizedFormat indicates coordinate text matched none of the
	// known notations. It is the parser's explicit non-match outcome, not a
	// failure of the parser itself; callers prompt for corrected input.
	ErrUnrecognizedFormat = errors.New("unrecognized coordinate format")

	// ErrCoordinateRange indicates a coordinate lies outside the valid
	// latitude/longitude envelope.
	ErrCoordinateRange = errors.New("coordinate out of range")

	// ErrGridConversion indicates the grid-reference converter could not
	// produce or consume a grid string. Always recovered locally: the
	// encoder falls back to the CNI-MU form and the parser treats the
	// grid notation as non-matching.
	ErrGridConversion = errors.New("grid conversion failed")

	// ErrDatabaseMissing indicates the simulator database file does not
	// exist at the resolved path.
	ErrDatabaseMissing = errors.New("simulator database not found")
)
