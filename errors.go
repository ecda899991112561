package pocketcube

import "errors"

// Sentinel errors for the pocketcube package.
var (
	// Search errors
	ErrNoSolution      = errors.New("pocketcube: no solution found")
	ErrNilCube         = errors.New("pocketcube: nil cube")
	ErrUnknownStrategy = errors.New("pocketcube: unknown search strategy")

	// Scramble errors
	ErrScrambleStuck = errors.New("pocketcube: scramble rejected too many moves")

	// Parsing errors
	ErrInvalidNotation = errors.New("pocketcube: invalid move notation")
)
