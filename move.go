package pocketcube

import (
	"fmt"
	"strings"
)

// Move identifies one of the six quarter-turn operators. The first three
// turn the front, right, and top layers clockwise; the last three are their
// inverses, ordered so that the inverse of move m is always NumMoves-1-m.
type Move int

const (
	Front Move = iota
	Right
	Top
	TopInverse
	RightInverse
	FrontInverse
)

// NumMoves is the number of distinct move operators.
const NumMoves = 6

var moveNames = [NumMoves]string{
	"front",
	"right",
	"top",
	"top inverse",
	"right inverse",
	"front inverse",
}

var moveNotations = [NumMoves]string{"F", "R", "T", "T'", "R'", "F'"}

// Valid reports whether m is one of the six defined moves.
func (m Move) Valid() bool {
	return m >= 0 && m < NumMoves
}

// Name returns the display name of the move, e.g. "top inverse".
func (m Move) Name() string {
	if !m.Valid() {
		return "?"
	}
	return moveNames[m]
}

// Notation returns the compact notation for the move.
// Examples: F, R, T, T', R', F'
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	return moveNotations[m]
}

// Inverse returns the move that undoes m.
// F becomes F', T' becomes T, and so on.
func (m Move) Inverse() Move {
	return NumMoves - 1 - m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a notation token into a Move. It accepts the compact
// notation (F, R, T, T', R', F', with ` allowed in place of ') in either
// case, as well as the full display names.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNotation
	}

	norm := strings.ToUpper(strings.ReplaceAll(s, "`", "'"))
	for m := Move(0); m < NumMoves; m++ {
		if norm == moveNotations[m] {
			return m, nil
		}
	}

	// Full names: "front", "top inverse", ...
	lower := strings.ToLower(s)
	for m := Move(0); m < NumMoves; m++ {
		if lower == moveNames[m] {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
}

// ParseMoves parses a space-separated sequence of notation tokens.
// Example: "F R T' F'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
