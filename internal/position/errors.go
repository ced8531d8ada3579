package position

import "fmt"

// LengthError reports a board string whose cleaned length is not exactly
// BoardSize characters.
type LengthError struct {
	Actual   int
	Expected int
}

func (e LengthError) Error() string {
	return fmt.Sprintf("position: invalid board string length: found %d, expected %d", e.Actual, e.Expected)
}

// CharacterError reports a character outside the {p, c, n} alphabet.
type CharacterError struct {
	Character rune
	Index     int
}

func (e CharacterError) Error() string {
	return fmt.Sprintf("position: invalid character %q at index %d", e.Character, e.Index)
}

// IllegalMoveError reports a move that cannot be played: a full column
// (PlayColumn, FromMoveSequence), or, within FromMoveSequence, a column
// outside 0-6 or a move that would complete a four-in-a-row. Column is -1
// when FromMoveSequence is given an empty string.
type IllegalMoveError struct {
	Column int
}

func (e IllegalMoveError) Error() string {
	return fmt.Sprintf("position: illegal move in column %d", e.Column)
}

// MoveSequenceError wraps a failure while replaying a move-sequence string,
// naming the offending index.
type MoveSequenceError struct {
	Index int
	Err   error
}

func (e MoveSequenceError) Error() string {
	return fmt.Sprintf("position: move sequence invalid at index %d: %v", e.Index, e.Err)
}

func (e MoveSequenceError) Unwrap() error {
	return e.Err
}
