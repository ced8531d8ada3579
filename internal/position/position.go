// Package position implements the Connect Four bitboard: a dense encoding
// of a 7x6 board into two 64-bit words enabling branch-free move
// generation, terminal-state detection, and win-threat computation through
// shift/mask arithmetic.
//
// Encoding: column-major, one byte per column, bit index 8*col+row with
// row 0 at the bottom. Bits 6 and 7 of each column byte are unused padding
// (the board is six rows tall); the eighth column's byte (bits 56..63) is
// entirely unused padding, kept so that shifts never carry stones from one
// column into the next.
//
//	 6 14 22 30 38 46 54
//	 5 13 21 29 37 45 53
//	 4 12 20 28 36 44 52
//	 3 11 19 27 35 43 51
//	 2 10 18 26 34 42 50
//	 1  9 17 25 33 41 49
//	 0  8 16 24 32 40 48
package position

import "math/bits"

const (
	BoardWidth  = 7
	BoardHeight = 6
	BoardSize   = BoardWidth * BoardHeight

	columnStride = 8
	centreColumn = BoardWidth / 2
)

const (
	// firstColumn is the low byte's low seven bits: the playable six rows
	// of column 0 plus the first padding bit above them.
	firstColumn uint64 = 0x7F
	// bottomRow has bit 0 of every column byte set.
	bottomRow uint64 = 0x0101010101010101
	// topRow has bit 6 of every column byte set: the sentinel bit used by
	// LegalMoves to detect a column's landing square.
	topRow uint64 = 0x4040404040404040
	// topPaddingRows has bits 6 and 7 of every column byte set.
	topPaddingRows uint64 = 0xC0C0C0C0C0C0C0C0
	// eighthColumn is the unused eighth column's byte (bits 56..63).
	eighthColumn uint64 = 0xFF00000000000000
	// playable is the set of the 42 legitimate board squares.
	playable uint64 = ^(topPaddingRows | eighthColumn)
)

// Side identifies which of the two players a stone belongs to, for the
// purposes of PlayColumn.
type Side int

const (
	Mine Side = iota
	Theirs
)

// Stone describes the occupant of a single board cell, for StoneAt.
type Stone int

const (
	EmptyStone Stone = iota
	MyStone
	TheirStone
)

// Position is a value object: the stones of the side to move (side) and
// the set of all occupied squares (mask). The opponent's stones are
// mask^side. Positions are cheap to copy and are never mutated after
// construction; Play returns a new value with the turn swapped.
type Position struct {
	side uint64
	mask uint64
}

// Empty returns the starting position: an empty board.
func Empty() Position {
	return Position{}
}

func columnMask(col int) uint64 {
	return firstColumn << uint(col*columnStride)
}

// Parse builds a Position from a 42-character board string of 'p'
// (side-to-move stone), 'c' (opponent stone) and 'n' (empty), read
// top-to-bottom, left-to-right. Whitespace is stripped before validation.
// Gravity (that each column's stones form a contiguous prefix from row 0)
// is the caller's responsibility for hand-written fixtures; it is not
// revalidated here.
func Parse(text string) (Position, error) {
	cleaned := make([]rune, 0, BoardSize)
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		default:
			cleaned = append(cleaned, r)
		}
	}
	if len(cleaned) != BoardSize {
		return Position{}, LengthError{Actual: len(cleaned), Expected: BoardSize}
	}

	var side, mask uint64
	for i, c := range cleaned {
		row := (BoardHeight - 1) - i/BoardWidth
		col := i % BoardWidth
		bit := uint64(1) << uint(col*columnStride+row)

		switch c {
		case 'n':
			// empty: nothing to set
		case 'c':
			mask |= bit
		case 'p':
			mask |= bit
			side |= bit
		default:
			return Position{}, CharacterError{Character: c, Index: i}
		}
	}
	return Position{side: side, mask: mask}, nil
}

// FromMoveSequence replays a string of single-digit column indices (0-6)
// from the empty board, rejecting any move into a full column or any move
// that would complete a four-in-a-row (so a transcript ending on its
// winning move is rejected too), and rejecting an empty string.
func FromMoveSequence(moves string) (Position, error) {
	p := Empty()
	played := false
	for i, c := range moves {
		if c < '0' || c > '9' {
			return Position{}, MoveSequenceError{Index: i, Err: CharacterError{Character: c, Index: i}}
		}
		col := int(c - '0')
		if col >= BoardWidth {
			return Position{}, MoveSequenceError{Index: i, Err: IllegalMoveError{Column: col}}
		}

		legal := p.LegalMoves()
		mv := p.ColumnMove(legal, col)
		if mv == 0 {
			return Position{}, MoveSequenceError{Index: i, Err: IllegalMoveError{Column: col}}
		}
		if p.IsWinningMove(mv) {
			return Position{}, MoveSequenceError{Index: i, Err: IllegalMoveError{Column: col}}
		}
		p = p.Play(mv)
		played = true
	}
	if !played {
		return Position{}, MoveSequenceError{Index: -1, Err: IllegalMoveError{Column: -1}}
	}
	return p, nil
}

// PlayColumn applies gravity to drop a stone of the given side into col,
// without swapping the side to move. Side Mine ORs the stone into both
// side and mask; Side Theirs ORs it only into mask. Used to build
// positions incrementally from external game state.
func (p Position) PlayColumn(col int, who Side) (Position, error) {
	legal := p.LegalMoves()
	mv := p.ColumnMove(legal, col)
	if mv == 0 {
		return Position{}, IllegalMoveError{Column: col}
	}
	switch who {
	case Mine:
		return Position{side: p.side | mv, mask: p.mask | mv}, nil
	default:
		return Position{side: p.side, mask: p.mask | mv}, nil
	}
}

// StoneAt reports the occupant of column col, row row (row 0 at the
// bottom).
func (p Position) StoneAt(col, row int) Stone {
	bit := uint64(1) << uint(col*columnStride+row)
	if p.mask&bit == 0 {
		return EmptyStone
	}
	if p.side&bit != 0 {
		return MyStone
	}
	return TheirStone
}

// CountStones returns the total number of stones played.
func (p Position) CountStones() int {
	return bits.OnesCount64(p.mask)
}

// Sides returns the raw side-to-move and occupied bitboards. Exposed for
// packages (eval, search) that compute directly over the bit
// representation rather than through the per-square accessors.
func (p Position) Sides() (side, mask uint64) {
	return p.side, p.mask
}

// PlayableMask returns the set of the 42 legitimate board squares.
func PlayableMask() uint64 {
	return playable
}

// Key returns a canonical identity for the position: the lesser of its own
// (side+mask) key and that of its horizontal mirror image, so that
// mirror-symmetric positions share a key.
func (p Position) Key() uint64 {
	key := p.side + p.mask
	mSide, mMask := p.mirrored()
	mirroredKey := mSide + mMask
	if mirroredKey < key {
		return mirroredKey
	}
	return key
}

func (p Position) mirrored() (uint64, uint64) {
	var mSide, mMask uint64
	for col := 0; col < centreColumn; col++ {
		mirrorCol := BoardWidth - 1 - col
		shift := uint((mirrorCol - col) * columnStride)
		mSide |= ((p.side & columnMask(col)) << shift) | ((p.side & columnMask(mirrorCol)) >> shift)
		mMask |= ((p.mask & columnMask(col)) << shift) | ((p.mask & columnMask(mirrorCol)) >> shift)
	}
	if BoardWidth%2 == 1 {
		mSide |= p.side & columnMask(centreColumn)
		mMask |= p.mask & columnMask(centreColumn)
	}
	return mSide, mMask
}

// LegalMoves returns a bitmask whose set bits are exactly the legal
// destination squares: the lowest empty cell of every non-full column.
func (p Position) LegalMoves() uint64 {
	filled := p.mask | topRow
	candidates := filled ^ ((filled << 1) | bottomRow)
	return candidates & playable
}

// ColumnMove intersects a column mask with legal, returning 0 if the
// column is full or out of range.
func (p Position) ColumnMove(legal uint64, col int) uint64 {
	if col < 0 || col >= BoardWidth {
		return 0
	}
	return legal & columnMask(col)
}

// Play returns a new Position after the side to move plays move, with the
// turn swapped. The caller must ensure move is a member of LegalMoves().
func (p Position) Play(move uint64) Position {
	return Position{
		side: p.mask ^ p.side,
		mask: p.mask | move,
	}
}

func fourInARow(b uint64, offset uint) bool {
	t := b & (b >> offset)
	return t&(t>>(2*offset)) != 0
}

// hasFourInARow tests stones for any four-in-a-row in any of the four
// lattice directions (vertical, horizontal, and both diagonals).
func hasFourInARow(stones uint64) bool {
	return fourInARow(stones, 1) || fourInARow(stones, columnStride) ||
		fourInARow(stones, columnStride-1) || fourInARow(stones, columnStride+1)
}

// HasWon reports whether the side to move already has a four-in-a-row.
func (p Position) HasWon() bool {
	return hasFourInARow(p.side)
}

// HasLost reports whether the opponent already has a four-in-a-row. Since
// Play swaps the side to move, the side that "has lost" at the start of a
// turn is the one that just had a winning move played against it.
func (p Position) HasLost() bool {
	return hasFourInARow(p.mask ^ p.side)
}

func winningSquaresHelper(stones uint64, offset uint) uint64 {
	pair := (stones << offset) & stones
	w := (pair << offset) & (stones >> offset)
	w |= (pair >> (2 * offset)) & (stones << offset)
	triple := pair & (pair << offset)
	w |= (triple >> (3 * offset)) | (triple << offset)
	return w
}

// WinningSquares returns every square that, if occupied by stones, would
// complete a four-in-a-row for them: two-gap-one, one-gap-two, and
// adjacent-three patterns across all four directions, masked to the
// playable board.
func WinningSquares(stones uint64) uint64 {
	w := (stones << 1) & (stones << 2) & (stones << 3)
	w |= winningSquaresHelper(stones, columnStride)
	w |= winningSquaresHelper(stones, columnStride-1)
	w |= winningSquaresHelper(stones, columnStride+1)
	return w & playable
}

// IsWinningMove reports whether playing move for the side to move
// completes a four-in-a-row.
func (p Position) IsWinningMove(move uint64) bool {
	return WinningSquares(p.side)&move != 0
}

// ForcedMoves returns the intersection of the opponent's winning squares
// with the legal moves: the squares the side to move must play this turn
// to prevent an immediate loss.
func (p Position) ForcedMoves() uint64 {
	return WinningSquares(p.mask^p.side) & p.LegalMoves()
}

// NonLosingMoves returns the legal moves that neither hand the opponent an
// immediate win next turn nor play directly under one of the opponent's
// winning squares. Returns 0 if two or more of the opponent's winning
// squares are legal moves this turn (the position is lost regardless of
// this turn's move).
func (p Position) NonLosingMoves() uint64 {
	possible := p.LegalMoves()
	opponentWins := WinningSquares(p.mask ^ p.side)

	forced := possible & opponentWins
	if forced != 0 {
		if forced&(forced-1) != 0 {
			return 0
		}
		possible = forced
	}
	return possible &^ (opponentWins >> 1)
}

// MoveToColumn decodes the low bit set in move into a (column, row) pair.
// Returns ok=false for move==0.
func MoveToColumn(move uint64) (col, row int, ok bool) {
	if move == 0 {
		return 0, 0, false
	}
	idx := bits.TrailingZeros64(move)
	return idx / columnStride, idx % columnStride, true
}
