// Package eval scores non-terminal Connect Four positions for the side to
// move, for use as the leaf evaluation of a depth-bounded strong search.
package eval

import (
	"math/bits"

	"github.com/YKhan142008/c4solver/internal/position"
)

// Heuristic scores a position from the side-to-move's perspective. Every
// Heuristic must satisfy h(swap(p)) == -h(p).
type Heuristic func(position.Position) int

// Material scores a position by counting, for each side, how many of its
// stones lie on a four-in-a-row window (four co-linear playable squares)
// that contains no stone of the opponent. This is the canonical heuristic:
// h(p) = M(side) - M(opponent).
func Material(p position.Position) int {
	side, mask := p.Sides()
	opponent := mask ^ side
	return materialScore(side, opponent) - materialScore(opponent, side)
}

func materialScore(stones, opponent uint64) int {
	friendlySpace := position.PlayableMask() &^ opponent

	score := materialDirection(friendlySpace, stones, 1)
	score += materialDirection(friendlySpace, stones, 8)
	score += materialDirection(friendlySpace, stones, 9)
	score += materialDirection(friendlySpace, stones, 7)
	return score
}

func materialDirection(friendlySpace, stones uint64, offset uint) int {
	t := (friendlySpace << (2 * offset)) & friendlySpace
	w := (t << offset) & t
	winMask := w | w>>offset | w>>(2*offset) | w>>(3*offset)
	return bits.OnesCount64(stones & winMask)
}

// WinningSquares is the alternate heuristic from the source: the
// difference in the number of unique winning squares (empty squares that
// would complete a four-in-a-row) available to each side.
func WinningSquares(p position.Position) int {
	side, mask := p.Sides()
	opponent := mask ^ side

	mine := position.WinningSquares(side) &^ mask
	theirs := position.WinningSquares(opponent) &^ mask
	return bits.OnesCount64(mine) - bits.OnesCount64(theirs)
}
