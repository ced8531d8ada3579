// Package boardio renders Connect Four positions back to the textual
// board format used throughout the test and fixture suite. Parsing lives
// on position.Parse itself (it is the documented constructor); this
// package provides the symmetric direction, useful for fixtures and
// debugging but not required for solver correctness.
package boardio

import (
	"strings"

	"github.com/YKhan142008/c4solver/internal/position"
)

// Serialize emits p as rows top-to-bottom, left-to-right, one row per
// line: 'p' for the side-to-move's stone, 'c' for the opponent's, 'n' for
// empty. Round-tripping through position.Parse reproduces an equivalent
// board (modulo the original whitespace layout).
func Serialize(p position.Position) string {
	var b strings.Builder
	for row := position.BoardHeight - 1; row >= 0; row-- {
		for col := 0; col < position.BoardWidth; col++ {
			switch p.StoneAt(col, row) {
			case position.EmptyStone:
				b.WriteByte('n')
			case position.MyStone:
				b.WriteByte('p')
			default:
				b.WriteByte('c')
			}
		}
		if row > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
